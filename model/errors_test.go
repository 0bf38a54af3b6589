package model

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      *FetchError
		expected string
	}{
		{
			name:     "profile not found",
			err:      NewNotFoundError(ResourceProfile, "octocat", nil),
			expected: `User "octocat" not found`,
		},
		{
			name:     "repositories not found",
			err:      NewNotFoundError(ResourceRepositories, "octocat", nil),
			expected: `Repositories for "octocat" not found`,
		},
		{
			name:     "rate limited",
			err:      NewRateLimitedError(ResourceRepositories, "octocat", nil),
			expected: "GitHub API rate limit exceeded. Please try again later.",
		},
		{
			name:     "profile upstream error",
			err:      NewUpstreamError(ResourceProfile, "octocat", http.StatusBadGateway, "Bad Gateway", nil),
			expected: "Failed to fetch user data: Bad Gateway",
		},
		{
			name:     "repositories upstream error",
			err:      NewUpstreamError(ResourceRepositories, "octocat", http.StatusInternalServerError, "Internal Server Error", nil),
			expected: "Failed to fetch repositories: Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.expected)
		})
	}
}

func TestErrorMessage(t *testing.T) {
	wrapped := fmt.Errorf("search: %w", NewNotFoundError(ResourceProfile, "ghost", nil))

	assert.Equal(t, `User "ghost" not found`, ErrorMessage(wrapped))
	assert.Equal(t, GenericErrorMessage, ErrorMessage(errors.New("dial tcp: connection refused")))
}

func TestFetchErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewUpstreamError(ResourceProfile, "octocat", http.StatusBadGateway, "Bad Gateway", cause)

	assert.ErrorIs(t, err, cause)
}

func TestNewAPIError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{name: "invalid handle", err: NewInvalidHandleError(ResourceProfile), expectedStatus: http.StatusBadRequest, expectedCode: "INVALID_HANDLE"},
		{name: "not found", err: NewNotFoundError(ResourceProfile, "x", nil), expectedStatus: http.StatusNotFound, expectedCode: "NOT_FOUND"},
		{name: "rate limited", err: NewRateLimitedError(ResourceProfile, "x", nil), expectedStatus: http.StatusTooManyRequests, expectedCode: "RATE_LIMIT_REACHED"},
		{name: "upstream", err: NewUpstreamError(ResourceProfile, "x", 500, "Internal Server Error", nil), expectedStatus: http.StatusBadGateway, expectedCode: "FETCH_ERROR"},
		{name: "untyped", err: errors.New("EOF"), expectedStatus: http.StatusInternalServerError, expectedCode: "GENERIC_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, apiErr := NewAPIError(tt.err)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedCode, apiErr.Code)
			assert.NotEmpty(t, apiErr.Message)
		})
	}
}
