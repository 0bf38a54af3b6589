package model

import (
	"errors"
	"fmt"
	"net/http"
)

// GenericErrorMessage is shown when a search fails with an error that is not a FetchError
const GenericErrorMessage = "An error occurred"

const rateLimitMessage = "GitHub API rate limit exceeded. Please try again later."

type ErrorKind string

const (
	ErrorKindInvalid       ErrorKind = "INVALID_HANDLE"
	ErrorKindNotFound      ErrorKind = "NOT_FOUND"
	ErrorKindRateLimited   ErrorKind = "RATE_LIMIT_REACHED"
	ErrorKindUpstreamError ErrorKind = "FETCH_ERROR"
)

// Resource names the endpoint a FetchError comes from
type Resource string

const (
	ResourceProfile      Resource = "profile"
	ResourceRepositories Resource = "repositories"
)

// FetchError is returned by the github service for every non-success answer.
// Message is meant to be displayed as is.
type FetchError struct {
	Kind     ErrorKind
	Resource Resource
	Handle   string
	Status   int
	Message  string
	Err      error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func NewInvalidHandleError(resource Resource) *FetchError {
	return &FetchError{
		Kind:     ErrorKindInvalid,
		Resource: resource,
		Message:  "Please enter a GitHub username",
	}
}

func NewNotFoundError(resource Resource, handle string, cause error) *FetchError {
	message := fmt.Sprintf("User %q not found", handle)
	if resource == ResourceRepositories {
		message = fmt.Sprintf("Repositories for %q not found", handle)
	}

	return &FetchError{
		Kind:     ErrorKindNotFound,
		Resource: resource,
		Handle:   handle,
		Status:   http.StatusNotFound,
		Message:  message,
		Err:      cause,
	}
}

func NewRateLimitedError(resource Resource, handle string, cause error) *FetchError {
	return &FetchError{
		Kind:     ErrorKindRateLimited,
		Resource: resource,
		Handle:   handle,
		Status:   http.StatusForbidden,
		Message:  rateLimitMessage,
		Err:      cause,
	}
}

// NewUpstreamError keeps the reason phrase of the upstream status in the message
func NewUpstreamError(resource Resource, handle string, status int, reason string, cause error) *FetchError {
	message := "Failed to fetch user data: " + reason
	if resource == ResourceRepositories {
		message = "Failed to fetch repositories: " + reason
	}

	return &FetchError{
		Kind:     ErrorKindUpstreamError,
		Resource: resource,
		Handle:   handle,
		Status:   status,
		Message:  message,
		Err:      cause,
	}
}

// ErrorMessage is the text displayed for a failed search
func ErrorMessage(err error) string {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Message
	}

	return GenericErrorMessage
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewAPIError converts an error into the JSON body and the status code returned by the API
func NewAPIError(errReason error) (int, APIError) {
	var fetchErr *FetchError
	if !errors.As(errReason, &fetchErr) {
		return http.StatusInternalServerError, APIError{
			Code:    "GENERIC_ERROR",
			Message: "internal server error. contact our support with the reason code for assistance",
		}
	}

	switch fetchErr.Kind {
	case ErrorKindInvalid:
		return http.StatusBadRequest, APIError{Code: string(fetchErr.Kind), Message: fetchErr.Message}

	case ErrorKindNotFound:
		return http.StatusNotFound, APIError{Code: string(fetchErr.Kind), Message: fetchErr.Message}

	case ErrorKindRateLimited:
		return http.StatusTooManyRequests, APIError{
			Code:    string(fetchErr.Kind),
			Message: "github rate limit reached. consider using a token to increase the limit or wait few minutes and try again",
		}

	default:
		return http.StatusBadGateway, APIError{Code: string(fetchErr.Kind), Message: fetchErr.Message}
	}
}
