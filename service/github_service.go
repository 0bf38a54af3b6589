package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Scalingo/github-gazer/config"
	"github.com/Scalingo/github-gazer/model"
	"github.com/google/go-github/v66/github"

	log "github.com/sirupsen/logrus"

	"golang.org/x/time/rate"
)

// RepositoriesPerPage is the largest page the github API accepts
const RepositoriesPerPage = 100

type GithubService interface {
	FetchProfile(ctx context.Context, handle string) (model.Profile, error)
	FetchRepositories(ctx context.Context, handle string) ([]model.Repository, error)

	HandleRequestErrors(resource model.Resource, handle string, err error) error
}

type githubService struct {
	githubClient      *github.Client
	githubRateLimiter *rate.Limiter
	config            config.Config
}

// both endpoints share the core rate limit of github
// 60 calls per hour for non-authenticated and 5000 calls for authenticated
// every call consume one token of the local limiter, so we fail fast once the quota is known to be exhausted
func NewGithubService(config config.Config, githubClient *github.Client, rateLimiter *rate.Limiter) GithubService {
	return githubService{
		githubClient:      githubClient,
		githubRateLimiter: rateLimiter,
		config:            config,
	}
}

// FetchProfile loads the public profile of a github user
// one request, no retry: every failure is returned to the caller as a *model.FetchError when github answered
func (s githubService) FetchProfile(ctx context.Context, handle string) (model.Profile, error) {
	if handle == "" {
		return model.Profile{}, model.NewInvalidHandleError(model.ResourceProfile)
	}

	if !s.githubRateLimiter.Allow() {
		log.WithField("handle", handle).Warning("the Github rate limit has been reached. Use a token or wait until the limit reset")
		return model.Profile{}, model.NewRateLimitedError(model.ResourceProfile, handle, nil)
	}

	log.WithField("handle", handle).Info("fetch profile from github")

	user, _, err := s.githubClient.Users.Get(ctx, url.PathEscape(handle))
	if err != nil {
		return model.Profile{}, s.HandleRequestErrors(model.ResourceProfile, handle, err)
	}

	return toProfile(user), nil
}

// FetchRepositories loads one page of the most recently updated repositories
// and returns them sorted by stars, most starred first
func (s githubService) FetchRepositories(ctx context.Context, handle string) ([]model.Repository, error) {
	if handle == "" {
		return []model.Repository{}, model.NewInvalidHandleError(model.ResourceRepositories)
	}

	if !s.githubRateLimiter.Allow() {
		log.WithField("handle", handle).Warning("the Github rate limit has been reached. Use a token or wait until the limit reset")
		return []model.Repository{}, model.NewRateLimitedError(model.ResourceRepositories, handle, nil)
	}

	log.WithFields(log.Fields{
		"handle":  handle,
		"perPage": RepositoriesPerPage,
	}).Info("fetch repositories from github")

	repos, _, err := s.githubClient.Repositories.ListByUser(
		ctx,
		url.PathEscape(handle),
		&github.RepositoryListByUserOptions{
			Sort: "updated",
			ListOptions: github.ListOptions{
				PerPage: RepositoriesPerPage,
			},
		},
	)

	if err != nil {
		return []model.Repository{}, s.HandleRequestErrors(model.ResourceRepositories, handle, err)
	}

	repositories := make([]model.Repository, 0, len(repos))

	for _, r := range repos {
		if r == nil {
			continue
		}

		repositories = append(repositories, toRepository(r))
	}

	SortByStars(repositories)

	log.WithFields(log.Fields{
		"handle":               handle,
		"numberOfRepositories": len(repositories),
	}).Debug("repositories loaded and sorted by stars")

	return repositories, nil
}

// SortByStars orders repositories by star count, descending
// ties are broken by the most recent update, then by name so the output never depends on github ordering
func SortByStars(repositories []model.Repository) {
	sort.SliceStable(repositories, func(i, j int) bool {
		a, b := repositories[i], repositories[j]

		if a.StargazersCount != b.StargazersCount {
			return a.StargazersCount > b.StargazersCount
		}

		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.After(b.UpdatedAt)
		}

		return a.Name < b.Name
	})
}

// HandleRequestErrors translates go-github errors into *model.FetchError
// If error is a rate limit error, this function will update the local rate limiter to consume all available requests
// this can help us to keep the local rate limiter up to date
func (s githubService) HandleRequestErrors(resource model.Resource, handle string, err error) error {
	var rateLimitErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	var responseErr *github.ErrorResponse

	switch {
	case errors.As(err, &rateLimitErr), errors.As(err, &abuseErr):
		s.githubRateLimiter.AllowN(time.Now(), s.githubRateLimiter.Burst())

		log.WithField("resource", resource).Warning("the Github rate limit has been reached. Use a token or wait until the limit reset")
		return model.NewRateLimitedError(resource, handle, err)

	case errors.As(err, &responseErr) && responseErr.Response != nil:
		status := responseErr.Response.StatusCode

		log.WithFields(log.Fields{
			"resource": resource,
			"handle":   handle,
			"status":   status,
		}).Warning("github answered with an error status")

		switch status {
		case http.StatusNotFound:
			return model.NewNotFoundError(resource, handle, err)
		case http.StatusForbidden:
			return model.NewRateLimitedError(resource, handle, err)
		default:
			return model.NewUpstreamError(resource, handle, status, reasonPhrase(responseErr.Response), err)
		}
	}

	log.WithError(err).WithField("resource", resource).Error("error catched when fetching data from github")
	return fmt.Errorf("fetch %s of %s: %w", resource, handle, err)
}

// reasonPhrase extracts "Bad Gateway" from "502 Bad Gateway"
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}

	return reason
}

func toProfile(u *github.User) model.Profile {
	return model.Profile{
		Login:           u.GetLogin(),
		ID:              u.GetID(),
		AvatarURL:       u.GetAvatarURL(),
		Name:            u.Name,
		Bio:             u.Bio,
		Location:        u.Location,
		PublicRepos:     u.GetPublicRepos(),
		Followers:       u.GetFollowers(),
		Following:       u.GetFollowing(),
		CreatedAt:       u.GetCreatedAt().Time,
		HTMLURL:         u.GetHTMLURL(),
		Blog:            nonEmpty(u.Blog),
		Company:         u.Company,
		TwitterUsername: u.TwitterUsername,
	}
}

func toRepository(r *github.Repository) model.Repository {
	topics := r.Topics
	if topics == nil {
		topics = []string{}
	}

	return model.Repository{
		ID:              r.GetID(),
		Name:            r.GetName(),
		FullName:        r.GetFullName(),
		Description:     r.Description,
		HTMLURL:         r.GetHTMLURL(),
		StargazersCount: r.GetStargazersCount(),
		ForksCount:      r.GetForksCount(),
		Language:        r.Language,
		UpdatedAt:       r.GetUpdatedAt().Time,
		Topics:          topics,
	}
}

// github returns "" rather than null for a blog that was never set
func nonEmpty(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}

	return value
}
