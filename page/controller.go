package page

import (
	"context"
	"errors"

	"github.com/Scalingo/github-gazer/model"
	"github.com/Scalingo/github-gazer/session"
	"github.com/remeh/sizedwaitgroup"
	log "github.com/sirupsen/logrus"
)

// Fetcher is the part of the github service the page needs
type Fetcher interface {
	FetchProfile(ctx context.Context, handle string) (model.Profile, error)
	FetchRepositories(ctx context.Context, handle string) ([]model.Repository, error)
}

// Controller orchestrates the github calls of a search and owns the page state
type Controller struct {
	state   *State
	fetcher Fetcher
	storage session.Storage
}

// NewController reads the signed in identity once from storage.
// An unreadable storage is logged and the page starts signed out.
func NewController(fetcher Fetcher, storage session.Storage) *Controller {
	c := &Controller{
		state:   NewState(),
		fetcher: fetcher,
		storage: storage,
	}

	identity, err := session.Load(storage)
	if err != nil {
		log.WithError(err).Warning("unable to load session identity")
	}

	if identity != nil {
		c.state.SignedIn(*identity)
	}

	return c
}

func (c *Controller) State() *State {
	return c.state
}

// Search runs a complete search for rawHandle and leaves the state in Results or Error.
// An empty handle is ignored and ErrEmptyHandle is returned; nothing changes.
func (c *Controller) Search(ctx context.Context, rawHandle string) error {
	handle, err := c.state.SearchSubmitted(rawHandle)
	if err != nil {
		return err
	}

	profile, repositories, err := FetchAll(ctx, c.fetcher, handle)
	if err != nil {
		log.WithError(err).WithField("handle", handle).Info("search failed")
		return c.state.SearchFailed(model.ErrorMessage(err))
	}

	log.WithFields(log.Fields{
		"handle":               handle,
		"numberOfRepositories": len(repositories),
	}).Debug("search succeeded")

	return c.state.SearchSucceeded(profile, repositories)
}

type fetchResult struct {
	profile      *model.Profile
	repositories []model.Repository
	err          error
}

// FetchAll starts both github calls at once and waits for both.
// The first failure is returned as soon as it arrives: the other call is
// not cancelled, it finishes in the background and its result is dropped.
func FetchAll(ctx context.Context, fetcher Fetcher, handle string) (model.Profile, []model.Repository, error) {
	// buffered for both results so late senders never block once we stop reading
	results := make(chan fetchResult, 2)
	swg := sizedwaitgroup.New(2)

	swg.Add()
	go func() {
		defer swg.Done()

		profile, err := fetcher.FetchProfile(ctx, handle)
		results <- fetchResult{profile: &profile, err: err}
	}()

	swg.Add()
	go func() {
		defer swg.Done()

		repositories, err := fetcher.FetchRepositories(ctx, handle)
		results <- fetchResult{repositories: repositories, err: err}
	}()

	go func() {
		swg.Wait()
		close(results)
	}()

	var profile *model.Profile
	var repositories []model.Repository

	for result := range results {
		if result.err != nil {
			return model.Profile{}, nil, result.err
		}

		if result.profile != nil {
			profile = result.profile
		} else {
			repositories = result.repositories
		}
	}

	if profile == nil {
		return model.Profile{}, nil, errors.New("profile fetch ended without result")
	}

	if repositories == nil {
		repositories = []model.Repository{}
	}

	return *profile, repositories, nil
}

// SignIn persists the identity then shows it in the session panel
func (c *Controller) SignIn(identity model.Identity) error {
	if err := session.Save(c.storage, identity); err != nil {
		return err
	}

	c.state.SignedIn(identity)
	return nil
}

// SignOut forgets the identity, the search state is untouched
func (c *Controller) SignOut() error {
	if err := session.Clear(c.storage); err != nil {
		return err
	}

	c.state.SignedOut()
	return nil
}
