// Package page holds the state machine behind the search page.
//
// A search moves the page from Idle to Loading, then to Results or Error.
// Any settled phase goes back to Loading on the next submission. The signed
// in identity lives next to the search state but never takes part in it.
package page

import (
	"errors"
	"strings"
	"sync"

	"github.com/Scalingo/github-gazer/model"
)

// TopRepositories is how many repositories the results view shows
const TopRepositories = 5

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseResults Phase = "results"
	PhaseError   Phase = "error"
)

// View names the component rendered in the results area
type View string

const (
	ViewWelcome View = "welcome"
	ViewLoading View = "loading"
	ViewError   View = "error"
	ViewResults View = "results"
	ViewEmpty   View = "empty"
)

var (
	ErrEmptyHandle    = errors.New("empty handle")
	ErrSearchInFlight = errors.New("a search is already in progress")
	ErrNotLoading     = errors.New("no search in progress")
)

// State is safe for concurrent use; the fetch goroutines and the request
// handler may look at it at the same time.
type State struct {
	mu sync.RWMutex

	phase        Phase
	handle       string
	profile      *model.Profile
	repositories []model.Repository
	errorMessage string
	hasSearched  bool
	darkMode     bool
	identity     *model.Identity
}

func NewState() *State {
	return &State{
		phase:        PhaseIdle,
		repositories: []model.Repository{},
		darkMode:     true,
	}
}

// SearchSubmitted starts a search and returns the trimmed handle.
// An empty handle leaves the state untouched.
func (s *State) SearchSubmitted(rawHandle string) (string, error) {
	handle := strings.TrimSpace(rawHandle)
	if handle == "" {
		return "", ErrEmptyHandle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseLoading {
		return "", ErrSearchInFlight
	}

	s.phase = PhaseLoading
	s.handle = handle
	s.errorMessage = ""
	s.hasSearched = true

	return handle, nil
}

// SearchSucceeded keeps the profile and the first TopRepositories repositories,
// which are expected sorted by stars already
func (s *State) SearchSucceeded(profile model.Profile, repositories []model.Repository) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseLoading {
		return ErrNotLoading
	}

	if len(repositories) > TopRepositories {
		repositories = repositories[:TopRepositories]
	}

	top := make([]model.Repository, len(repositories))
	copy(top, repositories)

	s.phase = PhaseResults
	s.profile = &profile
	s.repositories = top
	s.errorMessage = ""

	return nil
}

// SearchFailed drops any previous result; profile and repositories are all or nothing
func (s *State) SearchFailed(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseLoading {
		return ErrNotLoading
	}

	if message == "" {
		message = model.GenericErrorMessage
	}

	s.phase = PhaseError
	s.profile = nil
	s.repositories = []model.Repository{}
	s.errorMessage = message

	return nil
}

func (s *State) SignedIn(identity model.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = &identity
}

func (s *State) SignedOut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = nil
}

func (s *State) SetDarkMode(dark bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.darkMode = dark
}

// Snapshot is a read-only copy of the state, handed to the views
type Snapshot struct {
	Phase        Phase
	View         View
	Handle       string
	Profile      *model.Profile
	Repositories []model.Repository
	ErrorMessage string
	HasSearched  bool
	Loading      bool
	DarkMode     bool
	Identity     *model.Identity
}

// HasRepositories tells the results view whether to render the repository section
func (s Snapshot) HasRepositories() bool {
	return len(s.Repositories) > 0
}

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repositories := make([]model.Repository, len(s.repositories))
	copy(repositories, s.repositories)

	return Snapshot{
		Phase:        s.phase,
		View:         s.view(),
		Handle:       s.handle,
		Profile:      s.profile,
		Repositories: repositories,
		ErrorMessage: s.errorMessage,
		HasSearched:  s.hasSearched,
		Loading:      s.phase == PhaseLoading,
		DarkMode:     s.darkMode,
		Identity:     s.identity,
	}
}

func (s *State) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.phase
}

// view must be called with the lock held
func (s *State) view() View {
	switch {
	case s.phase == PhaseLoading:
		return ViewLoading
	case s.errorMessage != "":
		return ViewError
	case s.profile != nil:
		return ViewResults
	case s.hasSearched:
		return ViewEmpty
	default:
		return ViewWelcome
	}
}
