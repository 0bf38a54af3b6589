package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/Scalingo/github-gazer/model"
	"github.com/Scalingo/github-gazer/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string {
	return &s
}

func octocat() *model.Profile {
	return &model.Profile{
		Login:       "octocat",
		AvatarURL:   "https://avatars.githubusercontent.com/u/583231",
		Name:        ptr("The Octocat"),
		Bio:         ptr("<script>alert(1)</script>"),
		Location:    ptr("San Francisco"),
		PublicRepos: 8,
		Followers:   1500,
		Following:   9,
		CreatedAt:   time.Date(2011, time.January, 25, 18, 44, 36, 0, time.UTC),
		HTMLURL:     "https://github.com/octocat",
		Blog:        ptr("github.blog"),
	}
}

func render(t *testing.T, p Page) string {
	t.Helper()

	renderer, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, p))

	return buf.String()
}

func TestRenderWelcome(t *testing.T) {
	html := render(t, Page{Snapshot: page.NewState().Snapshot()})

	assert.Contains(t, html, "Ready to explore?")
	assert.Contains(t, html, `id="loading" class="placeholder" hidden`)
	assert.Contains(t, html, `data-theme="dark"`)
	assert.Contains(t, html, "Sign In")
	assert.NotContains(t, html, "Sign Out")
}

func TestRenderLoading(t *testing.T) {
	html := render(t, Page{Snapshot: page.Snapshot{View: page.ViewLoading, Loading: true, Handle: "octocat", HasSearched: true}})

	assert.Contains(t, html, "Searching GitHub...")
	assert.NotContains(t, html, `id="loading" class="placeholder" hidden`)
	assert.Contains(t, html, "Searching...</button>")
	assert.Contains(t, html, `value="octocat" aria-label="GitHub username" disabled`)
}

func TestRenderError(t *testing.T) {
	snapshot := page.Snapshot{View: page.ViewError, ErrorMessage: `User "ghost" not found`, HasSearched: true}

	html := render(t, Page{Snapshot: snapshot})
	assert.Contains(t, html, "Oops! Something went wrong")
	assert.Contains(t, html, "User &#34;ghost&#34; not found")
	assert.NotContains(t, html, "Try Again")

	html = render(t, Page{Snapshot: snapshot, RetryURL: "/?username=ghost"})
	assert.Contains(t, html, "Try Again")
}

func TestRenderResults(t *testing.T) {
	snapshot := page.Snapshot{
		View:        page.ViewResults,
		HasSearched: true,
		Profile:     octocat(),
		Repositories: []model.Repository{
			{
				ID:              1,
				Name:            "hello-world",
				HTMLURL:         "https://github.com/octocat/hello-world",
				StargazersCount: 2_300_000,
				ForksCount:      999,
				Language:        ptr("Go"),
				UpdatedAt:       time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
				Topics:          []string{"a", "b", "c", "d", "e"},
			},
		},
	}

	html := render(t, Page{Snapshot: snapshot})

	assert.Contains(t, html, "The Octocat")
	assert.Contains(t, html, "@octocat")
	assert.Contains(t, html, "1.5K")
	assert.Contains(t, html, "Joined January 25, 2011")
	assert.Contains(t, html, `href="https://github.blog"`)
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "Top Repositories")
	assert.Contains(t, html, "hello-world")
	assert.Contains(t, html, "2.3M")
	assert.Contains(t, html, "999 forks")
	assert.Contains(t, html, "lang-cyan")
	assert.Contains(t, html, "+2")
	assert.Contains(t, html, "No description available")
	assert.Contains(t, html, "Updated Jan 2, 2024")
}

func TestRenderResultsWithoutRepositories(t *testing.T) {
	html := render(t, Page{Snapshot: page.Snapshot{View: page.ViewResults, HasSearched: true, Profile: octocat(), Repositories: []model.Repository{}}})

	assert.Contains(t, html, "The Octocat")
	assert.NotContains(t, html, "Top Repositories")
}

func TestRenderEmpty(t *testing.T) {
	html := render(t, Page{Snapshot: page.Snapshot{View: page.ViewEmpty, HasSearched: true}})

	assert.Contains(t, html, "No user found")
	assert.NotContains(t, html, "Ready to explore?")
}

func TestRenderSessionPanel(t *testing.T) {
	snapshot := page.Snapshot{
		View:     page.ViewResults,
		Profile:  octocat(),
		Identity: &model.Identity{Name: "Mona Lisa", Username: "mona", Avatar: "https://example.com/mona.png", Email: "mona@example.com"},
		Repositories: []model.Repository{
			{ID: 1, Name: "one", StargazersCount: 4},
			{ID: 2, Name: "two", StargazersCount: 3},
			{ID: 3, Name: "three", StargazersCount: 2},
			{ID: 4, Name: "four", StargazersCount: 1},
		},
	}

	renderer, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.RenderComponent(&buf, "navbar", Page{Snapshot: snapshot}))
	html := buf.String()

	assert.Contains(t, html, "Mona Lisa")
	assert.Contains(t, html, "mona@example.com")
	assert.Contains(t, html, "Sign Out")
	assert.Contains(t, html, "Last GitHub Search")
	assert.Contains(t, html, "three")
	assert.NotContains(t, html, "four")
	assert.NotContains(t, html, `action="/session" `)
}

func TestTopicHelpers(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, firstTopics([]string{"a", "b"}, 3))
	assert.Equal(t, []string{"a", "b", "c"}, firstTopics([]string{"a", "b", "c", "d"}, 3))
	assert.Equal(t, 0, extraTopics([]string{"a"}, 3))
	assert.Equal(t, 1, extraTopics([]string{"a", "b", "c", "d"}, 3))
}
