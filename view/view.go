// Package view renders the search page from a page snapshot.
//
// Every component is a named template in templates/ and only reads the data
// it is given: layout, navbar, search_form, loading, error_message, profile,
// repository_grid, repository_card, welcome and empty.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/Scalingo/github-gazer/format"
	"github.com/Scalingo/github-gazer/model"
	"github.com/Scalingo/github-gazer/page"
)

// LayoutTemplate is the entry point rendering a whole page
const LayoutTemplate = "layout"

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Page is the data handed to the layout
type Page struct {
	Snapshot page.Snapshot

	// RetryURL enables the "Try Again" button of the error panel when set
	RetryURL string
}

var funcs = template.FuncMap{
	"formatNumber":      format.Number,
	"formatDate":        format.Date,
	"shortDate":         format.ShortDate,
	"blogURL":           format.BlogURL,
	"languageColor":     format.LanguageColor,
	"firstTopics":       firstTopics,
	"extraTopics":       extraTopics,
	"firstRepositories": firstRepositories,
}

// Parse loads every component template
func Parse() (*template.Template, error) {
	return template.New(LayoutTemplate).Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl")
}

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := Parse()
	if err != nil {
		return nil, err
	}

	return &Renderer{templates: templates}, nil
}

// Templates is handed to gin so handlers can use c.HTML
func (r *Renderer) Templates() *template.Template {
	return r.templates
}

func (r *Renderer) Render(w io.Writer, p Page) error {
	return r.templates.ExecuteTemplate(w, LayoutTemplate, p)
}

// RenderComponent renders a single named component, used by tests and partial updates
func (r *Renderer) RenderComponent(w io.Writer, name string, data any) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func firstTopics(topics []string, limit int) []string {
	if len(topics) > limit {
		return topics[:limit]
	}

	return topics
}

// extraTopics is the number of topics hidden behind the "+N" badge
func extraTopics(topics []string, limit int) int {
	if len(topics) > limit {
		return len(topics) - limit
	}

	return 0
}

func firstRepositories(repositories []model.Repository, limit int) []model.Repository {
	if len(repositories) > limit {
		return repositories[:limit]
	}

	return repositories
}
