package controller

import (
	"net/http"
	"net/url"

	"github.com/Scalingo/github-gazer/model"
	"github.com/Scalingo/github-gazer/page"
	"github.com/Scalingo/github-gazer/service"
	"github.com/Scalingo/github-gazer/session"
	"github.com/Scalingo/github-gazer/view"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type PageController interface {
	Index(ctx *gin.Context)
	Search(ctx *gin.Context)
	SignIn(ctx *gin.Context)
	SignOut(ctx *gin.Context)
}

type pageController struct {
	githubService   service.GithubService
	sessionProvider session.Provider
}

func NewPageController(service service.GithubService, sessionProvider session.Provider) PageController {
	return pageController{
		githubService:   service,
		sessionProvider: sessionProvider,
	}
}

// newPage builds the page state of the visitor, with the identity read from its storage
func (s pageController) newPage(c *gin.Context) *page.Controller {
	return page.NewController(s.githubService, s.sessionProvider(c))
}

// Index renders the page, running the search when a username is in the query
func (s pageController) Index(c *gin.Context) {
	var searchQuery model.SearchQuery
	if err := c.ShouldBindQuery(&searchQuery); err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	pc := s.newPage(c)

	if handle := searchQuery.Handle(); handle != "" {
		// the request context and not gin's: a pending github call may outlive this handler
		if err := pc.Search(c.Request.Context(), handle); err != nil {
			log.WithError(err).WithField("handle", handle).Error("unable to run search")
		}
	}

	c.HTML(http.StatusOK, view.LayoutTemplate, view.Page{Snapshot: pc.State().Snapshot()})
}

// Search receives the search box; an empty username goes back to the page untouched
func (s pageController) Search(c *gin.Context) {
	var searchQuery model.SearchQuery
	if err := c.ShouldBind(&searchQuery); err != nil || searchQuery.Handle() == "" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.Redirect(http.StatusSeeOther, "/?username="+url.QueryEscape(searchQuery.Handle()))
}

// SignIn stores the display identity submitted by the visitor, nothing is verified
func (s pageController) SignIn(c *gin.Context) {
	var form model.SignInForm
	if err := c.ShouldBind(&form); err != nil {
		log.WithError(err).Debug("invalid sign in form")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if err := s.newPage(c).SignIn(form.Identity()); err != nil {
		log.WithError(err).Error("unable to save session identity")
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (s pageController) SignOut(c *gin.Context) {
	if err := s.newPage(c).SignOut(); err != nil {
		log.WithError(err).Error("unable to clear session identity")
	}

	c.Redirect(http.StatusSeeOther, "/")
}
