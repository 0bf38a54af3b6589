package controller

import (
	"net/http"
	"strings"

	"github.com/Scalingo/github-gazer/model"
	"github.com/Scalingo/github-gazer/page"
	"github.com/Scalingo/github-gazer/service"
	"github.com/gin-gonic/gin"
)

type APIController interface {
	GetUser(ctx *gin.Context)
	Health(ctx *gin.Context)
}

type apiController struct {
	githubService service.GithubService
}

func NewAPIController(service service.GithubService) APIController {
	return apiController{
		githubService: service,
	}
}

// GetUser returns the profile and the top repositories of a handle
func (s apiController) GetUser(c *gin.Context) {
	handle := strings.TrimSpace(c.Param("handle"))

	// execute the request
	profile, repos, err := page.FetchAll(c.Request.Context(), s.githubService, handle)
	if err != nil {
		status, apiErr := model.NewAPIError(err)
		c.JSON(status, apiErr)
		return
	}

	if len(repos) > page.TopRepositories {
		repos = repos[:page.TopRepositories]
	}

	c.JSON(http.StatusOK, model.UserSummary{
		Profile:      profile,
		Repositories: repos,
	})
}

func (s apiController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
