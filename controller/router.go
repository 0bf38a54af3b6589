package controller

import (
	"time"

	"github.com/Scalingo/github-gazer/config"
	"github.com/Scalingo/github-gazer/service"
	"github.com/Scalingo/github-gazer/session"
	"github.com/Scalingo/github-gazer/view"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter defines all routes, html pages at the root and json under /api
func NewRouter(cfg config.Config, githubService service.GithubService, renderer *view.Renderer, sessionProvider session.Provider) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger())
	router.SetHTMLTemplate(renderer.Templates())

	pageController := NewPageController(githubService, sessionProvider)
	apiController := NewAPIController(githubService)

	router.GET("/", pageController.Index)
	router.POST("/search", pageController.Search)
	router.POST("/session", pageController.SignIn)
	router.POST("/session/delete", pageController.SignOut)
	router.GET("/healthz", apiController.Health)

	allowedOrigins := cfg.API.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	api := router.Group("/api")
	api.Use(
		cors.New(cors.Config{
			AllowOrigins: allowedOrigins,
			AllowMethods: []string{"GET"},
			AllowHeaders: []string{"Content-Type, Content-Length, Accept-Encoding, Host, accept, Origin, Cache-Control, X-Requested-With"},
			MaxAge:       12 * time.Hour,
		}),
	)
	{
		api.GET("/users/:handle", apiController.GetUser)
	}

	return router
}
