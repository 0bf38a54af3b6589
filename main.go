package main

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Scalingo/github-gazer/config"
	"github.com/Scalingo/github-gazer/controller"
	"github.com/Scalingo/github-gazer/logger"
	"github.com/Scalingo/github-gazer/service"
	"github.com/Scalingo/github-gazer/session"
	"github.com/Scalingo/github-gazer/view"
	"github.com/gin-gonic/gin"
	"github.com/google/go-github/v66/github"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		if !config.IsMissingFile(err) {
			log.WithError(err).Fatal("unable to load configuration")
		}

		log.Warning("no config/config.toml found, using default configuration")
		cfg = config.GetDefault()
	}

	// configure logger
	logger.Setup(*cfg)

	// setup github client
	// we do here and pass the client to Github service to easily improve tests with mock client
	githubClient, err := newGithubClient(cfg.Github)
	if err != nil {
		log.WithError(err).Fatal("unable to configure the github client")
	}

	rateLimiter := newRateLimiter(githubClient, cfg.Github.RequestsPerHour)

	renderer, err := view.NewRenderer()
	if err != nil {
		log.WithError(err).Fatal("unable to parse page templates")
	}

	sessionProvider, err := session.NewProvider(cfg.Session)
	if err != nil {
		log.WithError(err).Fatal("unable to configure session storage")
	}

	// setup services and routes
	githubService := service.NewGithubService(*cfg, githubClient, rateLimiter)

	gin.SetMode(gin.ReleaseMode)
	router := controller.NewRouter(*cfg, githubService, renderer, sessionProvider)

	server := &http.Server{
		Addr:              ":" + cfg.API.ListenPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// start with configuration
	go func() {
		log.Info("server listening on port " + cfg.API.ListenPort)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("error while starting server")
		}
	}()

	// wait for interrupt signal to gracefully shut down the server
	// kill default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("SIGINT, SIGTERM received, will shut down server ...")

	// the server has 15 seconds to finish the requests it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	} else {
		log.Info("Application stopped gracefully !")
	}
}

func newGithubClient(cfg config.GithubConfig) (*github.Client, error) {
	githubClient := github.NewClient(nil)

	if cfg.Token != "" {
		log.Debug("will setup github client with authorization token")
		githubClient = githubClient.WithAuthToken(cfg.Token)
	}

	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, err
		}

		githubClient.BaseURL = baseURL
	}

	return githubClient, nil
}

// newRateLimiter mirrors the github core rate limit locally
// the remaining tokens are consumed according to github, so requests made elsewhere with the same token are accounted
func newRateLimiter(githubClient *github.Client, fallbackPerHour int) *rate.Limiter {
	log.Debug("loading current rate limit from github")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rateLimits, _, err := githubClient.RateLimit.Get(ctx)
	if err != nil || rateLimits.GetCore() == nil || rateLimits.GetCore().Limit <= 0 {
		log.WithError(err).WithField("requestsPerHour", fallbackPerHour).Warning("unable to load current github rate limits, using configured limit")
		return rate.NewLimiter(rate.Every(time.Hour/time.Duration(max(fallbackPerHour, 1))), fallbackPerHour)
	}

	core := rateLimits.GetCore()

	log.WithFields(log.Fields{
		"totalAvailable":    core.Limit,
		"remainingRequests": core.Remaining,
	}).Debug("will setup local rate limiter with rate limits infos from github")

	// refill at the github pace, the whole quota is given back every hour
	rateLimiter := rate.NewLimiter(rate.Every(time.Hour/time.Duration(core.Limit)), core.Limit)
	rateLimiter.AllowN(time.Now(), core.Limit-core.Remaining)

	return rateLimiter
}
