package session

import (
	"fmt"
	"strings"

	"github.com/Scalingo/github-gazer/config"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Provider returns the storage backing the identity of the visitor behind a request
type Provider func(ctx *gin.Context) Storage

const (
	BackendCookie = "cookie"
	BackendFile   = "file"
)

// NewProvider picks the storage backend from configuration
func NewProvider(cfg config.SessionConfig) (Provider, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", BackendCookie:
		maxAge := cfg.CookieMaxAge
		return func(ctx *gin.Context) Storage {
			return NewCookieStorage(ctx, maxAge)
		}, nil

	case BackendFile:
		storage, err := NewFileStorage(cfg.Dir)
		if err != nil {
			return nil, err
		}

		log.WithField("dir", storage.Path()).Info("session identity shared by every visitor (file backend)")

		return func(*gin.Context) Storage {
			return storage
		}, nil

	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}
