// Package session persists the display-only identity of whoever is "signed in".
//
// The identity is stored as one opaque JSON blob under a fixed key, in a
// Storage with get/set/remove semantics. Nothing in it is authenticated.
package session

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// Storage is a key-value store holding raw blobs
type Storage interface {
	// Get returns found=false when nothing is stored under key
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// FileStorage keeps one file per key in a directory.
// It is meant for single user mode, every visitor shares the same identity.
type FileStorage struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStorage creates the directory if needed.
// If baseDir is empty, defaults to ~/.config/github-gazer/
func NewFileStorage(baseDir string) (*FileStorage, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "github-gazer")
	}

	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	return &FileStorage{baseDir: baseDir}, nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.baseDir, filepath.Base(key)+".json")
}

func (s *FileStorage) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read session file: %w", err)
	}

	return data, true, nil
}

func (s *FileStorage) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path(key), value, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

func (s *FileStorage) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}

	return nil
}

// Path returns the directory holding the session files
func (s *FileStorage) Path() string {
	return s.baseDir
}

var _ Storage = (*FileStorage)(nil)

// CookieStorage keeps blobs in the visitor's browser, one cookie per key.
// It is bound to a single request.
type CookieStorage struct {
	ctx    *gin.Context
	maxAge int
}

func NewCookieStorage(ctx *gin.Context, maxAge int) *CookieStorage {
	return &CookieStorage{ctx: ctx, maxAge: maxAge}
}

func (s *CookieStorage) Get(key string) ([]byte, bool, error) {
	raw, err := s.ctx.Cookie(key)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return nil, false, nil
		}
		return nil, false, err
	}

	if raw == "" {
		return nil, false, nil
	}

	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil, false, fmt.Errorf("decode session cookie: %w", err)
	}

	return data, true, nil
}

func (s *CookieStorage) Set(key string, value []byte) error {
	s.ctx.SetSameSite(http.SameSiteLaxMode)
	s.ctx.SetCookie(key, base64.RawURLEncoding.EncodeToString(value), s.maxAge, "/", "", isSecure(s.ctx), true)
	return nil
}

func (s *CookieStorage) Remove(key string) error {
	s.ctx.SetSameSite(http.SameSiteLaxMode)
	s.ctx.SetCookie(key, "", -1, "/", "", isSecure(s.ctx), true)
	return nil
}

var _ Storage = (*CookieStorage)(nil)

func isSecure(ctx *gin.Context) bool {
	return ctx.Request.TLS != nil || strings.EqualFold(ctx.GetHeader("X-Forwarded-Proto"), "https")
}
