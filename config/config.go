package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/CIDgravity/snakelet"
)

// config structure
type Config struct {
	API     APIConfig     `mapstructure:"API"`
	Github  GithubConfig  `mapstructure:"GITHUB"`
	Session SessionConfig `mapstructure:"SESSION"`
	Logs    LogsConfig    `mapstructure:"LOGS"`
}

type APIConfig struct {
	ListenPort     string   `mapstructure:"ListenPort"`
	AllowedOrigins []string `mapstructure:"AllowedOrigins"`
}

type GithubConfig struct {
	Token string `mapstructure:"Token"`

	// BaseURL overrides https://api.github.com/ (GitHub Enterprise, local stubs)
	BaseURL string `mapstructure:"BaseURL"`

	// RequestsPerHour is used for the local rate limiter when github rate limits can't be loaded
	RequestsPerHour int `mapstructure:"RequestsPerHour"`
}

type SessionConfig struct {
	Backend      string `mapstructure:"Backend"` // cookie | file
	Dir          string `mapstructure:"Dir"`     // only used by the file backend
	CookieMaxAge int    `mapstructure:"CookieMaxAge"`
}

type LogsConfig struct {
	Level            string `mapstructure:"Level"` // error | warn | info | debug - case insensitive
	OutputLogsAsJSON bool   `mapstructure:"OutputLogsAsJSON"`
}

// Load
func Load() (*Config, error) {
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))

	if err != nil {
		return nil, err
	}

	configFilePath, err := resolveConfigFile(dir)
	if err != nil {
		return nil, err
	}

	// load default and config file content
	cfg := GetDefault()
	_, err = snakelet.InitAndLoad(cfg, configFilePath)

	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigFile looks next to the binary first, then in the working directory
func resolveConfigFile(binaryDir string) (string, error) {
	candidates := []string{
		filepath.Join(binaryDir, "config", "config.toml"),
		filepath.Join("config", "config.toml"),
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", os.ErrNotExist
}

// IsMissingFile reports whether Load failed only because no config file exists
func IsMissingFile(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

// GetDefault
func GetDefault() *Config {
	return &Config{
		API: APIConfig{
			ListenPort:     "5000",
			AllowedOrigins: []string{"*"},
		},
		Github: GithubConfig{
			RequestsPerHour: 60,
		},
		Session: SessionConfig{
			Backend:      "cookie",
			CookieMaxAge: 30 * 24 * 3600,
		},
		Logs: LogsConfig{
			Level:            "debug",
			OutputLogsAsJSON: false,
		},
	}
}
