package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the runtime settings for recipe-ideas.
type Config struct {
	APIBase           string
	RequestTimeout    time.Duration
	PerCategory       int
	MaxConcurrency    int
	RequestsPerSecond float64
	Burst             int
	LogFile           string
	LogLevel          string
}

const (
	defaultConfigPath        = "~/.config/recipe-ideas/config.toml"
	defaultAPIBase           = "https://www.themealdb.com/api/json/v1/1/"
	defaultRequestTimeout    = 10 * time.Second
	defaultPerCategory       = 3
	defaultMaxConcurrency    = 8
	defaultRequestsPerSecond = 10
	defaultBurst             = 5
	defaultLogFile           = "~/.local/share/recipe-ideas/recipe-ideas.log"
	defaultLogLevel          = "info"
)

// envOverrides are applied after the file so a shell can point the app at a
// different API without editing config.toml.
type envOverrides struct {
	APIBase     string `env:"RECIPE_IDEAS_API_BASE"`
	LogLevel    string `env:"RECIPE_IDEAS_LOG_LEVEL"`
	PerCategory int    `env:"RECIPE_IDEAS_PER_CATEGORY"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBase:           defaultAPIBase,
		RequestTimeout:    defaultRequestTimeout,
		PerCategory:       defaultPerCategory,
		MaxConcurrency:    defaultMaxConcurrency,
		RequestsPerSecond: defaultRequestsPerSecond,
		Burst:             defaultBurst,
		LogFile:           mustExpand(defaultLogFile),
		LogLevel:          defaultLogLevel,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg)
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase           string  `toml:"api_base"`
		RequestTimeout    string  `toml:"request_timeout"`
		PerCategory       int     `toml:"per_category"`
		MaxConcurrency    int     `toml:"max_concurrency"`
		RequestsPerSecond float64 `toml:"requests_per_second"`
		Burst             int     `toml:"burst"`
		LogFile           string  `toml:"log_file"`
		LogLevel          string  `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if base := strings.TrimSpace(raw.APIBase); base != "" {
		cfg.APIBase = base
	}
	if timeout := strings.TrimSpace(raw.RequestTimeout); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse request_timeout: %w", err)
		}
		if d > 0 {
			cfg.RequestTimeout = d
		}
	}
	if raw.PerCategory > 0 {
		cfg.PerCategory = raw.PerCategory
	}
	if raw.MaxConcurrency > 0 {
		cfg.MaxConcurrency = raw.MaxConcurrency
	}
	if raw.RequestsPerSecond > 0 {
		cfg.RequestsPerSecond = raw.RequestsPerSecond
	}
	if raw.Burst > 0 {
		cfg.Burst = raw.Burst
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}

	return applyEnv(cfg)
}

func applyEnv(cfg Config) (Config, error) {
	var env envOverrides
	if err := envdecode.Decode(&env); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("decode env overrides: %w", err)
	}
	if base := strings.TrimSpace(env.APIBase); base != "" {
		cfg.APIBase = base
	}
	if level := strings.TrimSpace(env.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if env.PerCategory > 0 {
		cfg.PerCategory = env.PerCategory
	}
	return cfg, nil
}

// DefaultPath returns the config file consulted when no path is given.
func DefaultPath() string {
	return defaultConfigPath
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
