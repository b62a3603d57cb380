// Package config loads eye-guard settings from defaults, a YAML file and
// the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Notifier backends.
const (
	NotifierDesktop = "desktop"
	NotifierStdout  = "stdout"
)

// Config holds all configuration for eye-guard
type Config struct {
	// Break timing
	IdleInterval    time.Duration `yaml:"idle_interval" env:"EYE_GUARD_IDLE_INTERVAL"`
	OverlayDuration time.Duration `yaml:"overlay_duration" env:"EYE_GUARD_OVERLAY_DURATION"`

	// Overlay appearance
	MarkerRadius    int   `yaml:"marker_radius" env:"EYE_GUARD_MARKER_RADIUS"`
	MarkerColor     Color `yaml:"marker_color" env:"EYE_GUARD_MARKER_COLOR"`
	BackgroundColor Color `yaml:"background_color" env:"EYE_GUARD_BACKGROUND_COLOR"`
	FallbackWidth   int   `yaml:"fallback_width"`
	FallbackHeight  int   `yaml:"fallback_height"`

	// Notification settings
	Notifier      string          `yaml:"notifier" env:"EYE_GUARD_NOTIFIER"`
	NotifyTitle   string          `yaml:"notify_title"`
	NotifyMessage string          `yaml:"notify_message"`
	Quiet         bool            `yaml:"quiet" env:"EYE_GUARD_QUIET"`
	StartupNotify bool            `yaml:"startup_notify" env:"EYE_GUARD_STARTUP_NOTIFY"`
	RateLimit     RateLimitConfig `yaml:"rate_limit"`

	LogLevel string `yaml:"log_level" env:"EYE_GUARD_LOG_LEVEL"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Window      time.Duration `yaml:"window"`
	MaxMessages int           `yaml:"max_messages"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		IdleInterval:    30 * time.Minute,
		OverlayDuration: 25 * time.Second,
		MarkerRadius:    30,
		MarkerColor:     Color{R: 255, G: 255, B: 255, A: 255},
		BackgroundColor: Color{A: 255},
		FallbackWidth:   800,
		FallbackHeight:  600,
		Notifier:        NotifierDesktop,
		NotifyTitle:     "Eye Guard",
		NotifyMessage:   "Time to rest your eyes!",
		RateLimit: RateLimitConfig{
			Window:      1 * time.Minute,
			MaxMessages: 5,
		},
		LogLevel: "info",
	}
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	configPath := Path()
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Path returns the config file path
func Path() string {
	// Check for explicit config path
	if path := os.Getenv("EYE_GUARD_CONFIG"); path != "" {
		return path
	}

	// Check XDG config directory
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "eye-guard", "config.yaml")
	}

	// Fall back to home directory
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "eye-guard", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (env var, flag or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("EYE_GUARD_IDLE_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid EYE_GUARD_IDLE_INTERVAL: %w", err)
		}
		cfg.IdleInterval = d
	}

	if v := os.Getenv("EYE_GUARD_OVERLAY_DURATION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid EYE_GUARD_OVERLAY_DURATION: %w", err)
		}
		cfg.OverlayDuration = d
	}

	if v := os.Getenv("EYE_GUARD_MARKER_RADIUS"); v != "" {
		r, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid EYE_GUARD_MARKER_RADIUS: %w", err)
		}
		cfg.MarkerRadius = r
	}

	if v := os.Getenv("EYE_GUARD_MARKER_COLOR"); v != "" {
		c, err := ParseColor(v)
		if err != nil {
			return fmt.Errorf("invalid EYE_GUARD_MARKER_COLOR: %w", err)
		}
		cfg.MarkerColor = c
	}

	if v := os.Getenv("EYE_GUARD_BACKGROUND_COLOR"); v != "" {
		c, err := ParseColor(v)
		if err != nil {
			return fmt.Errorf("invalid EYE_GUARD_BACKGROUND_COLOR: %w", err)
		}
		cfg.BackgroundColor = c
	}

	if v := os.Getenv("EYE_GUARD_NOTIFIER"); v != "" {
		cfg.Notifier = v
	}

	if quiet := os.Getenv("EYE_GUARD_QUIET"); quiet != "" {
		switch quiet {
		case "true", "1", "yes":
			cfg.Quiet = true
		case "false", "0", "no":
			cfg.Quiet = false
		default:
			return fmt.Errorf("invalid EYE_GUARD_QUIET value: %q (use true/false)", quiet)
		}
	}

	if startup := os.Getenv("EYE_GUARD_STARTUP_NOTIFY"); startup != "" {
		b, err := strconv.ParseBool(startup)
		if err != nil {
			return fmt.Errorf("invalid EYE_GUARD_STARTUP_NOTIFY value: %q (use true/false)", startup)
		}
		cfg.StartupNotify = b
	}

	if v := os.Getenv("EYE_GUARD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return nil
}

// Validate validates the configuration
func Validate(cfg *Config) error {
	if cfg.IdleInterval <= 0 {
		return fmt.Errorf("idle_interval must be positive")
	}

	if cfg.OverlayDuration <= 0 {
		return fmt.Errorf("overlay_duration must be positive")
	}

	if cfg.MarkerRadius < 0 {
		return fmt.Errorf("marker_radius must be non-negative")
	}

	if cfg.FallbackWidth <= 0 || cfg.FallbackHeight <= 0 {
		return fmt.Errorf("fallback_width and fallback_height must be positive")
	}

	switch cfg.Notifier {
	case NotifierDesktop, NotifierStdout:
	default:
		return fmt.Errorf("unknown notifier %q (use %s or %s)", cfg.Notifier, NotifierDesktop, NotifierStdout)
	}

	if cfg.RateLimit.MaxMessages < 0 {
		return fmt.Errorf("rate_limit.max_messages must be non-negative")
	}

	if cfg.RateLimit.Window < 0 {
		return fmt.Errorf("rate_limit.window must be non-negative")
	}

	if cfg.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
			return fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
		}
	}

	return nil
}
