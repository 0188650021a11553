// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/xonecas/chatbridge/internal/constants"
)

// EnvPrefix prefixes every environment override, e.g. CHATBRIDGE_API_FEED_URL.
const EnvPrefix = "chatbridge"

var validate = validator.New()

// Config is the root configuration structure.
type Config struct {
	API     APIConfig     `toml:"api"`
	Feed    FeedConfig    `toml:"feed"`
	Video   VideoConfig   `toml:"video"`
	Metrics MetricsConfig `toml:"metrics"`
}

// APIConfig holds the remote endpoints.
type APIConfig struct {
	FeedURL   string        `toml:"feed_url" split_words:"true" validate:"required,url"`
	SendURL   string        `toml:"send_url" split_words:"true" validate:"required,url"`
	AuthURL   string        `toml:"auth_url" split_words:"true" validate:"required,url"`
	Timeout   time.Duration `toml:"timeout" validate:"gt=0"`
	RateLimit float64       `toml:"rate_limit" split_words:"true" validate:"gt=0"`
	RateBurst int           `toml:"rate_burst" split_words:"true" validate:"gte=1"`
	RoomCode  int           `toml:"room_code" split_words:"true" validate:"gte=0"`
}

// FeedConfig holds polling and rendering settings.
type FeedConfig struct {
	PollInterval    time.Duration `toml:"poll_interval" split_words:"true" validate:"min=1s"`
	BottomThreshold int           `toml:"bottom_threshold" split_words:"true" validate:"gte=0"`
	CellHeight      int           `toml:"cell_height" split_words:"true" validate:"gte=1"`
	SettleDelay     time.Duration `toml:"settle_delay" split_words:"true" validate:"gte=0"`
	DateLayout      string        `toml:"date_layout" split_words:"true" validate:"required"`
}

// VideoConfig holds settings for the video playback surface.
type VideoConfig struct {
	APIKey string `toml:"youtube_api_key" split_words:"true"`
}

// MetricsConfig holds the optional prometheus listener.
type MetricsConfig struct {
	Addr string `toml:"addr" validate:"omitempty,hostname_port"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			FeedURL:   "https://chatbridgeapi.azurewebsites.net/api/Mensajes",
			SendURL:   "https://backcvbgtmdesa.azurewebsites.net/api/Mensajes",
			AuthURL:   "https://backcvbgtmdesa.azurewebsites.net/api/login/authenticate",
			Timeout:   constants.DefaultRequestTimeout,
			RateLimit: 5.0,
			RateBurst: 5,
			RoomCode:  0,
		},
		Feed: FeedConfig{
			PollInterval:    constants.DefaultPollInterval,
			BottomThreshold: constants.DefaultBottomThreshold,
			CellHeight:      constants.DefaultCellHeight,
			SettleDelay:     constants.DefaultSettleDelay,
			DateLayout:      constants.DefaultDateLayout,
		},
	}
}

// Load reads configuration from a TOML file, then a .env file, then applies
// environment variable overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Load from file if it exists
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("decode %s: %w", path, err)
			}
		}
	}

	if err := loadDotEnv(filepath.Join(filepath.Dir(path), ".env")); err != nil {
		return nil, err
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// loadDotEnv loads a .env file without overriding variables already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// DataDir returns the path to the chatbridge data directory (~/.chatbridge).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".chatbridge"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
