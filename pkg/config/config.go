package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pidboard/pkg/board"
	"pidboard/pkg/golemio"
)

const (
	// DefaultStopID is Tyršův dům, the stop the board was built for.
	DefaultStopID   = "U138Z2P"
	DefaultStopName = "Tyršův dům"
)

// ErrMissingAPIKey is returned by Validate until an access token is saved.
var ErrMissingAPIKey = errors.New("no Golemio API key configured. Please run 'pidboard config --api-key YOUR_KEY' first")

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	APIKey          string `json:"api_key,omitempty"`
	BaseURL         string `json:"base_url,omitempty"`
	StopID          string `json:"stop_id,omitempty"`
	StopName        string `json:"stop_name,omitempty"`
	Timezone        string `json:"timezone,omitempty"`
	TimestampFormat string `json:"timestamp_format,omitempty"`
	AccentColor     string `json:"accent_color,omitempty"`
}

// Default returns the configuration used when no file exists yet.
func Default() *AppConfig {
	cfg := &AppConfig{}
	cfg.applyDefaults()
	return cfg
}

func (c *AppConfig) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = golemio.DefaultBaseURL
	}
	if c.StopID == "" {
		c.StopID = DefaultStopID
		if c.StopName == "" {
			c.StopName = DefaultStopName
		}
	}
	if c.StopName == "" {
		c.StopName = c.StopID
	}
	if c.Timezone == "" {
		c.Timezone = board.DefaultTimezone
	}
	if c.TimestampFormat == "" {
		c.TimestampFormat = golemio.ISO8601.String()
	}
}

// Validate reports settings that would make every refresh fail.
func (c *AppConfig) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if _, err := golemio.ParseTimestampFormat(c.TimestampFormat); err != nil {
		return fmt.Errorf("invalid timestamp_format in config: %w", err)
	}
	if _, err := board.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone in config: %w", err)
	}
	return nil
}

// BoardOptions converts the stop settings into driver options.
func (c *AppConfig) BoardOptions() (board.Options, error) {
	format, err := golemio.ParseTimestampFormat(c.TimestampFormat)
	if err != nil {
		return board.Options{}, fmt.Errorf("invalid timestamp_format in config: %w", err)
	}

	loc, err := board.LoadLocation(c.Timezone)
	if err != nil {
		return board.Options{}, fmt.Errorf("invalid timezone in config: %w", err)
	}

	return board.Options{
		StopID:          c.StopID,
		StopName:        c.StopName,
		Limit:           golemio.DefaultLimit,
		TimestampFormat: format,
		Location:        loc,
	}, nil
}

// getConfigPath returns the absolute path to ~/.pidboard.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".pidboard.json"), nil
}

// Load reads the application configuration from disk. Missing fields, or a
// missing file, fall back to the defaults.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Save writes the application configuration back to disk. The file holds
// the API key, so it is only readable by the owner.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
