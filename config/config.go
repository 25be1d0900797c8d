// Package config loads highlighter configuration from the environment and
// from optional YAML files.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// placeholderAPIKey is the template value shipped in sample .env files and
// is treated as unset.
const placeholderAPIKey = "your_highlights_api_key_here"

// Config holds the settings of the highlight pipeline and its collaborators.
type Config struct {
	// APIKey authenticates against the highlights service. When empty the
	// stub ranker is selected and clearly labeled simulated output is
	// produced instead of failing hard.
	APIKey string `yaml:"api_key"`

	// BaseURL overrides the highlights service endpoint.
	BaseURL string `yaml:"base_url"`

	// Root is the directory served by the filesystem document store.
	Root string `yaml:"root"`

	MaxChunkSize  int `yaml:"max_chunk_size"`
	TopN          int `yaml:"top_n"`
	MaxHighlights int `yaml:"max_highlights"`
}

// Load reads configuration from a .env file (if present) and the
// environment. Absent values keep their defaults.
func Load(logger *slog.Logger) *Config {
	if logger == nil {
		logger = slog.Default()
	}
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to load .env file", "error", err)
	}

	cfg := &Config{
		Root:          ".",
		MaxHighlights: 5,
	}
	if v := os.Getenv("HIGHLIGHTS_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("HIGHLIGHTS_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("HIGHLIGHTER_ROOT"); v != "" {
		cfg.Root = v
	}
	if v := os.Getenv("HIGHLIGHTER_MAX_CHUNK_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxChunkSize = n
		} else {
			logger.Warn("invalid HIGHLIGHTER_MAX_CHUNK_SIZE", "value", v)
		}
	}

	cfg.normalize(logger)
	return cfg
}

// MergeFile overlays settings from a YAML file. Zero values in the file keep
// the current settings.
func (c *Config) MergeFile(path string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if file.APIKey != "" {
		c.APIKey = file.APIKey
	}
	if file.BaseURL != "" {
		c.BaseURL = file.BaseURL
	}
	if file.Root != "" {
		c.Root = file.Root
	}
	if file.MaxChunkSize > 0 {
		c.MaxChunkSize = file.MaxChunkSize
	}
	if file.TopN > 0 {
		c.TopN = file.TopN
	}
	if file.MaxHighlights > 0 {
		c.MaxHighlights = file.MaxHighlights
	}

	c.normalize(logger)
	return nil
}

func (c *Config) normalize(logger *slog.Logger) {
	if c.APIKey == placeholderAPIKey {
		logger.Warn("highlights API key is set to the placeholder value, treating as unset")
		c.APIKey = ""
	}
}
