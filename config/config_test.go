package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/highlighter/config"
	"github.com/sevigo/highlighter/testutil"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("HIGHLIGHTS_API_KEY", "")
		t.Setenv("HIGHLIGHTS_BASE_URL", "")
		t.Setenv("HIGHLIGHTER_ROOT", "")
		t.Setenv("HIGHLIGHTER_MAX_CHUNK_SIZE", "")

		logger, _ := testutil.NewTestLogger(t)
		cfg := config.Load(logger)
		assert.Empty(t, cfg.APIKey)
		assert.Equal(t, ".", cfg.Root)
		assert.Equal(t, 5, cfg.MaxHighlights)
	})

	t.Run("From environment", func(t *testing.T) {
		t.Setenv("HIGHLIGHTS_API_KEY", "secret")
		t.Setenv("HIGHLIGHTS_BASE_URL", "http://localhost:9000")
		t.Setenv("HIGHLIGHTER_MAX_CHUNK_SIZE", "250")

		logger, _ := testutil.NewTestLogger(t)
		cfg := config.Load(logger)
		assert.Equal(t, "secret", cfg.APIKey)
		assert.Equal(t, "http://localhost:9000", cfg.BaseURL)
		assert.Equal(t, 250, cfg.MaxChunkSize)
	})

	t.Run("Placeholder key treated as unset", func(t *testing.T) {
		t.Setenv("HIGHLIGHTS_API_KEY", "your_highlights_api_key_here")

		logger, buf := testutil.NewTestLogger(t)
		cfg := config.Load(logger)
		assert.Empty(t, cfg.APIKey)
		assert.Contains(t, buf.String(), "placeholder")
	})

	t.Run("Invalid chunk size ignored", func(t *testing.T) {
		t.Setenv("HIGHLIGHTER_MAX_CHUNK_SIZE", "not-a-number")

		logger, buf := testutil.NewTestLogger(t)
		cfg := config.Load(logger)
		assert.Zero(t, cfg.MaxChunkSize)
		assert.Contains(t, buf.String(), "invalid")
	})
}

func TestConfig_MergeFile(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)

	t.Run("Overlay", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"api_key: from-file\nmax_chunk_size: 300\ntop_n: 20\n"), 0o644))

		cfg := &config.Config{APIKey: "from-env", Root: "/data", MaxHighlights: 5}
		require.NoError(t, cfg.MergeFile(path, logger))

		assert.Equal(t, "from-file", cfg.APIKey)
		assert.Equal(t, "/data", cfg.Root, "unset file values keep existing settings")
		assert.Equal(t, 300, cfg.MaxChunkSize)
		assert.Equal(t, 20, cfg.TopN)
		assert.Equal(t, 5, cfg.MaxHighlights)
	})

	t.Run("Missing file", func(t *testing.T) {
		cfg := &config.Config{}
		assert.Error(t, cfg.MergeFile(filepath.Join(t.TempDir(), "nope.yaml"), logger))
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("api_key: [unclosed"), 0o644))

		cfg := &config.Config{}
		assert.Error(t, cfg.MergeFile(path, logger))
	})
}
