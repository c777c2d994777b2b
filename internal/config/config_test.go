package config_test

import (
	"testing"
	"time"

	"github.com/nfrund/collectives/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SURREAL_URL", "ws://localhost:8000/rpc")
	t.Setenv("SURREAL_NS", "test")
	t.Setenv("SURREAL_DB", "test")
	t.Setenv("SESSION_SECRET", "a-very-secret-key-for-testing-!")
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		setRequired(t)
		t.Setenv("SERVER_ADDR", "")
		t.Setenv("APP_BASE_URL", "")
		t.Setenv("DB_QUERY_TIMEOUT", "")
		t.Setenv("LOG_FORMAT", "")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.GetServerAddr())
		assert.Equal(t, "http://localhost:8080", cfg.GetAppBaseURL())
		assert.Equal(t, 5*time.Second, cfg.GetDBQueryTimeout())
		assert.Equal(t, "text", cfg.GetLogFormat())
		assert.Equal(t, "test", cfg.GetDBNs())
	})

	t.Run("trims trailing slash from base url", func(t *testing.T) {
		setRequired(t)
		t.Setenv("APP_BASE_URL", "https://example.org/")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "https://example.org", cfg.GetAppBaseURL())
	})

	t.Run("parses query timeout", func(t *testing.T) {
		setRequired(t)
		t.Setenv("DB_QUERY_TIMEOUT", "250ms")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, 250*time.Millisecond, cfg.GetDBQueryTimeout())
	})

	t.Run("rejects malformed query timeout", func(t *testing.T) {
		setRequired(t)
		t.Setenv("DB_QUERY_TIMEOUT", "soon")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("reports every missing variable", func(t *testing.T) {
		setRequired(t)
		t.Setenv("SURREAL_URL", "")
		t.Setenv("SESSION_SECRET", "")

		_, err := config.Load()
		require.ErrorIs(t, err, config.ErrMissingRequired)
		assert.Contains(t, err.Error(), "SESSION_SECRET, SURREAL_URL")
	})
}
