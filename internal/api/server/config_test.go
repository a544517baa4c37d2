package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("USE_HTTP2", "")
		t.Setenv("CORS_ORIGINS", "")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.False(t, cfg.UseHttp2)
		assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
	})

	t.Run("origins are trimmed and empty ones dropped", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("USE_HTTP2", "true")
		t.Setenv("CORS_ORIGINS", " http://a.test ,,http://b.test, ")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.True(t, cfg.UseHttp2)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CorsOrigins)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("PORT", "70000")

		_, err := LoadConfig()

		assert.ErrorContains(t, err, "invalid port")
	})

	t.Run("non numeric port", func(t *testing.T) {
		t.Setenv("PORT", "http")

		_, err := LoadConfig()

		assert.ErrorContains(t, err, "must be a number")
	})
}
