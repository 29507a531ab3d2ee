package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"STOREFRONT_APP_NAME":         os.Getenv("STOREFRONT_APP_NAME"),
		"STOREFRONT_APP_ENV":          os.Getenv("STOREFRONT_APP_ENV"),
		"STOREFRONT_APP_PORT":         os.Getenv("STOREFRONT_APP_PORT"),
		"STOREFRONT_LOG_LEVEL":        os.Getenv("STOREFRONT_LOG_LEVEL"),
		"STOREFRONT_STORAGE_PATH":     os.Getenv("STOREFRONT_STORAGE_PATH"),
		"STOREFRONT_CLOUD_SCRIPT_URL": os.Getenv("STOREFRONT_CLOUD_SCRIPT_URL"),
		"STOREFRONT_AI_API_KEY":       os.Getenv("STOREFRONT_AI_API_KEY"),
		"STOREFRONT_AI_MODEL":         os.Getenv("STOREFRONT_AI_MODEL"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "storefront", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "storefront.db", cfg.Storage.Path)
		assert.Equal(t, "", cfg.Cloud.ScriptURL)
		assert.Equal(t, 30*time.Second, cfg.Cloud.Timeout)
		assert.Equal(t, "gemini-2.5-flash", cfg.AI.Model)
		assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
		assert.Equal(t, []string{"*"}, cfg.HTTP.CORSAllowOrigins)
	})

	t.Run("env vars override defaults", func(t *testing.T) {
		clearEnv()
		os.Setenv("STOREFRONT_APP_PORT", "9090")
		os.Setenv("STOREFRONT_LOG_LEVEL", "debug")
		os.Setenv("STOREFRONT_STORAGE_PATH", ":memory:")
		os.Setenv("STOREFRONT_CLOUD_SCRIPT_URL", "https://script.google.com/macros/s/abc/exec")
		os.Setenv("STOREFRONT_AI_MODEL", "gemini-2.0-flash")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.App.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, ":memory:", cfg.Storage.Path)
		assert.Equal(t, "https://script.google.com/macros/s/abc/exec", cfg.Cloud.ScriptURL)
		assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	})

	t.Run("rejects invalid log level", func(t *testing.T) {
		clearEnv()
		os.Setenv("STOREFRONT_LOG_LEVEL", "loud")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects relative cloud script url", func(t *testing.T) {
		clearEnv()
		os.Setenv("STOREFRONT_CLOUD_SCRIPT_URL", "/macros/s/abc/exec")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestIsProduction(t *testing.T) {
	cfg := &Config{App: AppConfig{Env: "production"}}
	assert.True(t, cfg.IsProduction())

	cfg.App.Env = "development"
	assert.False(t, cfg.IsProduction())
}
