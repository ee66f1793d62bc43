package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Missing salt fails startup", func(t *testing.T) {
		os.Unsetenv("KOALA_SALT")

		_, err := LoadConfig()
		assert.ErrorIs(t, err, ErrMissingSalt)
	})

	t.Run("Default values", func(t *testing.T) {
		os.Setenv("KOALA_SALT", "test-salt")
		defer os.Unsetenv("KOALA_SALT")

		cfg, err := LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "./koala.db", cfg.DatabasePath)
		assert.Equal(t, "./koala.log", cfg.LogPath)
		assert.Equal(t, "WARN", cfg.LogLevel)
		assert.Equal(t, "test-salt", cfg.Salt)
	})

	t.Run("Environment variables", func(t *testing.T) {
		os.Setenv("KOALA_SALT", "test-salt")
		os.Setenv("KOALA_DB_PATH", "/tmp/other.db")
		os.Setenv("KOALA_LOG_LEVEL", "DEBUG")
		defer func() {
			os.Unsetenv("KOALA_SALT")
			os.Unsetenv("KOALA_DB_PATH")
			os.Unsetenv("KOALA_LOG_LEVEL")
		}()

		cfg, err := LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, "/tmp/other.db", cfg.DatabasePath)
		assert.Equal(t, "DEBUG", cfg.LogLevel)
	})
}
