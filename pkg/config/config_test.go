package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cloudkit/pkg/config"
)

func TestLoad(t *testing.T) {
	t.Run("reads env vars", func(t *testing.T) {
		t.Setenv("CLOUDKIT_APP_ID", "app123")
		t.Setenv("CLOUDKIT_API_URL", "https://api.example.com")

		var cfg config.Config
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "app123", cfg.AppID)
		assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	})

	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("CLOUDKIT_APP_ID", "app123")
		os.Unsetenv("CLOUDKIT_API_URL")

		var cfg config.Config
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "https://api.cloudkit.dev", cfg.APIBaseURL)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[config.Config](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("overrides struct values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		require.NoError(t, os.WriteFile(path, []byte("app_id: from-file\n"), 0o600))

		cfg := config.Config{AppID: "from-env", APIBaseURL: "https://api.cloudkit.dev"}
		require.NoError(t, config.LoadFile(path, &cfg))

		assert.Equal(t, "from-file", cfg.AppID)
		// Keys absent from the file keep their current values.
		assert.Equal(t, "https://api.cloudkit.dev", cfg.APIBaseURL)
	})

	t.Run("missing file", func(t *testing.T) {
		var cfg config.Config
		err := config.LoadFile("does-not-exist.yaml", &cfg)
		assert.ErrorIs(t, err, config.ErrReadingFile)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		require.NoError(t, os.WriteFile(path, []byte(":\n\t-broken"), 0o600))

		var cfg config.Config
		err := config.LoadFile(path, &cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestAuthLabel(t *testing.T) {
	cfg := config.Config{AppID: "abc"}
	assert.Equal(t, "auth_abc", cfg.AuthLabel())
}
