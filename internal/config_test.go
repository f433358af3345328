package internal

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// clearEnv unsets every key read by Config; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"STORE_BACKEND", "BADGER_FILEPATH", "DATA_DIR", "MEDIA_DIR", "BLUGE_FILEPATH", "LOG_LEVEL", "SEARCH_LIMIT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("should fall back to defaults", func(t *testing.T) {
		req := require.New(t)
		clearEnv(t)

		config, err := LoadConfig("testdata/missing.env")

		req.NoError(err)
		req.Equal(BackendBadger, config.StoreBackend)
		req.Equal(10, config.SearchLimit)
		req.Equal("WARN", config.LogLevel)
	})

	t.Run("should read the environment", func(t *testing.T) {
		req := require.New(t)
		clearEnv(t)
		t.Setenv("STORE_BACKEND", BackendFile)
		t.Setenv("DATA_DIR", "/tmp/echo/data")
		t.Setenv("MEDIA_DIR", "/tmp/echo/media")
		t.Setenv("SEARCH_LIMIT", "25")
		t.Setenv("LOG_LEVEL", "DEBUG")

		config, err := LoadConfig("testdata/missing.env")

		req.NoError(err)
		req.Equal(BackendFile, config.StoreBackend)
		req.Equal("/tmp/echo/data", config.DataDir)
		req.Equal(25, config.SearchLimit)
		req.Equal("DEBUG", config.LogLevel)
	})

	t.Run("should reject an unknown backend", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STORE_BACKEND", "redis")
		_, err := LoadConfig("testdata/missing.env")
		require.ErrorContains(t, err, "STORE_BACKEND")
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{StoreBackend: BackendFile, DataDir: "data", MediaDir: "media", SearchLimit: 10}
	require.NoError(t, valid.Validate())

	noLimit := valid
	noLimit.SearchLimit = 0
	require.Error(t, noLimit.Validate())

	noBadgerPath := valid
	noBadgerPath.StoreBackend = BackendBadger
	require.Error(t, noBadgerPath.Validate())

	require.False(t, valid.SearchEnabled())
}
