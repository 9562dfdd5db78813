package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("process environment overlays config", func(t *testing.T) {
		os.Args = []string{"testbin", "-env", filepath.Join(t.TempDir(), "missing.env")}
		t.Setenv("CAREADMIN_UPLOAD_DELAY", "750ms")
		t.Setenv("CAREADMIN_LOG_BACKEND", "logrus")
		t.Setenv("CAREADMIN_MAX_UPLOAD_SIZE", "4096")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, 750*time.Millisecond, cfg.UploadDelay)
		assert.Equal(t, "logrus", cfg.LogBackend)
		assert.Equal(t, int64(4096), cfg.MaxUploadSize)
		assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
	})

	t.Run("dotenv file is loaded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "care.env")
		require.NoError(t, os.WriteFile(path, []byte("CAREADMIN_LANGUAGE=de\nCAREADMIN_SECRET_KEY=from-file\n"), 0o600))
		os.Args = []string{"testbin", "-env", path}

		// godotenv writes into the process environment; register cleanup first.
		t.Setenv("CAREADMIN_LANGUAGE", "")
		t.Setenv("CAREADMIN_SECRET_KEY", "")
		require.NoError(t, os.Unsetenv("CAREADMIN_LANGUAGE"))
		require.NoError(t, os.Unsetenv("CAREADMIN_SECRET_KEY"))

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "de", cfg.DefaultLanguage)
		assert.Equal(t, "from-file", cfg.SecretKey)
	})

	t.Run("undecodable value panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-env", filepath.Join(t.TempDir(), "missing.env")}
		t.Setenv("CAREADMIN_UPLOAD_DELAY", "later")

		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
