package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-s", "secret", "-t", "1h", "-d", "500ms",
				"-g", "de", "-l", "debug", "-b", "logrus", "-m", "1024",
			},
			expected: &Config{
				EndpointAddrHTTP:        "127.0.0.1:9090",
				SecretKey:               "secret",
				SessionValidityDuration: time.Hour,
				UploadDelay:             500 * time.Millisecond,
				DefaultLanguage:         "de",
				LogLevel:                "debug",
				LogBackend:              "logrus",
				MaxUploadSize:           1024,
			},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"cmd", "-c", "conf.json", "-env", "x.env", "-a", ":1"},
			expected: &Config{EndpointAddrHTTP: ":1"},
		},
		{
			name:        "bad duration panics",
			args:        []string{"cmd", "-d", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
