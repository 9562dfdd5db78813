// Package config handles configuration for the console server, including
// defaults, environment overlay, JSON overlay and command-line flags.
package config

import "time"

// Config holds runtime settings for the care-admin console.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the HTTP endpoint.
//   - SecretKey: HMAC secret for signing session cookies (HS256). Empty means
//     a random key is generated at startup, so cookies do not survive restarts.
//   - SessionValidityDuration: lifetime of a session cookie; idle workspaces
//     are evicted after the same period.
//   - UploadDelay: simulated latency of a file upload.
//   - DefaultLanguage: display language of a fresh workspace ("en" or "de").
//   - LogLevel / LogBackend: logger verbosity and implementation (slog, logrus).
//   - MaxUploadSize: upper bound for a multipart upload body, in bytes.
type Config struct {
	EndpointAddrHTTP        string
	SecretKey               string
	SessionValidityDuration time.Duration
	UploadDelay             time.Duration
	DefaultLanguage         string
	LogLevel                string
	LogBackend              string
	MaxUploadSize           int64
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.SecretKey = ""
	c.SessionValidityDuration = 24 * time.Hour
	c.UploadDelay = 2 * time.Second
	c.DefaultLanguage = "en"
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.MaxUploadSize = 32 << 20
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (and an optional dotenv file), an optional JSON file
// and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
