package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/careadmin/internal/flagx"
	"github.com/dmitrijs2005/careadmin/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "2s" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrHTTP        string         `json:"endpoint_addr_http"`
	SecretKey               string         `json:"secret_key"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration"`
	UploadDelay             timex.Duration `json:"upload_delay"`
	DefaultLanguage         string         `json:"default_language"`
	LogLevel                string         `json:"log_level"`
	LogBackend              string         `json:"log_backend"`
	MaxUploadSize           int64          `json:"max_upload_size"`
}

// parseJson overlays values from the JSON file named by -c/-config onto
// config. Keys that are absent (zero after decoding) keep their previous
// value. An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.DefaultLanguage, c.DefaultLanguage)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogBackend, c.LogBackend)

	if c.SessionValidityDuration.Duration != 0 {
		config.SessionValidityDuration = c.SessionValidityDuration.Duration
	}
	if c.UploadDelay.Duration != 0 {
		config.UploadDelay = c.UploadDelay.Duration
	}
	if c.MaxUploadSize != 0 {
		config.MaxUploadSize = c.MaxUploadSize
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
