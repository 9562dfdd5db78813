package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/dmitrijs2005/careadmin/internal/flagx"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix is prepended to every variable name, e.g. CAREADMIN_ADDR.
const envPrefix = "CAREADMIN"

// EnvConfig mirrors Config for envconfig decoding. Variables that are not
// set leave the corresponding field untouched.
type EnvConfig struct {
	EndpointAddrHTTP        string        `envconfig:"ADDR"`
	SecretKey               string        `envconfig:"SECRET_KEY"`
	SessionValidityDuration time.Duration `envconfig:"SESSION_VALIDITY"`
	UploadDelay             time.Duration `envconfig:"UPLOAD_DELAY"`
	DefaultLanguage         string        `envconfig:"LANGUAGE"`
	LogLevel                string        `envconfig:"LOG_LEVEL"`
	LogBackend              string        `envconfig:"LOG_BACKEND"`
	MaxUploadSize           int64         `envconfig:"MAX_UPLOAD_SIZE"`
}

// parseEnv loads an optional dotenv file (-env flag, default ".env") into
// the process environment and then overlays CAREADMIN_* variables onto
// config. A missing dotenv file is not an error; a malformed one, or a
// variable that cannot be decoded, panics like the other loaders.
func parseEnv(config *Config) {
	envFile := flagx.EnvFileFlag()
	if envFile == "" {
		envFile = ".env"
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	e := &EnvConfig{
		EndpointAddrHTTP:        config.EndpointAddrHTTP,
		SecretKey:               config.SecretKey,
		SessionValidityDuration: config.SessionValidityDuration,
		UploadDelay:             config.UploadDelay,
		DefaultLanguage:         config.DefaultLanguage,
		LogLevel:                config.LogLevel,
		LogBackend:              config.LogBackend,
		MaxUploadSize:           config.MaxUploadSize,
	}

	if err := envconfig.Process(envPrefix, e); err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = e.EndpointAddrHTTP
	config.SecretKey = e.SecretKey
	config.SessionValidityDuration = e.SessionValidityDuration
	config.UploadDelay = e.UploadDelay
	config.DefaultLanguage = e.DefaultLanguage
	config.LogLevel = e.LogLevel
	config.LogBackend = e.LogBackend
	config.MaxUploadSize = e.MaxUploadSize
}
