package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/careadmin/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     HTTP bind address (e.g., ":8080")
//	-s string     session cookie HMAC secret
//	-t duration   session validity (e.g., "24h")
//	-d duration   simulated upload delay (e.g., "2s")
//	-g string     default display language (en, de)
//	-l string     log level (debug, info, warn, error)
//	-b string     log backend (slog, logrus)
//	-m int        maximum upload size, in bytes
//
// Only these flags are taken from os.Args, so -c/-config and -env can be
// handled by the other loaders.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-d", "-g", "-l", "-b", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "session secret key")
	fs.DurationVar(&config.SessionValidityDuration, "t", config.SessionValidityDuration, "session validity duration")
	fs.DurationVar(&config.UploadDelay, "d", config.UploadDelay, "simulated upload delay")
	fs.StringVar(&config.DefaultLanguage, "g", config.DefaultLanguage, "default language")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogBackend, "b", config.LogBackend, "log backend")
	fs.Int64Var(&config.MaxUploadSize, "m", config.MaxUploadSize, "max upload size in bytes")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
