package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/versioncheck/internal/flagx"
)

var knownFlags = []string{"-a", "-t", "-d", "-l", "-f"}

// parseFlags populates selected Config fields from command-line flags:
//
//	-a string     API base URL
//	-t duration   per-request timeout
//	-d string     path of the SQLite credential database
//	-l string     log level (debug, info, warn, error)
//	-f string     log format (text, json, console)
//
// Other flags in args are filtered out with flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "credential database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format")

	return fs.Parse(flagx.FilterArgs(args, knownFlags))
}
