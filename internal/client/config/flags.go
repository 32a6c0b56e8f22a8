package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/badgekeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// The function filters os.Args to the flags it knows about, using
// flagx.FilterArgs, so the config file flag does not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the badge API")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "session database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
