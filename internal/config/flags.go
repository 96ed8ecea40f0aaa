package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string         data directory (default from Config)
//	-audit            write the activity trail (use -audit=false to disable)
//	-loglevel string  log level: debug, info, warn, error
//
// The function filters os.Args to only the flags it owns, using
// flagx.FilterArgs, to avoid interference with the JSON config flags.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-audit", "-loglevel"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.BoolVar(&cfg.AuditEnabled, "audit", cfg.AuditEnabled, "write activity trail")
	fs.StringVar(&cfg.LogLevel, "loglevel", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
