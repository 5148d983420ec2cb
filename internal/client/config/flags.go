package config

import (
	"flag"
	"os"

	"github.com/harudiary/haru/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string       server address (host:port)
//	-debug string   file to write debug logs to
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-debug"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerAddr, "a", cfg.ServerAddr, "diary server address (host:port)")
	fs.StringVar(&cfg.DebugLogFile, "debug", cfg.DebugLogFile, "write debug logs to this file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
