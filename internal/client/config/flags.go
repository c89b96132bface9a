package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/daybook/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   server base URL (e.g., "http://127.0.0.1:5000")
//	-f int      flush delay, seconds
//	-b string   local database path
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerBaseURL, "a", config.ServerBaseURL, "server base URL")
	flushDelay := fs.Int("f", int(config.FlushDelay.Seconds()), "flush delay (in seconds)")
	fs.StringVar(&config.DatabasePath, "b", config.DatabasePath, "local database path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.FlushDelay = time.Duration(*flushDelay) * time.Second
}
