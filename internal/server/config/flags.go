package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/credvault/internal/flagx"
)

var knownFlags = []string{"-a", "-t", "-d", "-n", "-o", "-w", "-s", "-l", "-b", "-p", "-v"}

// parseFlags overlays command-line flags onto config.
//
// Supported flags:
//
//	-a string   gRPC bind address (e.g. ":50051")
//	-t string   database driver: pgx or sqlite
//	-d string   database DSN
//	-n int      connection pool size
//	-o int      connections allowed beyond the pool size
//	-w int      store operation timeout, seconds
//	-s string   session token signing key
//	-l int      session lifetime, minutes
//	-b string   session backend: memory or db
//	-p string   password scheme: plain or bcrypt
//	-v string   log level
//
// Unknown flags (such as -c, handled by parseJson) are filtered out first.
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("credvault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "t", config.DatabaseDriver, "database driver (pgx|sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.IntVar(&config.PoolSize, "n", config.PoolSize, "connection pool size")
	fs.IntVar(&config.MaxOverflow, "o", config.MaxOverflow, "connections allowed beyond pool size")
	acquireTimeout := fs.Int("w", int(config.AcquireTimeout.Seconds()), "store operation timeout (in seconds)")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "session signing key")
	sessionTTL := fs.Int("l", int(config.SessionTTL.Minutes()), "session lifetime (in minutes)")
	fs.StringVar(&config.SessionBackend, "b", config.SessionBackend, "session backend (memory|db)")
	fs.StringVar(&config.PasswordScheme, "p", config.PasswordScheme, "password scheme (plain|bcrypt)")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return err
	}

	// Only explicitly passed duration flags override, so sub-unit values from
	// JSON or env survive a round trip through the integer flag defaults.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "w":
			config.AcquireTimeout = time.Duration(*acquireTimeout) * time.Second
		case "l":
			config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
		}
	})
	return nil
}
