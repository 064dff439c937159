package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/storeadmin/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-b string   base path stripped before routing
//	-l string   locale ("zh-CN", "en")
//	-z string   time zone for dashboard day boundaries
//	-k int      bcrypt cost
//	-m bool     run migrations on startup
//	-t bool     enable bearer token authentication
//	-s string   JWT HMAC secret key
//	-v int      token validity, minutes
//	-r bool     gin release mode
//
// Boolean flags must use the "-m=false" form to be switched off.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-b", "-l", "-z", "-k", "-m", "-t", "-s", "-v", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.BasePath, "b", config.BasePath, "base path stripped from request paths")
	fs.StringVar(&config.Locale, "l", config.Locale, "message locale")
	fs.StringVar(&config.TimeZone, "z", config.TimeZone, "time zone for day boundaries")
	fs.IntVar(&config.BcryptCost, "k", config.BcryptCost, "bcrypt cost")
	fs.BoolVar(&config.RunMigrations, "m", config.RunMigrations, "run migrations on startup")
	fs.BoolVar(&config.TokenAuth, "t", config.TokenAuth, "enable bearer token authentication")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidityDuration := fs.Int("v", int(config.TokenValidityDuration.Minutes()), "token_validity_duration (in minutes)")

	fs.BoolVar(&config.ReleaseMode, "r", config.ReleaseMode, "gin release mode")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -v is whole minutes; only an explicit -v may replace a finer value
	// taken from JSON or the environment.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "v" {
			config.TokenValidityDuration = time.Duration(*tokenValidityDuration) * time.Minute
		}
	})
}
