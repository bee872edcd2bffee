package config

import (
	"flag"
	"os"
	"time"

	"github.com/obolotin/ledgerboard/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-host string     Postgres host
//	-port int        Postgres port
//	-db string       Postgres database name
//	-dbuser string   Postgres user
//	-dbpass string   Postgres password
//	-redis string    Redis address for the view cache
//	-s string        session token HMAC secret key
//	-t int           session TTL, minutes
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components (such as the
// -c/-config flags the JSON stage reads).
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		[]string{"-host", "-port", "-db", "-dbuser", "-dbpass", "-redis", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.PostgresHost, "host", config.PostgresHost, "database host")
	fs.IntVar(&config.PostgresPort, "port", config.PostgresPort, "database port")
	fs.StringVar(&config.PostgresDatabase, "db", config.PostgresDatabase, "database name")
	fs.StringVar(&config.PostgresUser, "dbuser", config.PostgresUser, "database user")
	fs.StringVar(&config.PostgresPassword, "dbpass", config.PostgresPassword, "database password")
	fs.StringVar(&config.RedisAddr, "redis", config.RedisAddr, "redis address for the view cache")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionTTL := fs.Int("t", 0, "session ttl (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// The minutes flag only applies when the user actually passed it; a TTL
	// from the JSON or env stages may not be a whole number of minutes and
	// must survive untouched.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
		}
	})
}
