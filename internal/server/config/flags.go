package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/sensitivv/internal/flagx"
	"github.com/dmitrijs2005/sensitivv/internal/timex"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g. ":5008")
//	-s string   storage backend: memory, postgres, mongo
//	-d string   PostgreSQL DSN
//	-m string   MongoDB URI
//	-n string   MongoDB database name
//	-k string   JWT HMAC secret key
//	-t string   token validity, e.g. "7d" or "12h"
//	-b int      bcrypt cost
//	-e string   environment (development, production)
//	-l string   log level
//
// Only the flags listed above are picked out of args, so the JSON config
// flag can share the same argument list.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-d", "-m", "-n", "-k", "-t", "-b", "-e", "-l"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.Address, "a", config.Address, "address and port to run server")
	fs.StringVar(&config.Storage, "s", config.Storage, "storage backend")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.MongoURI, "m", config.MongoURI, "MongoDB URI")
	fs.StringVar(&config.MongoDatabase, "n", config.MongoDatabase, "MongoDB database")
	fs.StringVar(&config.SecretKey, "k", config.SecretKey, "JWT secret key")
	tokenValidity := fs.String("t", "", "token validity")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.Environment, "e", config.Environment, "environment")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if *tokenValidity != "" {
		d, err := timex.ParseDuration(*tokenValidity)
		if err != nil {
			return fmt.Errorf("parse flags: -t: %w", err)
		}
		config.TokenValidity = d
	}
	return nil
}
