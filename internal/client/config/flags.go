package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/sensitivv/internal/flagx"
	"github.com/dmitrijs2005/sensitivv/internal/timex"
)

func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-f", "-t"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.APIURL, "a", config.APIURL, "API base URL")
	fs.StringVar(&config.DBPath, "f", config.DBPath, "local database file")
	timeout := fs.String("t", "", "request timeout")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if *timeout != "" {
		d, err := timex.ParseDuration(*timeout)
		if err != nil {
			return fmt.Errorf("parse flags: -t: %w", err)
		}
		config.RequestTimeout = d
	}
	return nil
}
