package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/sensitivv/internal/timex"
)

type envConfig struct {
	APIURL         string         `env:"API_URL"`
	DBPath         string         `env:"DB"`
	RequestTimeout timex.Duration `env:"TIMEOUT"`
}

func parseEnv(config *Config) error {
	var e envConfig
	if err := env.ParseWithOptions(&e, env.Options{Prefix: "SENSITIVV_"}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if e.APIURL != "" {
		config.APIURL = e.APIURL
	}
	if e.DBPath != "" {
		config.DBPath = e.DBPath
	}
	if e.RequestTimeout.Duration > 0 {
		config.RequestTimeout = e.RequestTimeout.Duration
	}
	return nil
}
