package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/sensitivv/internal/timex"
	"github.com/joho/godotenv"
)

type envConfig struct {
	Port          string         `env:"PORT"`
	Storage       string         `env:"STORAGE"`
	DatabaseDSN   string         `env:"DATABASE_DSN"`
	MongoURI      string         `env:"MONGODB_URI"`
	MongoDatabase string         `env:"MONGODB_DATABASE"`
	SecretKey     string         `env:"JWT_SECRET"`
	TokenValidity timex.Duration `env:"TOKEN_VALIDITY"`
	Environment   string         `env:"APP_ENV"`
	BcryptCost    int            `env:"BCRYPT_COST"`
	LogLevel      string         `env:"LOG_LEVEL"`
}

// dotenvFiles are loaded before the environment is read. Variables already
// set in the process environment win.
var dotenvFiles = []string{".env"}

func parseEnv(config *Config) error {
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	var e envConfig
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if e.Port != "" {
		config.Address = ":" + e.Port
	}
	setIfNonZero(&config.Storage, e.Storage)
	setIfNonZero(&config.DatabaseDSN, e.DatabaseDSN)
	setIfNonZero(&config.MongoURI, e.MongoURI)
	setIfNonZero(&config.MongoDatabase, e.MongoDatabase)
	setIfNonZero(&config.SecretKey, e.SecretKey)
	setIfNonZero(&config.TokenValidity, e.TokenValidity.Duration)
	setIfNonZero(&config.Environment, e.Environment)
	setIfNonZero(&config.BcryptCost, e.BcryptCost)
	setIfNonZero(&config.LogLevel, e.LogLevel)
	return nil
}

func setIfNonZero[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}
