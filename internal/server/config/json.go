package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/sensitivv/internal/flagx"
	"github.com/dmitrijs2005/sensitivv/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// both strings such as "7d" or "168h" and integer nanoseconds. Absent
// fields leave the current value untouched.
type JsonConfig struct {
	Address       *string         `json:"address"`
	Storage       *string         `json:"storage"`
	DatabaseDSN   *string         `json:"database_dsn"`
	MongoURI      *string         `json:"mongodb_uri"`
	MongoDatabase *string         `json:"mongodb_database"`
	SecretKey     *string         `json:"secret_key"`
	TokenValidity *timex.Duration `json:"token_validity"`
	Environment   *string         `json:"environment"`
	BcryptCost    *int            `json:"bcrypt_cost"`
	LogLevel      *string         `json:"log_level"`
}

func parseJson(config *Config, args []string) error {
	jsonConfigFile := flagx.JSONConfigPath(args)

	// nothing to load
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	setIf(&config.Address, c.Address)
	setIf(&config.Storage, c.Storage)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.MongoURI, c.MongoURI)
	setIf(&config.MongoDatabase, c.MongoDatabase)
	setIf(&config.SecretKey, c.SecretKey)
	setIf(&config.Environment, c.Environment)
	setIf(&config.BcryptCost, c.BcryptCost)
	setIf(&config.LogLevel, c.LogLevel)
	if c.TokenValidity != nil {
		config.TokenValidity = c.TokenValidity.Duration
	}
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
