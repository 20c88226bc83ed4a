package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/sensitivv/internal/flagx"
	"github.com/dmitrijs2005/sensitivv/internal/timex"
)

type JsonConfig struct {
	APIURL         string         `json:"api_url"`
	DBPath         string         `json:"db_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
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

	if c.APIURL != "" {
		config.APIURL = c.APIURL
	}
	if c.DBPath != "" {
		config.DBPath = c.DBPath
	}
	if c.RequestTimeout.Duration > 0 {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	return nil
}
