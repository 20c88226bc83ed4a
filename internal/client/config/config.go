package config

import "time"

// Config holds runtime settings for the terminal client.
type Config struct {
	APIURL         string
	DBPath         string
	RequestTimeout time.Duration
}

func (c *Config) LoadDefaults() {
	c.APIURL = "http://127.0.0.1:5008"
	c.DBPath = "sensitivv.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig applies defaults, JSON, environment and args in that order.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
