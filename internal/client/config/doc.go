// Package config loads runtime configuration for the Sensitivv terminal
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment: SENSITIVV_API_URL, SENSITIVV_DB, SENSITIVV_TIMEOUT.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the API server
//	-f string   path of the local SQLite database
//	-t string   HTTP request timeout, e.g. "10s"
//
// # JSON schema
//
//	{
//	  "api_url": "http://127.0.0.1:5008",
//	  "db_path": "sensitivv.db",
//	  "request_timeout": "10s"
//	}
package config
