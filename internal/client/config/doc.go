// Package config loads runtime configuration for the badgekeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the badge API
//	-d string   path of the session database
//	-l string   log level
//
// # JSON schema
//
// Keys left out of the file keep their earlier value:
//
//	{
//	  "server_url": "http://localhost:8000",
//	  "session_db": "session.db",
//	  "log_level": "debug"
//	}
package config
