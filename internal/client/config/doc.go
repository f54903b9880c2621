// Package config loads runtime configuration for the version-check console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A dotenv file: the one given with -env, else ./.env if it exists.
//     It only exports variables that are not already set.
//  3. Optional JSON file selected with -c or -config.
//  4. VC_* environment variables, read with cleanenv.
//  5. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string     API base URL (http://localhost:8080)
//	-t duration   per-request timeout (15s)
//	-d string     SQLite credential database (data/console.db)
//	-l string     log level (info)
//	-f string     log format: text, json or console (console)
//
// # JSON schema
//
// Durations are strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://versioncheck.example.com",
//	  "request_timeout": "15s",
//	  "access_token_max_age": "1h",
//	  "refresh_token_max_age": "24h",
//	  "user_email_max_age": "24h",
//	  "database_path": "data/console.db",
//	  "log_level": "info",
//	  "log_format": "console",
//	  "sentry_dsn": "",
//	  "environment": "production"
//	}
package config
