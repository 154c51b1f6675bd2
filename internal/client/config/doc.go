// Package config loads runtime configuration for the authshell client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, after loading an optional dotenv file
//     (-e/-env flag, or ./.env when present).
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the authentication service
//	-i int      online status check interval (seconds)
//	-d string   path of the local session database
//	-t int      request timeout (seconds, 0 disables)
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (text, json)
//
// Environment variables
//
//	AUTHSHELL_SERVER_URL, AUTHSHELL_ONLINE_CHECK_INTERVAL, AUTHSHELL_DB_PATH,
//	AUTHSHELL_REQUEST_TIMEOUT, AUTHSHELL_LOG_LEVEL, AUTHSHELL_LOG_FORMAT
//
// Durations in the environment and in JSON use Go syntax ("3s", "500ms");
// JSON additionally accepts integer nanoseconds:
//
//	{
//	  "server_url": "http://localhost:8000",
//	  "online_check_interval": "3s",
//	  "db_path": "authshell.db",
//	  "request_timeout": "0s",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
