// Package config loads runtime configuration for the expotacna CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-w string   websocket endpoint of the realtime channel
//	-p int      albums per explore page
//	-i int      online status check interval (seconds)
//	-d string   local database path
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://127.0.0.1:5000",
//	  "socket_url": "ws://127.0.0.1:5000/ws",
//	  "page_size": 20,
//	  "online_check_interval": "3s",
//	  "database_dsn": "expotacna.db"
//	}
package config
