package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; real environment variables
// win over it (godotenv never overrides what is already set).
//
// Recognized variables:
//
//	EXPOTACNA_BASE_URL     backend REST root
//	EXPOTACNA_SOCKET_URL   realtime channel endpoint
//	EXPOTACNA_PAGE_SIZE    albums per page
//	EXPOTACNA_DB           local database path
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("EXPOTACNA_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("EXPOTACNA_SOCKET_URL"); v != "" {
		cfg.SocketURL = v
	}
	if v := os.Getenv("EXPOTACNA_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
	if v := os.Getenv("EXPOTACNA_DB"); v != "" {
		cfg.DatabaseDSN = v
	}
}
