package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with AUTOPORT_* environment variables. A .env
// file in the working directory is loaded first when present; a missing
// file is not an error, configuration may come from the environment
// directly.
//
// Recognized variables:
//
//	AUTOPORT_SERVER_URL       backend base URL
//	AUTOPORT_REQUEST_TIMEOUT  duration, e.g. "15s"
//	AUTOPORT_DB_PATH          local sqlite path
//	AUTOPORT_ACTIVITY_LIMIT   integer
//
// Malformed values are ignored and the previous value is kept.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("AUTOPORT_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("AUTOPORT_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("AUTOPORT_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("AUTOPORT_ACTIVITY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ActivityLimit = n
		}
	}
}
