package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/authshell/internal/flagx"
)

const (
	envServerURL           = "AUTHSHELL_SERVER_URL"
	envOnlineCheckInterval = "AUTHSHELL_ONLINE_CHECK_INTERVAL"
	envDatabasePath        = "AUTHSHELL_DB_PATH"
	envRequestTimeout      = "AUTHSHELL_REQUEST_TIMEOUT"
	envLogLevel            = "AUTHSHELL_LOG_LEVEL"
	envLogFormat           = "AUTHSHELL_LOG_FORMAT"
)

const defaultEnvFile = ".env"

// parseEnv overlays cfg with AUTHSHELL_* variables. A dotenv file named by
// -e/-env is loaded first and must exist; otherwise ./.env is loaded when
// present. Variables already set in the process environment win over the file.
// Malformed durations panic, matching the JSON and flag loaders.
func parseEnv(cfg *Config) {
	loadEnvFile(flagx.EnvFileFlag())

	if v, ok := os.LookupEnv(envServerURL); ok {
		cfg.ServerURL = v
	}
	if v, ok := os.LookupEnv(envDatabasePath); ok {
		cfg.DatabasePath = v
	}
	if v, ok := os.LookupEnv(envLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(envLogFormat); ok {
		cfg.LogFormat = v
	}
	if v, ok := os.LookupEnv(envOnlineCheckInterval); ok {
		cfg.OnlineCheckInterval = mustDuration(v)
	}
	if v, ok := os.LookupEnv(envRequestTimeout); ok {
		cfg.RequestTimeout = mustDuration(v)
	}
}

func loadEnvFile(path string) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
		return
	}
	if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
}

func mustDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		panic(err)
	}
	return d
}
