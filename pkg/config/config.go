package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the console application's settings.
type Config struct {
	// Instrument names the single book this process trades.
	Instrument string
	// Prompt is printed before each input line; empty disables it.
	Prompt string
	// LogPath, when set, sends structured logs to a file so stdout stays
	// clean for the interactive session.
	LogPath string
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string
}

func Default() Config {
	return Config{
		Instrument: "LOCAL",
		Prompt:     "> ",
		LogLevel:   "info",
	}
}

// LoadFromEnv loads configuration from a .env file (if present) and
// environment variables. Priority: env > .env file > defaults.
func LoadFromEnv(envPath string) Config {
	cfg := Default()

	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load()
	}

	if v := os.Getenv("MATCHER_INSTRUMENT"); v != "" {
		cfg.Instrument = v
	}
	if v, ok := os.LookupEnv("MATCHER_PROMPT"); ok {
		cfg.Prompt = v
	}
	if v := os.Getenv("MATCHER_LOG_PATH"); v != "" {
		cfg.LogPath = v
	}
	if v := os.Getenv("MATCHER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg
}
