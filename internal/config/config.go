package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
// Everything has a sensible default: this is a local single-user tool and
// must come up with no environment at all.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	getEnv := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}
	getEnvInt := func(key string, fallback int) int {
		value, ok := os.LookupEnv(key)
		if !ok {
			return fallback
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			log.Warn("Ignoring non-numeric environment variable", "key", key, "value", value)
			return fallback
		}
		return n
	}

	return Config{
		DBName: getEnv("DB_NAME", "touchline.db"),
		Port:   getEnv("PORT", "8080"),
		Turso: TursoConfig{
			PrimaryURL: getEnv("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnv("TURSO_AUTH_TOKEN", ""),
		},
		Match: MatchConfig{
			MaxOnField:              getEnvInt("MAX_ON_FIELD", 11),
			RotationIntervalMinutes: getEnvInt("ROTATION_INTERVAL_MINUTES", 10),
			MatchTimeMinutes:        getEnvInt("MATCH_TIME_MINUTES", 90),
		},
	}
}
