package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DataFile string // JSON state file standing in for browser localStorage
	// Simulated round-trip latency for mutating resource calls, in milliseconds.
	// Mirrors the mock-API delay the UI was written against; 0 disables it.
	SimulatedLatencyMs int
	Seed               bool // load the built-in mock dataset on startup
	FrontendURL        string
}

func LoadConfig() (*Config, error) {
	// .env is only present in local development; ignore a missing file.
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		DataFile:           getEnv("DATA_FILE", "careerhub-state.json"),
		SimulatedLatencyMs: getEnvInt("SIMULATED_LATENCY_MS", 0),
		Seed:               getEnvBool("SEED", true),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
