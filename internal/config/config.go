package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config holds the application configuration.
type Config struct {
	ServerAddress string
	StoreBackend  string

	PostgresConn     string
	PostgresDatabase string

	// OfferResponseDelay is how long the simulated maid takes to answer a
	// direct offer from the leaderboard.
	OfferResponseDelay time.Duration
}

// Load reads configuration from the environment, with a .env file as
// fallback when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	return &Config{
		ServerAddress:      getEnv("SERVER_ADDRESS", ":8080"),
		StoreBackend:       getEnv("STORE_BACKEND", BackendMemory),
		PostgresConn:       getEnv("POSTGRES_CONN", ""),
		PostgresDatabase:   getEnv("POSTGRES_DATABASE", "homeconnect"),
		OfferResponseDelay: getDuration("OFFER_RESPONSE_DELAY", 3*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
		log.Printf("invalid duration for %s: %q, using default", key, value)

		return fallback
	}

	return d
}
