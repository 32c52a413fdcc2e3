package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Environment string

	// Server
	Port        string
	FrontendURL string

	// Courses
	CoursesDir string

	// Redis (optional; replay verification is disabled without it)
	RedisURL string

	// Replay
	ReplayTTLMinutes int

	// Broadcast
	SnapshotHz int

	// Match
	MaxHolesPerMatch int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Server
		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		// Courses
		CoursesDir: getEnv("COURSES_DIR", "courses"),

		// Redis
		RedisURL: getEnv("REDIS_URL", ""),

		// Replay
		ReplayTTLMinutes: getEnvInt("REPLAY_TTL_MINUTES", 60),

		// Broadcast
		SnapshotHz: getEnvInt("SNAPSHOT_HZ", 10),

		// Match
		MaxHolesPerMatch: getEnvInt("MAX_HOLES_PER_MATCH", 15),
	}

	// A non-positive rate would stall or crash the snapshot stream.
	if cfg.SnapshotHz < 1 {
		cfg.SnapshotHz = 1
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
