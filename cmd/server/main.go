package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/puttmatch/backend/internal/api"
	"github.com/puttmatch/backend/internal/config"
	"github.com/puttmatch/backend/internal/course"
	"github.com/puttmatch/backend/internal/redis"
	"github.com/puttmatch/backend/internal/replay"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Load the course pack. A broken pack is fatal: partially loaded
	// libraries are never served.
	lib, err := course.LoadFromDisk(cfg.CoursesDir)
	if err != nil {
		log.Fatalf("Failed to load courses from %s: %v", cfg.CoursesDir, err)
	}

	// Initialize Redis (optional: without it, stroke replay persistence
	// and /verify are disabled)
	var store *replay.Store
	if cfg.RedisURL != "" {
		rdb, err := redis.Connect(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer rdb.Close()
		store = replay.NewStore(rdb, time.Duration(cfg.ReplayTTLMinutes)*time.Minute)
		log.Printf("[REPLAY] Stroke replay store enabled (ttl=%dm)", cfg.ReplayTTLMinutes)
	} else {
		log.Printf("[REPLAY] REDIS_URL not set - stroke replay persistence disabled")
	}

	// Set up Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	api.SetupRoutes(router, lib, store, cfg)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting PuttMatch server on port %s (%d holes loaded)", port, lib.Count())
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
