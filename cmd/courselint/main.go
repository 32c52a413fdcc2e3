package main

import (
	"flag"
	"log"
	"math"

	"github.com/joho/godotenv"
	"github.com/puttmatch/backend/internal/config"
	"github.com/puttmatch/backend/internal/course"
	"github.com/puttmatch/backend/internal/game"
)

// courselint validates a course pack the same way the server does at
// startup, then smoke-simulates one straight shot per hole to flag
// degenerate geometry (holes where a plain stroke never resolves cleanly).
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	dir := flag.String("courses", cfg.CoursesDir, "course pack directory")
	smoke := flag.Bool("smoke", true, "simulate a straight shot on every hole")
	flag.Parse()

	lib, err := course.LoadFromDisk(*dir)
	if err != nil {
		log.Fatalf("Course pack %s is invalid:\n%v", *dir, err)
	}

	log.Printf("✓ %d holes validated", lib.Count())
	for tier := 1; tier <= course.TierOvertime; tier++ {
		ids := lib.HolesByTier(tier)
		if len(ids) == 0 {
			log.Printf("  WARNING: tier %d is empty - selection for this tier will fail", tier)
			continue
		}
		log.Printf("  tier %d: %v", tier, ids)
	}

	if !*smoke {
		return
	}

	for _, id := range lib.AllHoleIDs() {
		hole, err := lib.GetHole(id)
		if err != nil {
			log.Fatalf("lookup %s: %v", id, err)
		}

		// Aim straight at the cup at half power.
		aim := math.Atan2(hole.Cup.Z-hole.Start.Z, hole.Cup.X-hole.Start.X)
		ball := game.ApplyShot(game.Ball{Pos: hole.Start}, aim, 0.5)
		result := game.SimulateUntilSettled(ball, hole, 0, game.MaxSimTime)

		log.Printf("  %s: %s after %d ticks at (%.2f, %.2f)",
			id, result.Outcome(), result.Ticks, result.Ball.Pos.X, result.Ball.Pos.Z)
	}
}
