package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/puttmatch/backend/internal/config"
	"github.com/puttmatch/backend/internal/course"
	"github.com/puttmatch/backend/internal/game"
	"github.com/puttmatch/backend/internal/replay"
)

// SimulateRequest is one stroke to resolve. The hole comes either from an
// explicit holeId or from deterministic selection via matchId + holeNumber.
type SimulateRequest struct {
	HoleID       string     `json:"holeId"`
	MatchID      string     `json:"matchId"`
	HoleNumber   int        `json:"holeNumber"`
	StrokeNumber int        `json:"strokeNumber"`
	Start        *game.Vec2 `json:"start"` // defaults to the hole's start pad
	AimAngleRad  float64    `json:"aimAngleRad"`
	Power01      float64    `json:"power01"`
	StartTime    float64    `json:"startTime"`
}

// Simulate applies a shot and runs it to a terminal state. Stateless: no
// match or turn state lives here, so the endpoint doubles as the client's
// prediction oracle.
func Simulate(lib *course.Library, store *replay.Store, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SimulateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		hole, err := resolveHole(lib, &req)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		start := game.Ball{Pos: hole.Start}
		if req.Start != nil {
			start.Pos = *req.Start
		}

		ball := game.ApplyShot(start, req.AimAngleRad, req.Power01)
		result := game.SimulateUntilSettled(ball, hole, req.StartTime, game.MaxSimTime)

		if req.MatchID != "" && req.StrokeNumber > 0 {
			rec := replay.Record(req.MatchID, req.HoleNumber, req.StrokeNumber, hole.HoleID,
				start, req.AimAngleRad, req.Power01, req.StartTime, result)
			if err := store.Save(c.Request.Context(), rec); err != nil {
				log.Printf("[REPLAY] Failed to save stroke %s/%d/%d: %v",
					req.MatchID, req.HoleNumber, req.StrokeNumber, err)
			}
		}

		owner := req.MatchID
		c.JSON(http.StatusOK, gin.H{
			"holeId":      hole.HoleID,
			"outcome":     result.Outcome(),
			"hitHazard":   result.HitHazard,
			"tunneled":    result.Tunneled,
			"ticks":       result.Ticks,
			"ball":        result.Ball,
			"frameDigest": replay.FrameDigest(result.Frames),
			"snapshots":   game.SnapshotFrames(result.Frames, owner, req.StartTime, float64(cfg.SnapshotHz)),
			"result":      result.ResultMsg(owner),
		})
	}
}

// VerifyStroke re-runs a recorded stroke and reports whether the stored
// outcome still falls out of the deterministic simulation.
func VerifyStroke(lib *course.Library, store *replay.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			MatchID      string `json:"matchId" binding:"required"`
			HoleNumber   int    `json:"holeNumber" binding:"required"`
			StrokeNumber int    `json:"strokeNumber" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "matchId, holeNumber and strokeNumber required"})
			return
		}

		rec, err := store.Get(c.Request.Context(), req.MatchID, req.HoleNumber, req.StrokeNumber)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "stroke record not found"})
			return
		}

		hole, err := lib.GetHole(rec.HoleID)
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}

		valid, reason := replay.Verify(*rec, hole)
		c.JSON(http.StatusOK, gin.H{"valid": valid, "reason": reason})
	}
}

func resolveHole(lib *course.Library, req *SimulateRequest) (*game.HoleData, error) {
	if req.HoleID != "" {
		return lib.GetHole(req.HoleID)
	}
	return lib.HoleForMatch(req.MatchID, req.HoleNumber)
}
