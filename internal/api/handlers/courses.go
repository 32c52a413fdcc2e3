package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/puttmatch/backend/internal/config"
	"github.com/puttmatch/backend/internal/course"
)

// ListHoles returns the manifest view of the loaded course pack.
func ListHoles(lib *course.Library) gin.HandlerFunc {
	return func(c *gin.Context) {
		m := lib.Manifest()
		c.JSON(http.StatusOK, gin.H{
			"count": lib.Count(),
			"holes": m.Holes,
		})
	}
}

// GetHole returns the full geometry of one hole.
func GetHole(lib *course.Library) gin.HandlerFunc {
	return func(c *gin.Context) {
		hole, err := lib.GetHole(c.Param("holeId"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, hole)
	}
}

// GetMatchSequence returns the deterministic hole sequence for a match.
// Clients compute the same list locally; this endpoint exists for debugging
// and for thin clients that skip the course bundle.
func GetMatchSequence(lib *course.Library, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		matchID := c.Param("matchId")
		seq, err := lib.GenerateMatchSequence(matchID, cfg.MaxHolesPerMatch)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, course.ErrEmptyTier) {
				status = http.StatusConflict
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"matchId": matchID, "sequence": seq})
	}
}

// GetMatchHole resolves which hole a match plays at a given hole number.
func GetMatchHole(lib *course.Library) gin.HandlerFunc {
	return func(c *gin.Context) {
		matchID := c.Param("matchId")
		holeNumber, err := strconv.Atoi(c.Param("holeNumber"))
		if err != nil || holeNumber < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "holeNumber must be a positive integer"})
			return
		}

		hole, err := lib.HoleForMatch(matchID, holeNumber)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, course.ErrEmptyTier) || errors.Is(err, course.ErrUnknownHole) {
				status = http.StatusConflict
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"matchId":    matchID,
			"holeNumber": holeNumber,
			"tier":       course.TierForHoleNumber(holeNumber),
			"hole":       hole,
		})
	}
}
