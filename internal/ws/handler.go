package ws

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/puttmatch/backend/internal/config"
	"github.com/puttmatch/backend/internal/course"
	"github.com/puttmatch/backend/internal/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // origin is enforced by middleware.WebSocketCORSCheck
	},
}

const writeTimeout = 10 * time.Second

// HandleSimulateWS resolves one stroke and streams it as ball_snapshot
// messages at the broadcast rate, finishing with a hole_result. Each
// connection is one stroke; no session state survives the close.
//
// Query params: holeId (or matchId+holeNumber), angle (radians),
// power (0-1), startTime (seconds), owner.
func HandleSimulateWS(lib *course.Library, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		hole, err := resolveHoleQuery(lib, c)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		angle, err1 := strconv.ParseFloat(c.Query("angle"), 64)
		power, err2 := strconv.ParseFloat(c.Query("power"), 64)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "angle and power required"})
			return
		}
		startTime, _ := strconv.ParseFloat(c.DefaultQuery("startTime", "0"), 64)
		owner := c.DefaultQuery("owner", "preview")

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[WS] Upgrade error: %v", err)
			return
		}
		defer conn.Close()

		ball := game.ApplyShot(game.Ball{Pos: hole.Start}, angle, power)
		result := game.SimulateUntilSettled(ball, hole, startTime, game.MaxSimTime)
		snapshots := game.SnapshotFrames(result.Frames, owner, startTime, float64(cfg.SnapshotHz))

		// Pace messages at the broadcast interval so the stream plays back
		// in stroke time.
		interval := time.Second / time.Duration(cfg.SnapshotHz)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for _, msg := range snapshots {
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("[WS] Snapshot write failed: %v", err)
				return
			}
			<-ticker.C
		}

		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(result.ResultMsg(owner)); err != nil {
			log.Printf("[WS] Result write failed: %v", err)
			return
		}

		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "stroke resolved"),
			time.Now().Add(writeTimeout))
	}
}

func resolveHoleQuery(lib *course.Library, c *gin.Context) (*game.HoleData, error) {
	if holeID := c.Query("holeId"); holeID != "" {
		return lib.GetHole(holeID)
	}
	holeNumber, err := strconv.Atoi(c.DefaultQuery("holeNumber", "1"))
	if err != nil {
		holeNumber = 1
	}
	return lib.HoleForMatch(c.Query("matchId"), holeNumber)
}
