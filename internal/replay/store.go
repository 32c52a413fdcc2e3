package replay

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/puttmatch/backend/internal/game"
)

// StrokeRecord is everything needed to re-run one stroke bit-for-bit: the
// inputs plus the outcome the original run produced. Because the simulation
// is a pure function of these inputs, re-running it and comparing digests is
// a complete anti-cheat check.
type StrokeRecord struct {
	MatchID      string    `json:"matchId"`
	HoleNumber   int       `json:"holeNumber"`
	StrokeNumber int       `json:"strokeNumber"`
	HoleID       string    `json:"holeId"`
	Start        game.Ball `json:"start"`
	AimAngleRad  float64   `json:"aimAngleRad"`
	Power01      float64   `json:"power01"`
	StartTime    float64   `json:"startTime"`
	Outcome      string    `json:"outcome"`
	FinalBall    game.Ball `json:"finalBall"`
	FrameDigest  string    `json:"frameDigest"`
	RecordedAt   time.Time `json:"recordedAt"`
}

// FrameDigest hashes a frame trace. Frames are reduced to their raw float64
// bits so the digest is exactly as strict as the simulation itself.
func FrameDigest(frames []game.Ball) string {
	h := sha256.New()
	var buf [32]byte
	for _, f := range frames {
		binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(f.Pos.X))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(f.Pos.Z))
		binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(f.Vel.X))
		binary.LittleEndian.PutUint64(buf[24:], math.Float64bits(f.Vel.Z))
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Record captures a resolved stroke into a StrokeRecord.
func Record(matchID string, holeNumber, strokeNumber int, holeID string,
	start game.Ball, aimAngleRad, power01, startTime float64,
	result game.SimulationResult) StrokeRecord {

	return StrokeRecord{
		MatchID:      matchID,
		HoleNumber:   holeNumber,
		StrokeNumber: strokeNumber,
		HoleID:       holeID,
		Start:        start,
		AimAngleRad:  aimAngleRad,
		Power01:      power01,
		StartTime:    startTime,
		Outcome:      result.Outcome(),
		FinalBall:    result.Ball,
		FrameDigest:  FrameDigest(result.Frames),
		RecordedAt:   time.Now().UTC(),
	}
}

// Verify re-runs the stroke from its recorded inputs and reports whether
// the outcome and frame trace match. Pure except for reading hole data.
func Verify(rec StrokeRecord, hole *game.HoleData) (bool, string) {
	ball := game.ApplyShot(rec.Start, rec.AimAngleRad, rec.Power01)
	result := game.SimulateUntilSettled(ball, hole, rec.StartTime, game.MaxSimTime)

	if got := result.Outcome(); got != rec.Outcome {
		return false, fmt.Sprintf("outcome mismatch: recorded %s, replayed %s", rec.Outcome, got)
	}
	if got := FrameDigest(result.Frames); got != rec.FrameDigest {
		return false, "frame digest mismatch"
	}
	return true, ""
}

// Store keeps stroke records in Redis under a TTL so recent strokes stay
// re-verifiable without unbounded growth.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func strokeKey(matchID string, holeNumber, strokeNumber int) string {
	return fmt.Sprintf("stroke:%s:%d:%d", matchID, holeNumber, strokeNumber)
}

// Save persists the record. A nil store is a no-op so callers without Redis
// skip persistence without branching.
func (s *Store) Save(ctx context.Context, rec StrokeRecord) error {
	if s == nil || s.rdb == nil {
		return nil
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, strokeKey(rec.MatchID, rec.HoleNumber, rec.StrokeNumber), data, s.ttl).Err()
}

// Get loads a previously saved record.
func (s *Store) Get(ctx context.Context, matchID string, holeNumber, strokeNumber int) (*StrokeRecord, error) {
	if s == nil || s.rdb == nil {
		return nil, fmt.Errorf("replay store is not configured")
	}
	data, err := s.rdb.Get(ctx, strokeKey(matchID, holeNumber, strokeNumber)).Bytes()
	if err != nil {
		return nil, err
	}
	var rec StrokeRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
