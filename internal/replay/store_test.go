package replay

import (
	"context"
	"testing"

	"github.com/puttmatch/backend/internal/game"
)

func testHole() *game.HoleData {
	return &game.HoleData{
		Version: 1,
		HoleID:  "t1-test",
		Tier:    1,
		Bounds:  game.Bounds{Width: 14, Height: 6},
		Start:   game.NewVec2(2, 3),
		Cup:     game.NewVec2(13, 5.5),
		Walls: []game.Wall{
			{A: game.NewVec2(0, 0), B: game.NewVec2(14, 0)},
			{A: game.NewVec2(14, 0), B: game.NewVec2(14, 6)},
			{A: game.NewVec2(14, 6), B: game.NewVec2(0, 6)},
			{A: game.NewVec2(0, 6), B: game.NewVec2(0, 0)},
		},
	}
}

func recordStroke(hole *game.HoleData, angle, power float64) StrokeRecord {
	start := game.Ball{Pos: hole.Start}
	result := game.SimulateUntilSettled(game.ApplyShot(start, angle, power), hole, 0, game.MaxSimTime)
	return Record("m1", 1, 1, hole.HoleID, start, angle, power, 0, result)
}

func TestFrameDigestIsStableAndPositionSensitive(t *testing.T) {
	frames := []game.Ball{
		{Pos: game.NewVec2(1, 2), Vel: game.NewVec2(3, 4)},
		{Pos: game.NewVec2(1.1, 2), Vel: game.NewVec2(2.9, 4)},
	}

	if FrameDigest(frames) != FrameDigest(frames) {
		t.Fatal("digest of the same trace differs between calls")
	}

	nudged := []game.Ball{frames[0], frames[1]}
	nudged[1].Pos.X += 1e-15
	if FrameDigest(frames) == FrameDigest(nudged) {
		t.Error("a one-ulp position change must change the digest")
	}
	if len(FrameDigest(frames)) != 64 {
		t.Errorf("digest is not hex sha256: %q", FrameDigest(frames))
	}
}

func TestVerifyAcceptsHonestRecord(t *testing.T) {
	hole := testHole()
	rec := recordStroke(hole, 0.3, 0.6)

	ok, reason := Verify(rec, hole)
	if !ok {
		t.Fatalf("honest record rejected: %s", reason)
	}
}

func TestVerifyRejectsTamperedOutcome(t *testing.T) {
	hole := testHole()
	rec := recordStroke(hole, 0.3, 0.6)
	rec.Outcome = game.OutcomeHoled

	ok, reason := Verify(rec, hole)
	if ok {
		t.Fatal("forged outcome accepted")
	}
	if reason == "" {
		t.Error("rejection carries no reason")
	}
}

func TestVerifyRejectsTamperedDigest(t *testing.T) {
	hole := testHole()
	rec := recordStroke(hole, 0.3, 0.6)
	rec.FrameDigest = rec.FrameDigest[:63] + "0"
	if rec.FrameDigest == recordStroke(hole, 0.3, 0.6).FrameDigest {
		rec.FrameDigest = rec.FrameDigest[:63] + "1"
	}

	ok, _ := Verify(rec, hole)
	if ok {
		t.Fatal("forged digest accepted")
	}
}

func TestVerifyRejectsTamperedInputs(t *testing.T) {
	// Claiming less power than was actually used changes the replayed
	// trace, so the recorded digest no longer matches.
	hole := testHole()
	rec := recordStroke(hole, 0.3, 0.9)
	rec.Power01 = 0.5

	ok, _ := Verify(rec, hole)
	if ok {
		t.Fatal("understated power accepted")
	}
}

func TestNilStoreIsNoOp(t *testing.T) {
	var s *Store

	if err := s.Save(context.Background(), StrokeRecord{}); err != nil {
		t.Errorf("nil store Save: %v", err)
	}
	if _, err := s.Get(context.Background(), "m1", 1, 1); err == nil {
		t.Error("nil store Get must fail: there is nothing to read from")
	}
}
