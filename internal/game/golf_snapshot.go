package game

import "math"

// Wire messages built from a resolved stroke. The room layer broadcasts
// these; nothing in this package does networking.

// BallSnapshotMsg is one subsampled frame of a ball in flight.
type BallSnapshotMsg struct {
	Type  string  `json:"type"`
	Owner string  `json:"owner"`
	Pos   Vec2    `json:"pos"`
	Vel   Vec2    `json:"vel"`
	T     float64 `json:"t"`
}

// HoleResultMsg reports how a stroke resolved.
type HoleResultMsg struct {
	Type      string     `json:"type"`
	Owner     string     `json:"owner"`
	Outcome   string     `json:"outcome"`
	Hazard    *HazardHit `json:"hazard,omitempty"`
	Ball      Ball       `json:"ball"`
	FlightSec float64    `json:"flightSec"`
}

// MatchEndMsg closes out a match. The room layer fills it from its own
// scorecard; it lives here so every wire type shares one definition.
type MatchEndMsg struct {
	Type        string         `json:"type"`
	Winner      string         `json:"winner,omitempty"`
	Scores      map[string]int `json:"scores"`
	HolesPlayed int            `json:"holesPlayed"`
}

// NewMatchEndMsg builds the terminal match broadcast. An empty winner means
// the match was drawn.
func NewMatchEndMsg(winner string, scores map[string]int, holesPlayed int) MatchEndMsg {
	return MatchEndMsg{Type: "match_end", Winner: winner, Scores: scores, HolesPlayed: holesPlayed}
}

// Stroke outcomes.
const (
	OutcomeHoled   = "holed"
	OutcomeHazard  = "hazard"
	OutcomeStopped = "stopped"
)

// Outcome names the single terminal condition of the result.
func (r SimulationResult) Outcome() string {
	switch {
	case r.Holed:
		return OutcomeHoled
	case r.HitHazard != nil:
		return OutcomeHazard
	default:
		return OutcomeStopped
	}
}

// SnapshotFrames subsamples a 60 Hz frame trace down to the broadcast rate.
// The first and last frames are always included so spectators see the exact
// start and resting state.
func SnapshotFrames(frames []Ball, owner string, startTime, hz float64) []BallSnapshotMsg {
	if len(frames) == 0 {
		return nil
	}

	step := 1
	if hz > 0 {
		step = int(math.Round(1 / (hz * Dt)))
		if step < 1 {
			step = 1
		}
	}

	msgs := make([]BallSnapshotMsg, 0, len(frames)/step+2)
	for i := 0; i < len(frames); i += step {
		msgs = append(msgs, snapshotMsg(frames[i], owner, startTime+float64(i)*Dt))
	}
	if last := len(frames) - 1; last%step != 0 {
		msgs = append(msgs, snapshotMsg(frames[last], owner, startTime+float64(last)*Dt))
	}
	return msgs
}

func snapshotMsg(b Ball, owner string, t float64) BallSnapshotMsg {
	return BallSnapshotMsg{Type: "ball_snapshot", Owner: owner, Pos: b.Pos, Vel: b.Vel, T: t}
}

// ResultMsg builds the terminal broadcast for a resolved stroke.
func (r SimulationResult) ResultMsg(owner string) HoleResultMsg {
	return HoleResultMsg{
		Type:      "hole_result",
		Owner:     owner,
		Outcome:   r.Outcome(),
		Hazard:    r.HitHazard,
		Ball:      r.Ball,
		FlightSec: float64(r.Ticks) * Dt,
	}
}
