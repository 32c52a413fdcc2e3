package game

import "math"

// SimulationResult is a fully resolved stroke: the frame trace for replay
// and broadcast, plus exactly one terminal condition.
type SimulationResult struct {
	Frames    []Ball     `json:"frames"`
	Ball      Ball       `json:"ball"`
	Holed     bool       `json:"holed"`
	HitHazard *HazardHit `json:"hitHazard,omitempty"`
	Stopped   bool       `json:"stopped"`
	Tunneled  bool       `json:"tunneled"`
	Ticks     int        `json:"ticks"`
}

// SimulateUntilSettled advances the ball tick by tick until it holes out,
// enters a hazard, or comes to rest. startTime seeds the obstacle clock so
// spinners and gates animate continuously across strokes within one hole.
//
// The driver never returns an unresolved stroke: if the tick budget runs out
// it forces a stop on the last state.
func SimulateUntilSettled(b Ball, hole *HoleData, startTime, maxTime float64) SimulationResult {
	maxTicks := int(math.Ceil(maxTime / Dt))

	frames := make([]Ball, 0, maxTicks+1)
	frames = append(frames, b)

	restAccum := 0.0
	tunneled := false

	for i := 0; i < maxTicks; i++ {
		res := PhysicsTick(b, hole, Dt, startTime+float64(i)*Dt, restAccum)
		b = res.Ball
		restAccum = res.RestAccum
		tunneled = tunneled || res.Tunneled
		frames = append(frames, b)

		if res.Holed || res.HitHazard != nil || res.Stopped {
			return SimulationResult{
				Frames:    frames,
				Ball:      b,
				Holed:     res.Holed,
				HitHazard: res.HitHazard,
				Stopped:   res.Stopped,
				Tunneled:  tunneled,
				Ticks:     i + 1,
			}
		}
	}

	// Budget exhausted without a terminal flag (e.g. a ball orbiting a
	// speed pad): force a stop so the stroke always resolves.
	b.Vel = Vec2{}
	frames[len(frames)-1] = b
	return SimulationResult{
		Frames:   frames,
		Ball:     b,
		Stopped:  true,
		Tunneled: tunneled,
		Ticks:    maxTicks,
	}
}
