package game

import "math"

// HazardHit identifies the hazard zone a ball entered this tick. The ball's
// position is left where it is; penalty and reset-to-last-safe belong to the
// room layer.
type HazardHit struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// TickResult is the outcome of one fixed-timestep update. Terminal
// conditions are result fields, never errors; callers branch on them.
type TickResult struct {
	Ball      Ball       `json:"ball"`
	Holed     bool       `json:"holed"`
	HitHazard *HazardHit `json:"hitHazard,omitempty"`
	Stopped   bool       `json:"stopped"`
	Tunneled  bool       `json:"tunneled"`
	RestAccum float64    `json:"restAccum"`
}

// PhysicsTick advances one ball by one fixed timestep against a hole.
//
// It is a pure function of its arguments: all per-stroke mutable state
// (restAccum, elapsed) is caller-owned, which lets the identical code run in
// the authoritative server loop and the client prediction loop, and makes
// every stroke independently replayable.
//
// The step order below is part of the contract with the client. Reordering
// changes the numerical outcome.
func PhysicsTick(b Ball, hole *HoleData, dt, elapsed, restAccum float64) TickResult {
	// 1. Height-field gravity.
	for i := range hole.HeightFields {
		hf := &hole.HeightFields[i]
		gx, gz, ok := heightGradientAt(hf, b.Pos)
		if !ok {
			continue
		}
		b.Vel.X += -Gravity * SlopeScale * gx * dt
		b.Vel.Z += -Gravity * SlopeScale * gz * dt
	}

	// 2. Surface damping and speed pads. Overlapping damping zones combine
	// via max, so stacking sand on slow never weakens either.
	damping := TurfDamping
	for i := range hole.Surfaces {
		s := &hole.Surfaces[i]
		if !s.Zone.Contains(b.Pos) {
			continue
		}
		switch s.Type {
		case SurfaceSand:
			damping = math.Max(damping, SandDamping)
		case SurfaceSlow:
			damping = math.Max(damping, SlowDamping)
		case SurfaceSpeed:
			accel := s.Accel
			if accel == 0 {
				accel = SpeedPadDefaultAccel
			}
			maxSpeed := s.MaxSpeed
			if maxSpeed == 0 {
				maxSpeed = SpeedPadMaxSpeed
			}
			b.Vel = b.Vel.Plus(s.Dir.Times(accel * dt))
			if speed := b.Vel.Magnitude(); speed > maxSpeed {
				b.Vel = b.Vel.Times(maxSpeed / speed)
			}
		}
	}

	// 3. Exponential decay.
	decay := math.Exp(-damping * dt)
	b.Vel = b.Vel.Times(decay)

	// 4. Integrate position.
	b.Pos = b.Pos.Plus(b.Vel.Times(dt))

	// 5. Wall collisions.
	for i := range hole.Walls {
		w := &hole.Walls[i]
		b, _ = resolveSegmentHit(b, w.A, w.B, WallRestitution)
	}

	// 6. Obstacles, in list order.
	onBridge := false
	tunneled := false
	for i := range hole.Obstacles {
		var eff obstacleEffect
		b, eff = tickObstacle(b, &hole.Obstacles[i], elapsed)
		onBridge = onBridge || eff.onBridge
		tunneled = tunneled || eff.tunneled
	}

	// 7. Hazards. A bridge suppresses hazard detection for this tick only;
	// cup capture and obstacles above are unaffected.
	var hazard *HazardHit
	if !onBridge {
		for i := range hole.Hazards {
			h := &hole.Hazards[i]
			if h.Zone.Contains(b.Pos) {
				hazard = &HazardHit{Type: h.Type, ID: h.ID}
				break
			}
		}
	}

	// 8. Cup capture: proximity and low speed, both required.
	holed := false
	if b.Pos.DistanceTo(hole.Cup) <= CupRadius+BallRadius && b.Vel.Magnitude() <= CupCaptureSpeed {
		b.Pos = hole.Cup
		b.Vel = Vec2{}
		holed = true
	}

	// 9. Rest-time accumulator: sustained low speed before declaring a stop.
	stopped := false
	if !holed && hazard == nil {
		if b.Vel.Magnitude() < StopThreshold {
			restAccum += dt
			if restAccum >= RestTime {
				b.Vel = Vec2{}
				stopped = true
			}
		} else {
			restAccum = 0
		}
	}

	return TickResult{
		Ball:      b,
		Holed:     holed,
		HitHazard: hazard,
		Stopped:   stopped,
		Tunneled:  tunneled,
		RestAccum: restAccum,
	}
}

// heightGradientAt returns the gradient of a height field at p, or ok=false
// when the field does not apply there.
func heightGradientAt(hf *HeightField, p Vec2) (gx, gz float64, ok bool) {
	switch hf.Type {
	case FieldPlane:
		if hf.Zone != nil && !hf.Zone.Contains(p) {
			return 0, 0, false
		}
		return hf.A, hf.B, true
	case FieldDome:
		off := p.Minus(hf.Center)
		if off.Magnitude() > hf.Radius {
			return 0, 0, false
		}
		// h(r) = H * (1 - r²/R²), so ∇h = (-2H/R²) * (dx, dz)
		k := -2 * hf.Height / (hf.Radius * hf.Radius)
		return k * off.X, k * off.Z, true
	}
	return 0, 0, false
}

// resolveSegmentHit runs the circle-vs-segment test against a-b. On
// penetration the ball is pushed out along the contact normal and its
// velocity reflected at the given restitution. Returns the contact point
// when a hit occurred.
func resolveSegmentHit(b Ball, a, end Vec2, restitution float64) (Ball, *Vec2) {
	closest := closestPointOnSegment(b.Pos, a, end)
	d := b.Pos.DistanceTo(closest)
	if d >= BallRadius {
		return b, nil
	}

	var normal Vec2
	if d > 0 {
		normal = b.Pos.Minus(closest).Times(1 / d)
	} else {
		// Center exactly on the segment: push back against the motion.
		normal = end.Minus(a).LeftNormal().Normalize()
		if b.Vel.Dot(normal) > 0 {
			normal = normal.Invert()
		}
	}

	b.Pos = b.Pos.Plus(normal.Times(BallRadius - d))
	b.Vel = b.Vel.Reflect(normal).Times(restitution)
	return b, &closest
}
