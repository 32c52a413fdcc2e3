package game

import "math"

// obstacleEffect carries the per-tick side flags an obstacle can raise.
type obstacleEffect struct {
	onBridge bool
	tunneled bool
}

// tickObstacle applies one obstacle to the ball. Handlers are pure in
// (ball, obstacle, elapsed); animated obstacles derive their pose from
// elapsed alone so replays stay exact.
func tickObstacle(b Ball, o *Obstacle, elapsed float64) (Ball, obstacleEffect) {
	switch o.Type {
	case ObstacleBumperRound:
		return tickBumperRound(b, o), obstacleEffect{}
	case ObstacleBumperWedge:
		return tickBumperWedge(b, o), obstacleEffect{}
	case ObstacleSpinner:
		return tickSpinner(b, o, elapsed), obstacleEffect{}
	case ObstacleGate:
		return tickGate(b, o, elapsed), obstacleEffect{}
	case ObstacleBridge:
		return b, obstacleEffect{onBridge: ballOnBridge(b, o)}
	case ObstacleTunnel:
		b, tunneled := tickTunnel(b, o)
		return b, obstacleEffect{tunneled: tunneled}
	case ObstacleSpeedGate:
		return tickSpeedGate(b, o), obstacleEffect{}
	}
	return b, obstacleEffect{}
}

func tickBumperRound(b Ball, o *Obstacle) Ball {
	d := b.Pos.DistanceTo(o.Pos)
	hitRadius := o.Radius + BallRadius
	if d >= hitRadius {
		return b
	}

	var normal Vec2
	if d > 0 {
		normal = b.Pos.Minus(o.Pos).Times(1 / d)
	} else {
		normal = b.Vel.Normalize().Invert()
		if normal.IsZero() {
			normal = Vec2{X: 1}
		}
	}

	b.Pos = o.Pos.Plus(normal.Times(hitRadius))
	b.Vel = b.Vel.Reflect(normal).Times(BumperRestitution)
	return b
}

func tickBumperWedge(b Ball, o *Obstacle) Ball {
	dir := angleDir(degToRad(o.RotationDeg))
	segA := o.Pos.Minus(dir.Times(o.HalfLength))
	segB := o.Pos.Plus(dir.Times(o.HalfLength))
	b, _ = resolveSegmentHit(b, segA, segB, BumperRestitution)
	return b
}

// tickSpinner collides the ball with a bar rotating about its pivot. The
// bar spans half the configured length to each side. On contact the ball
// also picks up a share of the bar's surface speed at the contact point.
func tickSpinner(b Ball, o *Obstacle, elapsed float64) Ball {
	angle := (o.Phase + elapsed*o.RPS) * 2 * math.Pi
	dir := angleDir(angle)
	half := o.Length / 2
	segA := o.Pivot.Minus(dir.Times(half))
	segB := o.Pivot.Plus(dir.Times(half))

	hit, contact := resolveSegmentHit(b, segA, segB, WallRestitution)
	if contact == nil {
		return b
	}

	omega := o.RPS * 2 * math.Pi
	r := contact.Minus(o.Pivot)
	tangential := r.LeftNormal().Times(omega)
	hit.Vel = hit.Vel.Plus(tangential.Times(SpinnerTangentialFactor))
	return hit
}

// tickGate collides the ball with an arm oscillating about its hinge.
func tickGate(b Ball, o *Obstacle, elapsed float64) Ball {
	swing := math.Sin(2*math.Pi*elapsed/o.PeriodSec + 2*math.Pi*o.Phase)
	angle := degToRad(o.RotationBaseDeg) + swing*degToRad(o.ArcDeg)/2
	armEnd := o.Hinge.Plus(angleDir(angle).Times(o.ArmLength))
	b, _ = resolveSegmentHit(b, o.Hinge, armEnd, WallRestitution)
	return b
}

// ballOnBridge reports whether the ball's position projects onto the bridge
// deck. A bridge never collides; it only suppresses the hazard check for
// the current tick.
func ballOnBridge(b Ball, o *Obstacle) bool {
	t, dist := segmentProjection(b.Pos, o.A, o.B)
	return t >= 0 && t <= 1 && dist <= o.Width/2
}

func tickTunnel(b Ball, o *Obstacle) (Ball, bool) {
	if b.Pos.DistanceTo(o.Enter) > o.Radius+BallRadius {
		return b, false
	}
	b.Pos = o.Exit
	// Nudge forward so the exit can sit near another tunnel's entrance
	// without instantly re-triggering.
	if !b.Vel.IsZero() {
		b.Pos = b.Pos.Plus(b.Vel.Normalize().Times(BallRadius + TunnelExitNudge))
	}
	return b, true
}

// tickSpeedGate teleports balls that enter its zone within the speed window.
// Too slow or too fast with onFail "reflect" bounces the ball back out; any
// other onFail value lets the ball pass through unaffected.
func tickSpeedGate(b Ball, o *Obstacle) Ball {
	if !o.Entry.Contains(b.Pos) {
		return b
	}

	speed := b.Vel.Magnitude()
	if speed >= o.MinSpeed && speed <= o.MaxSpeed {
		b.Pos = o.Exit
		return b
	}

	if o.OnFail == "reflect" {
		restitution := o.ReflectRestitution
		if restitution == 0 {
			restitution = SpeedGateRestitution
		}
		b.Vel = b.Vel.Invert().Times(restitution)
		b.Pos = pushOutsideAABB(b.Pos, o.Entry)
	}
	return b
}

// pushOutsideAABB moves p just past the nearest face of the box.
func pushOutsideAABB(p Vec2, box AABB) Vec2 {
	const margin = 0.01

	left := p.X - box.Min.X
	right := box.Max.X - p.X
	top := p.Z - box.Min.Z
	bottom := box.Max.Z - p.Z

	minDist := left
	out := Vec2{X: box.Min.X - BallRadius - margin, Z: p.Z}
	if right < minDist {
		minDist = right
		out = Vec2{X: box.Max.X + BallRadius + margin, Z: p.Z}
	}
	if top < minDist {
		minDist = top
		out = Vec2{X: p.X, Z: box.Min.Z - BallRadius - margin}
	}
	if bottom < minDist {
		out = Vec2{X: p.X, Z: box.Max.Z + BallRadius + margin}
	}
	return out
}
