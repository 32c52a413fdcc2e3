package game

import "math"

// Ball is the per-stroke mutable state: position and velocity on the world
// plane. A ball is created at the hole's start, advanced tick by tick, and
// discarded once the stroke resolves.
type Ball struct {
	Pos Vec2 `json:"pos"`
	Vel Vec2 `json:"vel"`
}

// ApplyShot maps an aim angle (radians) and normalized power to the ball's
// initial velocity. Power is clamped to [0,1] before the power curve is
// applied, so there is no error path.
func ApplyShot(b Ball, angle, power float64) Ball {
	if power < 0 {
		power = 0
	} else if power > 1 {
		power = 1
	}
	speed := ShotSpeedMin + math.Pow(power, ShotPowerExponent)*(ShotSpeedMax-ShotSpeedMin)
	b.Vel = angleDir(angle).Times(speed)
	return b
}
