package game

import (
	"math"
	"testing"
)

// obstacleHole drops one obstacle onto an otherwise empty walled rectangle.
func obstacleHole(o Obstacle) *HoleData {
	hole := flatHole(14, 6, NewVec2(2, 5.5))
	hole.Obstacles = []Obstacle{o}
	return hole
}

// runTicks advances the ball until pred holds or the budget runs out,
// returning the last result.
func runTicks(t *testing.T, ball Ball, hole *HoleData, maxTicks int, pred func(TickResult) bool) TickResult {
	t.Helper()
	restAccum := 0.0
	for i := 0; i < maxTicks; i++ {
		res := PhysicsTick(ball, hole, Dt, float64(i)*Dt, restAccum)
		ball = res.Ball
		restAccum = res.RestAccum
		if pred(res) {
			return res
		}
	}
	t.Fatalf("condition not reached within %d ticks; ball at %v", maxTicks, ball.Pos)
	return TickResult{}
}

func TestBumperRoundRepelsBall(t *testing.T) {
	hole := obstacleHole(Obstacle{Type: ObstacleBumperRound, Pos: NewVec2(7, 3), Radius: 0.5})

	res := runTicks(t, Ball{Pos: NewVec2(6, 3), Vel: NewVec2(4, 0)}, hole, 30, func(r TickResult) bool {
		return r.Ball.Vel.X < 0
	})

	if d := res.Ball.Pos.DistanceTo(NewVec2(7, 3)); d < 0.5+BallRadius-1e-9 {
		t.Errorf("ball left overlapping the bumper: distance %v", d)
	}
	// Head-on hit: the rebound carries bumper restitution, stronger than a
	// wall bounce of the same approach.
	if speed := res.Ball.Vel.Magnitude(); speed < 2 {
		t.Errorf("bumper rebound too weak for restitution %v: speed %v", BumperRestitution, speed)
	}
}

func TestBumperWedgeActsAsOrientedWall(t *testing.T) {
	// rotationDeg 90 stands the wedge vertically: segment (7,2)-(7,4).
	hole := obstacleHole(Obstacle{Type: ObstacleBumperWedge, Pos: NewVec2(7, 3), HalfLength: 1, RotationDeg: 90})

	res := runTicks(t, Ball{Pos: NewVec2(6, 3), Vel: NewVec2(3, 0)}, hole, 60, func(r TickResult) bool {
		return r.Ball.Vel.X < 0
	})

	if res.Ball.Pos.X > 7-BallRadius+1e-9 {
		t.Errorf("ball passed through the wedge to x = %v", res.Ball.Pos.X)
	}
}

func TestSpinnerAddsTangentialVelocity(t *testing.T) {
	// At elapsed 0 with phase 0 the bar lies along +x: segment (6,3)-(8,3).
	spinner := Obstacle{Type: ObstacleSpinner, Pivot: NewVec2(7, 3), Length: 2, RPS: 0.25}
	hole := obstacleHole(spinner)

	// Approach from above the bar's east half, moving down (+z).
	res := PhysicsTick(Ball{Pos: NewVec2(7.5, 2.9), Vel: NewVec2(0, 1)}, hole, Dt, 0, 0)

	vzIn := 1 * math.Exp(-TurfDamping*Dt)
	omega := spinner.RPS * 2 * math.Pi
	// Contact sits 0.5 east of the pivot; the bar surface there moves +z.
	wantVz := -vzIn*WallRestitution + omega*0.5*SpinnerTangentialFactor

	if math.Abs(res.Ball.Vel.Z-wantVz) > 1e-9 {
		t.Errorf("vz = %v, want reflected %v plus bar drag", res.Ball.Vel.Z, wantVz)
	}
}

func TestSpinnerPoseFollowsElapsedTime(t *testing.T) {
	// After a quarter revolution the bar is vertical and no longer blocks
	// a ball sitting just below its original horizontal pose. The ball sits
	// near the pivot, where the reflected component outweighs the bar drag.
	spinner := Obstacle{Type: ObstacleSpinner, Pivot: NewVec2(7, 3), Length: 2, RPS: 0.25}
	hole := obstacleHole(spinner)
	ball := Ball{Pos: NewVec2(7.2, 2.9), Vel: NewVec2(0, 0.5)}

	atStart := PhysicsTick(ball, hole, Dt, 0, 0)
	if atStart.Ball.Vel.Z >= 0 {
		t.Errorf("horizontal bar should reflect the ball: vz = %v", atStart.Ball.Vel.Z)
	}

	quarterTurn := PhysicsTick(ball, hole, Dt, 1.0, 0) // 0.25 rev/s * 1s
	if quarterTurn.Ball.Vel.Z <= 0 {
		t.Errorf("rotated bar should let the ball pass: vz = %v", quarterTurn.Ball.Vel.Z)
	}
}

func TestGateArmReflects(t *testing.T) {
	// arcDeg 0 pins the arm at its base angle: straight down from the
	// hinge, segment (7,1)-(7,3).
	gate := Obstacle{
		Type: ObstacleGate, Hinge: NewVec2(7, 1), ArmLength: 2,
		ArcDeg: 0, PeriodSec: 2, RotationBaseDeg: 90,
	}
	hole := obstacleHole(gate)

	res := runTicks(t, Ball{Pos: NewVec2(6, 2), Vel: NewVec2(3, 0)}, hole, 60, func(r TickResult) bool {
		return r.Ball.Vel.X < 0
	})

	if res.Ball.Pos.X > 7-BallRadius+1e-9 {
		t.Errorf("ball passed through the gate arm to x = %v", res.Ball.Pos.X)
	}
}

func TestTunnelTeleportsAndNudges(t *testing.T) {
	tunnel := Obstacle{Type: ObstacleTunnel, Enter: NewVec2(7, 3), Exit: NewVec2(11, 5), Radius: 0.4}
	hole := obstacleHole(tunnel)

	res := runTicks(t, Ball{Pos: NewVec2(6, 3), Vel: NewVec2(3, 0)}, hole, 60, func(r TickResult) bool {
		return r.Tunneled
	})

	// Exit plus a forward nudge along the (unchanged, +x) velocity.
	wantX := 11 + BallRadius + TunnelExitNudge
	if math.Abs(res.Ball.Pos.X-wantX) > 1e-9 || math.Abs(res.Ball.Pos.Z-5) > 1e-9 {
		t.Errorf("tunneled ball at %v, want (%v, 5)", res.Ball.Pos, wantX)
	}
	if res.Ball.Vel.X <= 0 {
		t.Errorf("tunnel must not change velocity: vx = %v", res.Ball.Vel.X)
	}
}

func speedGate(minSpeed, maxSpeed float64, onFail string) Obstacle {
	return Obstacle{
		Type:     ObstacleSpeedGate,
		Entry:    AABB{Min: NewVec2(6, 2), Max: NewVec2(8, 4)},
		Exit:     NewVec2(12, 3),
		MinSpeed: minSpeed,
		MaxSpeed: maxSpeed,
		OnFail:   onFail,
	}
}

func TestSpeedGatePassesBallInWindow(t *testing.T) {
	hole := obstacleHole(speedGate(2, 20, "reflect"))

	res := runTicks(t, Ball{Pos: NewVec2(5.5, 3), Vel: NewVec2(6, 0)}, hole, 30, func(r TickResult) bool {
		return r.Ball.Pos.X > 10
	})

	if res.Ball.Pos.X != 12 || res.Ball.Pos.Z != 3 {
		t.Errorf("gated ball at %v, want the exit (12, 3)", res.Ball.Pos)
	}
}

func TestSpeedGateReflectsTooSlowBall(t *testing.T) {
	hole := obstacleHole(speedGate(8, 20, "reflect"))

	res := runTicks(t, Ball{Pos: NewVec2(5.5, 3), Vel: NewVec2(6, 0)}, hole, 30, func(r TickResult) bool {
		return r.Ball.Vel.X < 0
	})

	if res.Ball.Pos.X > 6-BallRadius+1e-9 {
		t.Errorf("rejected ball left inside the entry zone: x = %v", res.Ball.Pos.X)
	}
	// Inverted and scaled by the gate restitution, not a wall reflect.
	if res.Ball.Vel.Z != 0 {
		t.Errorf("pure inversion must keep vz = 0, got %v", res.Ball.Vel.Z)
	}
}

func TestSpeedGateUnknownOnFailIsNoOp(t *testing.T) {
	gated := obstacleHole(speedGate(8, 20, "stop"))
	open := flatHole(14, 6, NewVec2(2, 5.5))

	start := Ball{Pos: NewVec2(5.5, 3), Vel: NewVec2(6, 0)}
	withGate := SimulateUntilSettled(start, gated, 0, MaxSimTime)
	without := SimulateUntilSettled(start, open, 0, MaxSimTime)

	// Anything but "reflect" lets the ball through untouched.
	if withGate.Ball != without.Ball {
		t.Errorf("unknown onFail changed the stroke: %+v vs %+v", withGate.Ball, without.Ball)
	}
}

func TestSpeedGateDefaultRestitution(t *testing.T) {
	hole := obstacleHole(speedGate(8, 20, "reflect"))

	// First tick inside the zone: damped speed, then inversion at the
	// module default since reflectRestitution is omitted.
	res := runTicks(t, Ball{Pos: NewVec2(5.95, 3), Vel: NewVec2(6, 0)}, hole, 5, func(r TickResult) bool {
		return r.Ball.Vel.X < 0
	})

	want := -6 * math.Exp(-TurfDamping*Dt) * SpeedGateRestitution
	if math.Abs(res.Ball.Vel.X-want) > 1e-9 {
		t.Errorf("vx = %v, want %v", res.Ball.Vel.X, want)
	}
}
