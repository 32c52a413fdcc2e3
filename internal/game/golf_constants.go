package game

// Physics constants for the mini-golf simulation.
// These MUST match the TypeScript constants in the web client exactly —
// the client predicts strokes with the same numbers and any drift
// desynchronizes prediction from the authoritative result.

const (
	BallRadius = 0.18
	CupRadius  = 0.22

	// Dt is the fixed timestep. Every stroke on server and client is
	// advanced in identical 1/60s steps.
	Dt = 1.0 / 60.0

	TurfDamping = 2.2
	SandDamping = 4.5
	SlowDamping = 7.0

	WallRestitution      = 0.6
	BumperRestitution    = 0.85
	SpeedGateRestitution = 0.6

	StopThreshold = 0.05
	RestTime      = 0.25
	MaxSimTime    = 6.0

	ShotSpeedMin      = 2.2
	ShotSpeedMax      = 11.5
	ShotPowerExponent = 1.15

	CupCaptureSpeed = 1.2

	Gravity    = 9.81
	SlopeScale = 0.35

	SpeedPadDefaultAccel = 6.0
	SpeedPadMaxSpeed     = 12.0

	// SpinnerTangentialFactor scales the bar's surface speed transferred
	// to the ball on contact.
	SpinnerTangentialFactor = 0.3

	// TunnelExitNudge keeps a teleported ball from re-triggering the
	// tunnel entrance on the next tick.
	TunnelExitNudge = 0.05
)
