package game

import "math"

// Vec2 is a point or vector on the world plane. X points right, Z points
// down; the visual Y axis is never simulated.
type Vec2 struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

func NewVec2(x, z float64) Vec2 {
	return Vec2{X: x, Z: z}
}

func (v Vec2) Plus(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Z: v.Z + o.Z}
}

func (v Vec2) Minus(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Z: v.Z - o.Z}
}

func (v Vec2) Times(s float64) Vec2 {
	return Vec2{X: v.X * s, Z: v.Z * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Z*o.Z
}

func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Z*v.Z)
}

func (v Vec2) MagnitudeSquared() float64 {
	return v.X*v.X + v.Z*v.Z
}

func (v Vec2) Normalize() Vec2 {
	m := v.Magnitude()
	if m == 0 {
		return Vec2{}
	}
	return v.Times(1.0 / m)
}

// LeftNormal returns v rotated 90 degrees counter-clockwise in the x/z plane.
func (v Vec2) LeftNormal() Vec2 {
	return Vec2{X: -v.Z, Z: v.X}
}

func (v Vec2) Invert() Vec2 {
	return Vec2{X: -v.X, Z: -v.Z}
}

func (v Vec2) DistanceTo(o Vec2) float64 {
	dx := v.X - o.X
	dz := v.Z - o.Z
	return math.Sqrt(dx*dx + dz*dz)
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Z == 0
}

// Reflect mirrors v across the plane defined by unit normal n.
func (v Vec2) Reflect(n Vec2) Vec2 {
	return v.Minus(n.Times(2 * v.Dot(n)))
}
