package game

import "math"

// closestPointOnSegment returns the point on segment a-b nearest to p.
func closestPointOnSegment(p, a, b Vec2) Vec2 {
	ab := b.Minus(a)
	lenSq := ab.MagnitudeSquared()
	if lenSq == 0 {
		return a
	}
	t := p.Minus(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Plus(ab.Times(t))
}

// segmentProjection returns the parameter t of p projected onto the infinite
// line through a-b, and the perpendicular distance from p to that line.
// t is in [0,1] when the projection falls within the segment.
func segmentProjection(p, a, b Vec2) (t, dist float64) {
	ab := b.Minus(a)
	lenSq := ab.MagnitudeSquared()
	if lenSq == 0 {
		return 0, p.DistanceTo(a)
	}
	t = p.Minus(a).Dot(ab) / lenSq
	foot := a.Plus(ab.Times(t))
	return t, p.DistanceTo(foot)
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// angleDir returns the unit vector at the given angle in radians, measured
// from +X toward +Z.
func angleDir(rad float64) Vec2 {
	return Vec2{X: math.Cos(rad), Z: math.Sin(rad)}
}
