package aspect

import "github.com/jyotisha-io/grahakala/internal/domain/geometry"

// classifyMotion reports whether the aspect between a and b is applying:
// the absolute deviation of their separation from the nominal angle is
// strictly shrinking under both bodies' current velocities.
//
// The directed separation from a to b changes at rate speedB − speedA.
// When that separation has wrapped past 180° the shortest distance is its
// complement, so the distance rate flips sign.  Retrograde (negative)
// velocities need no special casing: they simply feed the relative rate.
//
// Bodies with unknown velocity, equal velocities (including both zero), and
// exact aspects all classify as separating.
func classifyMotion(a, b Body, nominalAngle float64) bool {
	if a.Speed == nil || b.Speed == nil {
		return false
	}
	rate := *b.Speed - *a.Speed
	if rate == 0 {
		return false
	}

	sep := geometry.DirectedSeparation(a.Longitude, b.Longitude)
	distRate := rate
	if sep > geometry.HalfCircle {
		distRate = -rate
	}

	dist := geometry.ShortestDistance(a.Longitude, b.Longitude)
	deviation := dist - nominalAngle
	if deviation == 0 {
		// Exactly partile: the gap is about to grow in one direction or the
		// other, so the aspect is past its peak.
		return false
	}
	return deviation*distRate < 0
}

//Personal.AI order the ending
