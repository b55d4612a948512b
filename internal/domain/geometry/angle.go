// Package geometry provides the angular primitives underlying aspect
// detection and period calculation.  All functions are pure, total, and
// side-effect free: they accept any real input (negative, multi-revolution)
// and are safe to call concurrently.
package geometry

import "math"

// FullCircle is the number of degrees in one revolution.
const FullCircle = 360.0

// HalfCircle is the maximum possible shortest angular distance.
const HalfCircle = 180.0

// Normalize maps an angle in degrees onto [0, 360).
// It is idempotent and defined for any real input:
//
//	Normalize(-30)  == 330
//	Normalize(725)  == 5
//	Normalize(360)  == 0
func Normalize(angle float64) float64 {
	a := math.Mod(angle, FullCircle)
	if a < 0 {
		a += FullCircle
	}
	// Guard against float addition landing exactly on 360 for tiny negatives.
	if a >= FullCircle {
		a -= FullCircle
	}
	return a
}

// ShortestDistance returns the unsigned minimal separation between two angles
// in degrees, always in [0, 180].  Wraparound across 0°/360° is handled:
// ShortestDistance(350, 10) == 20.
func ShortestDistance(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	if d > HalfCircle {
		d = FullCircle - d
	}
	return d
}

// DirectedSeparation returns the separation measured counter-clockwise from
// a to b, in [0, 360).  It is the zodiacal arc a body at a must travel
// forward to reach b, and drives applying/separating classification.
func DirectedSeparation(a, b float64) float64 {
	return Normalize(b - a)
}

// SignedOffset returns the smallest signed arc from a to b, in (-180, 180].
// Positive means b lies counter-clockwise of a.
func SignedOffset(a, b float64) float64 {
	d := DirectedSeparation(a, b)
	if d > HalfCircle {
		d -= FullCircle
	}
	return d
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / HalfCircle
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * HalfCircle / math.Pi
}

//Personal.AI order the ending
