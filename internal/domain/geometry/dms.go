package geometry

import (
	"fmt"
	"math"

	"github.com/jyotisha-io/grahakala/pkg/errors"
)

// DMS is a sexagesimal representation of an angle: whole degrees, whole
// minutes in [0, 60), and fractional seconds in [0, 60).
type DMS struct {
	Degrees int     `json:"degrees"`
	Minutes int     `json:"minutes"`
	Seconds float64 `json:"seconds"`
}

// String renders the value in the conventional d°m's" form.
func (d DMS) String() string {
	return fmt.Sprintf("%d°%d'%.2f\"", d.Degrees, d.Minutes, d.Seconds)
}

// Validate checks the sexagesimal range invariants.
func (d DMS) Validate() error {
	if d.Degrees < 0 {
		return errors.Newf(errors.ErrCodeDMSOutOfRange, "degrees must be ≥ 0, got %d", d.Degrees)
	}
	if d.Minutes < 0 || d.Minutes >= 60 {
		return errors.Newf(errors.ErrCodeDMSOutOfRange, "minutes must be in [0, 60), got %d", d.Minutes)
	}
	if d.Seconds < 0 || d.Seconds >= 60 {
		return errors.Newf(errors.ErrCodeDMSOutOfRange, "seconds must be in [0, 60), got %g", d.Seconds)
	}
	return nil
}

// ToDMS decomposes a decimal angle into degrees, minutes, and seconds.
// The input is normalized onto [0, 360) first, so the components always
// satisfy the DMS range invariants.  Round-trips through FromDMS agree with
// the normalized input within 1e-4 degrees.
func ToDMS(angle float64) DMS {
	a := Normalize(angle)
	deg := math.Floor(a)
	minFloat := (a - deg) * 60
	min := math.Floor(minFloat)
	sec := (minFloat - min) * 60
	// Floor on the fractional parts keeps minutes and seconds strictly
	// below 60 even when a is within rounding noise of a whole degree.
	if sec >= 60 {
		sec = 0
		min++
	}
	if min >= 60 {
		min = 0
		deg++
	}
	return DMS{Degrees: int(deg), Minutes: int(min), Seconds: sec}
}

// FromDMS recomposes a decimal angle in degrees from sexagesimal parts.
// It fails with a GEO_001 out-of-range error when minutes or seconds fall
// outside [0, 60).  The result is not normalized: FromDMS(400, 0, 0) == 400.
func FromDMS(degrees, minutes int, seconds float64) (float64, error) {
	d := DMS{Degrees: degrees, Minutes: minutes, Seconds: seconds}
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return float64(degrees) + float64(minutes)/60 + seconds/3600, nil
}

//Personal.AI order the ending
