// Package aspect implements pairwise angular-relationship detection between
// celestial bodies: classification against a configurable table of nominal
// angles and orbs, continuous strength scoring, and applying/separating
// motion analysis.
package aspect

import (
	"fmt"

	"github.com/jyotisha-io/grahakala/internal/domain/geometry"
	"github.com/jyotisha-io/grahakala/pkg/errors"
)

// Body is an input record for one celestial point: a name, a normalized
// ecliptic longitude, and an optional signed angular velocity in degrees per
// day.  Negative velocity means retrograde motion.  Velocity is a pointer so
// that "unknown" is distinguishable from "stationary".
type Body struct {
	Name      string   `json:"name"`
	Longitude float64  `json:"longitude"`
	Speed     *float64 `json:"speed,omitempty"`
}

// Retrograde reports whether the body is in retrograde motion.  Bodies with
// unknown velocity are treated as direct.
func (b Body) Retrograde() bool {
	return b.Speed != nil && *b.Speed < 0
}

// Validate checks the body record invariants: a non-empty name and a
// longitude already normalized into [0, 360).
func (b Body) Validate() error {
	if b.Name == "" {
		return errors.New(errors.ErrCodeBodyInvalid, "body name must not be empty")
	}
	if b.Longitude < 0 || b.Longitude >= geometry.FullCircle {
		return errors.Newf(errors.ErrCodeLongitudeOutOfRange,
			"body %s longitude %g must be in [0, 360)", b.Name, b.Longitude)
	}
	return nil
}

// Type identifies a recognized aspect kind.
type Type string

const (
	Conjunction    Type = "conjunction"
	Opposition     Type = "opposition"
	Trine          Type = "trine"
	Square         Type = "square"
	Sextile        Type = "sextile"
	Quincunx       Type = "quincunx"
	Sesquiquadrate Type = "sesquiquadrate"
	SemiSquare     Type = "semisquare"
	SemiSextile    Type = "semisextile"
)

// priorityOrder breaks deviation ties between aspect types: when a pair's
// separation is equally close to two nominal angles, the earlier entry wins.
// Major aspects precede minor ones.
var priorityOrder = []Type{
	Conjunction, Opposition, Trine, Square, Sextile,
	Quincunx, Sesquiquadrate, SemiSquare, SemiSextile,
}

// IsValid reports whether t names a recognized aspect type.
func (t Type) IsValid() bool {
	for _, p := range priorityOrder {
		if p == t {
			return true
		}
	}
	return false
}

// String returns the string representation of the aspect type.
func (t Type) String() string { return string(t) }

// ParseType parses a string into a Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if t.IsValid() {
		return t, nil
	}
	return "", errors.New(errors.ErrCodeAspectTypeUnknown, "unsupported aspect type: "+s)
}

// Harmonious reports whether the aspect type is traditionally benefic.
// Conjunctions are neutral and report false.
func (t Type) Harmonious() bool {
	switch t {
	case Trine, Sextile, SemiSextile:
		return true
	default:
		return false
	}
}

// Aspect is an immutable computed relationship between two distinct bodies.
// Instances are computed fresh per query and never mutated.
type Aspect struct {
	// BodyA and BodyB carry the two body names in input order.
	BodyA string `json:"body_a"`
	BodyB string `json:"body_b"`

	// Type is the matched aspect kind; Angle its nominal angle in degrees.
	Type  Type    `json:"type"`
	Angle float64 `json:"angle"`

	// Separation is the actual shortest angular distance between the bodies.
	Separation float64 `json:"separation"`

	// Orb is the deviation of Separation from the nominal angle ("orb used").
	Orb float64 `json:"orb"`

	// Strength is 1.0 at the exact angle, 0.0 at the orb boundary, linear
	// in between.
	Strength float64 `json:"strength"`

	// Applying is true when the deviation from the nominal angle is shrinking
	// under the bodies' current velocities.
	Applying bool `json:"applying"`
}

// Involves reports whether the aspect touches the named body.
func (a Aspect) Involves(name string) bool {
	return a.BodyA == name || a.BodyB == name
}

// Other returns the partner of the named body in this aspect, or "" when the
// body is not part of it.
func (a Aspect) Other(name string) string {
	switch name {
	case a.BodyA:
		return a.BodyB
	case a.BodyB:
		return a.BodyA
	default:
		return ""
	}
}

func (a Aspect) String() string {
	motion := "separating"
	if a.Applying {
		motion = "applying"
	}
	return fmt.Sprintf("%s %s %s (orb %.2f°, strength %.2f, %s)",
		a.BodyA, a.Type, a.BodyB, a.Orb, a.Strength, motion)
}

//Personal.AI order the ending
