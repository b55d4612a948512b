package aspect

import (
	"github.com/jyotisha-io/grahakala/internal/domain/geometry"
	"github.com/jyotisha-io/grahakala/pkg/errors"
)

// MaxOrb is the upper bound on any configured orb, in degrees.  Orbs wider
// than this cause adjacent nominal angles to overlap and make classification
// ambiguous.
const MaxOrb = 15.0

// Definition declares one recognized aspect: its nominal angle and the
// maximum permitted deviation (orb) for a match to count.
type Definition struct {
	Angle  float64 `json:"angle" mapstructure:"angle"`
	MaxOrb float64 `json:"max_orb" mapstructure:"max_orb"`
}

// Config maps each recognized aspect type to its definition.  Callers may
// override the defaults but every entry must pass Validate before use.
type Config map[Type]Definition

// DefaultConfig returns the engine's stock aspect table: the five major
// aspects with wide orbs and four minors with tight ones.
func DefaultConfig() Config {
	return Config{
		Conjunction:    {Angle: 0, MaxOrb: 8},
		Opposition:     {Angle: 180, MaxOrb: 8},
		Trine:          {Angle: 120, MaxOrb: 8},
		Square:         {Angle: 90, MaxOrb: 7},
		Sextile:        {Angle: 60, MaxOrb: 6},
		Quincunx:       {Angle: 150, MaxOrb: 3},
		Sesquiquadrate: {Angle: 135, MaxOrb: 2.5},
		SemiSquare:     {Angle: 45, MaxOrb: 2.5},
		SemiSextile:    {Angle: 30, MaxOrb: 2},
	}
}

// Validate checks every definition in the table.  It returns the first
// violation encountered; any error is fatal at configuration-load time,
// before queries run.
func (c Config) Validate() error {
	if len(c) == 0 {
		return errors.New(errors.ErrCodeConfigInvalid, "aspect table must not be empty")
	}
	for t, def := range c {
		if !t.IsValid() {
			return errors.New(errors.ErrCodeAspectTypeUnknown, "unsupported aspect type: "+t.String())
		}
		if def.Angle < 0 || def.Angle > geometry.HalfCircle {
			return errors.Newf(errors.ErrCodeAspectAngleInvalid,
				"aspect %s nominal angle %g must be in [0, 180]", t, def.Angle)
		}
		if def.MaxOrb <= 0 || def.MaxOrb > MaxOrb {
			return errors.Newf(errors.ErrCodeAspectOrbInvalid,
				"aspect %s orb %g must be in (0, %g]", t, def.MaxOrb, MaxOrb)
		}
	}
	return nil
}

//Personal.AI order the ending
