// Package pattern searches the aspect graph for recognized multi-body
// configurations: closed triangles (grand trines), cross configurations
// anchored on an opposition (T-squares), and spatial clusters (stelliums).
package pattern

import (
	"fmt"

	"github.com/jyotisha-io/grahakala/internal/domain/aspect"
	"github.com/jyotisha-io/grahakala/pkg/errors"
)

// Kind identifies a recognized pattern configuration.
type Kind string

const (
	KindGrandTrine Kind = "grand_trine"
	KindTSquare    Kind = "t_square"
	KindStellium   Kind = "stellium"
)

// IsValid reports whether k names a recognized pattern kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindGrandTrine, KindTSquare, KindStellium:
		return true
	default:
		return false
	}
}

func (k Kind) String() string { return string(k) }

// MixedDescriptor is reported when the constituent bodies do not share a
// single zodiacal element.
const MixedDescriptor = "mixed"

// Pattern is a computed grouping of three or more bodies satisfying a
// geometric predicate.  Instances are computed on demand from the current
// aspect set and never mutated.
type Pattern struct {
	Kind Kind `json:"kind"`

	// Bodies lists the constituent body names in canonical (input) order.
	Bodies []string `json:"bodies"`

	// Strength aggregates the constituent aspect strengths (mean).
	Strength float64 `json:"strength"`

	// Descriptor is the shared zodiacal element of the constituent
	// positions, or "mixed" when they disagree.
	Descriptor string `json:"descriptor"`

	// Apex names the body square to both ends of the opposition.
	// Set only for t_square patterns.
	Apex string `json:"apex,omitempty"`

	// Center and Span describe a stellium: the mean longitude of the members
	// and the arc from first to last member.  Set only for stellium patterns.
	Center float64 `json:"center,omitempty"`
	Span   float64 `json:"span,omitempty"`
}

func (p Pattern) String() string {
	return fmt.Sprintf("%s[%v] strength=%.2f %s", p.Kind, p.Bodies, p.Strength, p.Descriptor)
}

// Config holds the tunable bounds of the recognizer.
type Config struct {
	// TriangleTypes lists the aspect types searched for closed triangles,
	// in search order.  Defaults to trine only (the grand trine).
	TriangleTypes []aspect.Type `mapstructure:"triangle_types"`

	// ClusterMinSize is the minimum number of bodies forming a stellium.
	ClusterMinSize int `mapstructure:"cluster_min_size"`

	// ClusterMaxSpan is the maximum arc, in degrees, a member may sit from
	// the cluster's anchor body.
	ClusterMaxSpan float64 `mapstructure:"cluster_max_span"`
}

// DefaultConfig returns the stock recognizer bounds.
func DefaultConfig() Config {
	return Config{
		TriangleTypes:  []aspect.Type{aspect.Trine},
		ClusterMinSize: 3,
		ClusterMaxSpan: 30,
	}
}

// Validate fails fast on out-of-range bounds, before any query runs.
func (c Config) Validate() error {
	if len(c.TriangleTypes) == 0 {
		return errors.New(errors.ErrCodePatternConfigInvalid, "triangle type list must not be empty")
	}
	for _, t := range c.TriangleTypes {
		if !t.IsValid() {
			return errors.New(errors.ErrCodePatternConfigInvalid, "unknown triangle aspect type: "+t.String())
		}
	}
	if c.ClusterMinSize < 3 {
		return errors.Newf(errors.ErrCodePatternConfigInvalid,
			"cluster minimum size must be ≥ 3, got %d", c.ClusterMinSize)
	}
	if c.ClusterMaxSpan <= 0 || c.ClusterMaxSpan > 120 {
		return errors.Newf(errors.ErrCodePatternConfigInvalid,
			"cluster max span %g must be in (0, 120]", c.ClusterMaxSpan)
	}
	return nil
}

//Personal.AI order the ending
