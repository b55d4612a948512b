package aspect

import (
	"math"

	"github.com/jyotisha-io/grahakala/internal/domain/geometry"
	"github.com/jyotisha-io/grahakala/pkg/errors"
)

// Detector finds aspects between body pairs using a validated configuration.
// A Detector is immutable after construction and safe for concurrent use.
type Detector struct {
	cfg Config
}

// NewDetector validates cfg and returns a Detector.  Configuration errors
// surface here, before any query runs.
func NewDetector(cfg Config) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// Copy so later caller mutations of the map cannot leak in.
	own := make(Config, len(cfg))
	for t, def := range cfg {
		own[t] = def
	}
	return &Detector{cfg: own}, nil
}

// Detect computes all pairwise aspects among bodies.  Each unordered pair is
// reported at most once, for the type whose nominal angle the pair's
// separation matches most tightly; deviation ties go to the higher-priority
// (major before minor) type.  Output order follows the input body order.
//
// Fails with an invalid-input error when fewer than two bodies are supplied
// or any body fails validation.  Identical input always yields identical
// output.
func (d *Detector) Detect(bodies []Body) ([]Aspect, error) {
	if len(bodies) < 2 {
		return nil, errors.Newf(errors.ErrCodeValidation,
			"aspect detection requires at least two bodies, got %d", len(bodies))
	}
	seen := make(map[string]struct{}, len(bodies))
	for _, b := range bodies {
		if err := b.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[b.Name]; dup {
			return nil, errors.New(errors.ErrCodeBodyInvalid, "duplicate body name: "+b.Name)
		}
		seen[b.Name] = struct{}{}
	}

	var found []Aspect
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if asp, ok := d.match(bodies[i], bodies[j]); ok {
				found = append(found, asp)
			}
		}
	}
	return found, nil
}

// match classifies a single pair against the aspect table.  The second result
// is false when the pair is not within orb of any configured angle.
func (d *Detector) match(a, b Body) (Aspect, bool) {
	dist := geometry.ShortestDistance(a.Longitude, b.Longitude)

	best := Type("")
	bestDev := math.Inf(1)
	// The fixed priority order makes iteration deterministic over the map
	// and resolves equal-deviation ties toward major aspects.
	for _, t := range priorityOrder {
		def, ok := d.cfg[t]
		if !ok {
			continue
		}
		dev := math.Abs(dist - def.Angle)
		if dev <= def.MaxOrb && dev < bestDev {
			best = t
			bestDev = dev
		}
	}
	if best == "" {
		return Aspect{}, false
	}

	def := d.cfg[best]
	return Aspect{
		BodyA:      a.Name,
		BodyB:      b.Name,
		Type:       best,
		Angle:      def.Angle,
		Separation: dist,
		Orb:        bestDev,
		Strength:   strength(bestDev, def.MaxOrb),
		Applying:   classifyMotion(a, b, def.Angle),
	}, true
}

// strength maps a deviation onto [0, 1]: 1.0 at the exact angle, 0.0 at the
// orb boundary, linear in between.
func strength(deviation, maxOrb float64) float64 {
	s := 1 - deviation/maxOrb
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// Detect is a convenience wrapper that builds a throwaway Detector.
// Prefer constructing a Detector once when issuing many queries.
func Detect(bodies []Body, cfg Config) ([]Aspect, error) {
	d, err := NewDetector(cfg)
	if err != nil {
		return nil, err
	}
	return d.Detect(bodies)
}

// ForBody filters aspects down to those involving the named body.
func ForBody(aspects []Aspect, name string) []Aspect {
	var out []Aspect
	for _, a := range aspects {
		if a.Involves(name) {
			out = append(out, a)
		}
	}
	return out
}

//Personal.AI order the ending
