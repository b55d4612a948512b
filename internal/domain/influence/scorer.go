// Package influence scores how strongly a body acts in a chart: a per-body
// base weight adjusted by the signed contributions of the aspects the body
// participates in.
package influence

import (
	"github.com/jyotisha-io/grahakala/internal/domain/aspect"
	"github.com/jyotisha-io/grahakala/pkg/errors"
)

// Modifiers assigns each aspect type a signed contribution factor.
// Harmonious types lift the score, discordant types depress it.
type Modifiers map[aspect.Type]float64

// DefaultModifiers returns the stock contribution table.  A conjunction
// fuses rather than helps or harms; it carries a small positive factor.
func DefaultModifiers() Modifiers {
	return Modifiers{
		aspect.Conjunction:    0.10,
		aspect.Opposition:     -0.40,
		aspect.Trine:          0.50,
		aspect.Square:         -0.50,
		aspect.Sextile:        0.30,
		aspect.Quincunx:       -0.20,
		aspect.Sesquiquadrate: -0.15,
		aspect.SemiSquare:     -0.15,
		aspect.SemiSextile:    0.10,
	}
}

// Validate rejects tables with unknown types or factors outside [-1, 1].
func (m Modifiers) Validate() error {
	for typ, factor := range m {
		if !typ.IsValid() {
			return errors.New(errors.ErrCodeAspectTypeUnknown, "unknown aspect type: "+string(typ))
		}
		if factor < -1 || factor > 1 {
			return errors.Newf(errors.ErrCodeWeightOutOfRange,
				"modifier %g for %s must be in [-1, 1]", factor, typ)
		}
	}
	return nil
}

// BaseWeights maps body names to their intrinsic weight before any aspect
// adjustment.
type BaseWeights map[string]float64

// DefaultBaseWeights returns the stock table: luminaries heaviest, slow
// movers and nodes lighter.
func DefaultBaseWeights() BaseWeights {
	return BaseWeights{
		"Sun":     0.90,
		"Moon":    0.85,
		"Mercury": 0.60,
		"Venus":   0.65,
		"Mars":    0.65,
		"Jupiter": 0.70,
		"Saturn":  0.70,
		"Rahu":    0.50,
		"Ketu":    0.50,
	}
}

// DefaultBaseWeight is used for bodies absent from the table.
const DefaultBaseWeight = 0.50

// Validate rejects weights outside [0, 1].
func (w BaseWeights) Validate() error {
	for name, weight := range w {
		if weight < 0 || weight > 1 {
			return errors.Newf(errors.ErrCodeWeightOutOfRange,
				"base weight %g for %s must be in [0, 1]", weight, name)
		}
	}
	return nil
}

// Of returns the body's base weight, falling back to the default.
func (w BaseWeights) Of(name string) float64 {
	if weight, ok := w[name]; ok {
		return weight
	}
	return DefaultBaseWeight
}

// Scorer computes influence scores against fixed modifier and weight
// tables.
type Scorer struct {
	modifiers Modifiers
	weights   BaseWeights
}

// NewScorer validates both tables once.  Nil tables take the stock
// defaults.
func NewScorer(modifiers Modifiers, weights BaseWeights) (*Scorer, error) {
	if modifiers == nil {
		modifiers = DefaultModifiers()
	}
	if weights == nil {
		weights = DefaultBaseWeights()
	}
	if err := modifiers.Validate(); err != nil {
		return nil, err
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{modifiers: modifiers, weights: weights}, nil
}

// Score returns the influence of the named body given the aspects it
// participates in.  Each participating aspect contributes
// strength x modifier; the mean contribution scales the base weight and
// the result clamps to [0, 1].  Aspects not involving the body are
// ignored, so callers may pass a whole chart's aspect list.
func (s *Scorer) Score(bodyName string, aspects []aspect.Aspect) (float64, error) {
	if bodyName == "" {
		return 0, errors.InvalidParam("body name must not be empty")
	}
	base := s.weights.Of(bodyName)

	var sum float64
	var n int
	for _, a := range aspects {
		if !a.Involves(bodyName) {
			continue
		}
		sum += a.Strength * s.modifiers[a.Type]
		n++
	}
	if n == 0 {
		return base, nil
	}

	score := base * (1 + sum/float64(n))
	if score < 0 {
		return 0, nil
	}
	if score > 1 {
		return 1, nil
	}
	return score, nil
}

// ScoreAll scores every distinct body appearing in the aspect list plus
// any extra names supplied, returned as a name-keyed map.
func (s *Scorer) ScoreAll(aspects []aspect.Aspect, extra ...string) (map[string]float64, error) {
	names := make(map[string]struct{})
	for _, a := range aspects {
		names[a.BodyA] = struct{}{}
		names[a.BodyB] = struct{}{}
	}
	for _, name := range extra {
		names[name] = struct{}{}
	}

	out := make(map[string]float64, len(names))
	for name := range names {
		score, err := s.Score(name, aspects)
		if err != nil {
			return nil, err
		}
		out[name] = score
	}
	return out, nil
}

//Personal.AI order the ending
