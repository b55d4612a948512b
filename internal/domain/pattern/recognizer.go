package pattern

import (
	"github.com/jyotisha-io/grahakala/internal/domain/aspect"
	"github.com/jyotisha-io/grahakala/internal/domain/geometry"
	"github.com/jyotisha-io/grahakala/pkg/errors"
)

// Recognizer searches an aspect set for multi-body configurations.
// It is immutable after construction and safe for concurrent use.
type Recognizer struct {
	cfg Config
}

// NewRecognizer validates cfg and returns a Recognizer.
func NewRecognizer(cfg Config) (*Recognizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Recognizer{cfg: cfg}, nil
}

// pairKey indexes an aspect by its unordered body pair.
type pairKey struct{ a, b string }

func keyFor(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// Detect searches bodies and their aspect set for recognized patterns.
// At most one pattern per kind is reported, the first valid match in
// canonical enumeration order (ascending body index).  Output order is
// fixed: grand trine, then t-square, then stellium.
func (r *Recognizer) Detect(bodies []aspect.Body, aspects []aspect.Aspect) ([]Pattern, error) {
	if len(bodies) < 3 {
		return nil, errors.Newf(errors.ErrCodeValidation,
			"pattern detection requires at least three bodies, got %d", len(bodies))
	}
	for _, b := range bodies {
		if err := b.Validate(); err != nil {
			return nil, err
		}
	}

	byPair := make(map[pairKey]aspect.Aspect, len(aspects))
	for _, a := range aspects {
		byPair[keyFor(a.BodyA, a.BodyB)] = a
	}

	var found []Pattern
	if p, ok := r.findTriangle(bodies, byPair); ok {
		found = append(found, p)
	}
	if p, ok := r.findCross(bodies, byPair); ok {
		found = append(found, p)
	}
	if p, ok := r.findCluster(bodies, byPair); ok {
		found = append(found, p)
	}
	return found, nil
}

// findTriangle reports the first 3-combination of bodies whose three pairwise
// aspects all exist and share a configured triangle type.
func (r *Recognizer) findTriangle(bodies []aspect.Body, byPair map[pairKey]aspect.Aspect) (Pattern, bool) {
	for _, target := range r.cfg.TriangleTypes {
		for i := 0; i < len(bodies); i++ {
			for j := i + 1; j < len(bodies); j++ {
				ab, ok := byPair[keyFor(bodies[i].Name, bodies[j].Name)]
				if !ok || ab.Type != target {
					continue
				}
				for k := j + 1; k < len(bodies); k++ {
					ac, ok := byPair[keyFor(bodies[i].Name, bodies[k].Name)]
					if !ok || ac.Type != target {
						continue
					}
					bc, ok := byPair[keyFor(bodies[j].Name, bodies[k].Name)]
					if !ok || bc.Type != target {
						continue
					}
					return Pattern{
						Kind:     KindGrandTrine,
						Bodies:   []string{bodies[i].Name, bodies[j].Name, bodies[k].Name},
						Strength: (ab.Strength + ac.Strength + bc.Strength) / 3,
						Descriptor: sharedElement([]float64{
							bodies[i].Longitude, bodies[j].Longitude, bodies[k].Longitude,
						}),
					}, true
				}
			}
		}
	}
	return Pattern{}, false
}

// findCross reports the first opposition pair with a third body square to
// both ends; that body is the apex.
func (r *Recognizer) findCross(bodies []aspect.Body, byPair map[pairKey]aspect.Aspect) (Pattern, bool) {
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			opp, ok := byPair[keyFor(bodies[i].Name, bodies[j].Name)]
			if !ok || opp.Type != aspect.Opposition {
				continue
			}
			for k := 0; k < len(bodies); k++ {
				if k == i || k == j {
					continue
				}
				sqA, ok := byPair[keyFor(bodies[i].Name, bodies[k].Name)]
				if !ok || sqA.Type != aspect.Square {
					continue
				}
				sqB, ok := byPair[keyFor(bodies[j].Name, bodies[k].Name)]
				if !ok || sqB.Type != aspect.Square {
					continue
				}
				return Pattern{
					Kind:     KindTSquare,
					Bodies:   []string{bodies[i].Name, bodies[j].Name, bodies[k].Name},
					Strength: (opp.Strength + sqA.Strength + sqB.Strength) / 3,
					Descriptor: sharedElement([]float64{
						bodies[i].Longitude, bodies[j].Longitude, bodies[k].Longitude,
					}),
					Apex: bodies[k].Name,
				}, true
			}
		}
	}
	return Pattern{}, false
}

// findCluster reports the largest group of bodies lying within the configured
// span of a single anchor body, provided it reaches the minimum size.
// Ties between equally large clusters go to the earliest anchor.
func (r *Recognizer) findCluster(bodies []aspect.Body, byPair map[pairKey]aspect.Aspect) (Pattern, bool) {
	bestAnchor := -1
	var bestMembers []int
	for i := 0; i < len(bodies); i++ {
		var members []int
		for j := 0; j < len(bodies); j++ {
			if geometry.ShortestDistance(bodies[i].Longitude, bodies[j].Longitude) <= r.cfg.ClusterMaxSpan {
				members = append(members, j)
			}
		}
		if len(members) >= r.cfg.ClusterMinSize && len(members) > len(bestMembers) {
			bestAnchor = i
			bestMembers = members
		}
	}
	if bestAnchor < 0 {
		return Pattern{}, false
	}

	// Offsets are measured from the anchor so that clusters straddling the
	// 0°/360° wrap keep a contiguous coordinate frame.
	anchorLon := bodies[bestAnchor].Longitude
	minOff, maxOff := 0.0, 0.0
	var offsetSum float64
	names := make([]string, 0, len(bestMembers))
	lons := make([]float64, 0, len(bestMembers))
	for _, j := range bestMembers {
		off := geometry.SignedOffset(anchorLon, bodies[j].Longitude)
		if off < minOff {
			minOff = off
		}
		if off > maxOff {
			maxOff = off
		}
		offsetSum += off
		names = append(names, bodies[j].Name)
		lons = append(lons, bodies[j].Longitude)
	}
	span := maxOff - minOff
	center := geometry.Normalize(anchorLon + offsetSum/float64(len(bestMembers)))

	return Pattern{
		Kind:       KindStellium,
		Bodies:     names,
		Strength:   clusterStrength(names, byPair, span, r.cfg.ClusterMaxSpan),
		Descriptor: sharedElement(lons),
		Center:     center,
		Span:       span,
	}, true
}

// clusterStrength averages the aspect strengths among member pairs.  When no
// member pair holds an aspect the compactness of the cluster stands in: a
// zero-span pileup scores 1, a cluster stretched across the full window
// scores 0.
func clusterStrength(names []string, byPair map[pairKey]aspect.Aspect, span, maxSpan float64) float64 {
	var sum float64
	var n int
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if a, ok := byPair[keyFor(names[i], names[j])]; ok {
				sum += a.Strength
				n++
			}
		}
	}
	if n > 0 {
		return sum / float64(n)
	}
	s := 1 - span/(2*maxSpan)
	if s < 0 {
		return 0
	}
	return s
}

// Detect is a convenience wrapper that builds a throwaway Recognizer.
func Detect(bodies []aspect.Body, aspects []aspect.Aspect, cfg Config) ([]Pattern, error) {
	r, err := NewRecognizer(cfg)
	if err != nil {
		return nil, err
	}
	return r.Detect(bodies, aspects)
}

//Personal.AI order the ending
