// Package ephemeris supplies chart positions for forecast queries.  The
// stock provider advances each body linearly at its mean daily motion from
// a reference chart; swapping in a precise ephemeris is a matter of
// implementing the same position lookup against another source.
package ephemeris

import (
	"context"
	"time"

	"github.com/jyotisha-io/grahakala/internal/domain/aspect"
	"github.com/jyotisha-io/grahakala/internal/domain/geometry"
	"github.com/jyotisha-io/grahakala/pkg/errors"
)

// BodyState is one body's reference position and its mean daily motion in
// degrees per day.  Negative rates model perpetually retrograde bodies
// such as the lunar nodes.
type BodyState struct {
	Name      string  `json:"name" mapstructure:"name"`
	Longitude float64 `json:"longitude" mapstructure:"longitude"`
	DailyRate float64 `json:"daily_rate" mapstructure:"daily_rate"`
}

// MeanMotion extrapolates positions from a reference chart.
type MeanMotion struct {
	reference time.Time
	bodies    []BodyState
}

// DefaultRates returns the classical mean daily motions in degrees.
func DefaultRates() map[string]float64 {
	return map[string]float64{
		"Sun":     0.9856,
		"Moon":    13.1764,
		"Mercury": 1.3833,
		"Venus":   1.2000,
		"Mars":    0.5240,
		"Jupiter": 0.0831,
		"Saturn":  0.0335,
		"Rahu":    -0.0529,
		"Ketu":    -0.0529,
	}
}

// NewMeanMotion builds a provider from a reference instant and chart.
// Body longitudes are normalized; rates may be any finite value.
func NewMeanMotion(reference time.Time, bodies []BodyState) (*MeanMotion, error) {
	if reference.IsZero() {
		return nil, errors.New(errors.ErrCodeEpochInvalid, "reference time must not be the zero time")
	}
	if len(bodies) == 0 {
		return nil, errors.InvalidParam("reference chart must contain at least one body")
	}
	seen := make(map[string]struct{}, len(bodies))
	states := make([]BodyState, len(bodies))
	for i, b := range bodies {
		if b.Name == "" {
			return nil, errors.New(errors.ErrCodeBodyInvalid, "body name must not be empty")
		}
		if _, dup := seen[b.Name]; dup {
			return nil, errors.New(errors.ErrCodeBodyInvalid, "duplicate body in reference chart: "+b.Name)
		}
		seen[b.Name] = struct{}{}
		states[i] = BodyState{
			Name:      b.Name,
			Longitude: geometry.Normalize(b.Longitude),
			DailyRate: b.DailyRate,
		}
	}
	return &MeanMotion{reference: reference, bodies: states}, nil
}

// NewMeanMotionFromRates builds a provider using the supplied longitudes
// and the stock rate table; bodies without a table entry get a zero rate.
func NewMeanMotionFromRates(reference time.Time, longitudes map[string]float64) (*MeanMotion, error) {
	rates := DefaultRates()
	states := make([]BodyState, 0, len(longitudes))
	for name, lon := range longitudes {
		states = append(states, BodyState{Name: name, Longitude: lon, DailyRate: rates[name]})
	}
	// Map iteration order is random; keep the provider deterministic.
	sortStates(states)
	return NewMeanMotion(reference, states)
}

func sortStates(states []BodyState) {
	for i := 1; i < len(states); i++ {
		for j := i; j > 0 && states[j].Name < states[j-1].Name; j-- {
			states[j], states[j-1] = states[j-1], states[j]
		}
	}
}

// PositionsAt returns the chart extrapolated to t.  Body order matches the
// reference chart, so repeated calls are stable.
func (m *MeanMotion) PositionsAt(ctx context.Context, t time.Time) ([]aspect.Body, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeEphemerisFailed, "position query cancelled")
	}
	if t.IsZero() {
		return nil, errors.New(errors.ErrCodeEpochInvalid, "query time must not be the zero time")
	}

	days := t.Sub(m.reference).Hours() / 24
	out := make([]aspect.Body, len(m.bodies))
	for i, b := range m.bodies {
		rate := b.DailyRate
		out[i] = aspect.Body{
			Name:      b.Name,
			Longitude: geometry.Normalize(b.Longitude + rate*days),
			Speed:     &rate,
		}
	}
	return out, nil
}

// Reference returns the provider's reference instant.
func (m *MeanMotion) Reference() time.Time {
	return m.reference
}

//Personal.AI order the ending
