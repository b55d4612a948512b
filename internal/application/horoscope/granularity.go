// Package horoscope composes the domain engines into forecast generation:
// positions from an ephemeris, aspects, patterns, the active period chain,
// and influence scores per forecast step.
package horoscope

import (
	"time"

	"github.com/jyotisha-io/grahakala/pkg/errors"
)

// Granularity selects the forecast step width.
type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
	Yearly  Granularity = "yearly"
)

// stepFuncs maps each granularity to its date-advance strategy.  Adding a
// granularity is one entry here, nothing else.
var stepFuncs = map[Granularity]func(time.Time) time.Time{
	Daily:   func(t time.Time) time.Time { return t.AddDate(0, 0, 1) },
	Weekly:  func(t time.Time) time.Time { return t.AddDate(0, 0, 7) },
	Monthly: func(t time.Time) time.Time { return t.AddDate(0, 1, 0) },
	Yearly:  func(t time.Time) time.Time { return t.AddDate(1, 0, 0) },
}

// IsValid reports whether g names a supported granularity.
func (g Granularity) IsValid() bool {
	_, ok := stepFuncs[g]
	return ok
}

// Next returns the start of the step after t.
func (g Granularity) Next(t time.Time) time.Time {
	step, ok := stepFuncs[g]
	if !ok {
		return t
	}
	return step(t)
}

// ParseGranularity parses a string into a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	g := Granularity(s)
	if !g.IsValid() {
		return "", errors.New(errors.ErrCodeGranularityUnknown, "unsupported granularity: "+s)
	}
	return g, nil
}

//Personal.AI order the ending
