// Package dasha implements the hierarchical time-period calculator: a fixed
// ordered cycle of named ruling periods partitioning a multi-decade span,
// the partial period active at a reference epoch, and recursive sub-period
// resolution to bounded depth.
package dasha

import (
	"github.com/jyotisha-io/grahakala/internal/domain/geometry"
	"github.com/jyotisha-io/grahakala/pkg/errors"
)

// Divisions is the number of zodiacal divisions (nakshatras) the driving
// body moves through; each division spans 13°20′.
const Divisions = 27

// DivisionSpan is the arc of one division in degrees.
const DivisionSpan = geometry.FullCircle / Divisions

// Lord is one named period in the cycle with its fixed duration in years.
type Lord struct {
	Name  string  `json:"name" mapstructure:"name"`
	Years float64 `json:"years" mapstructure:"years"`
}

// Scheme is the ordered cycle of ruling lords.  The stock scheme is
// Vimshottari (9 lords over 120 years); alternate schemes may be supplied
// as long as they validate.
type Scheme struct {
	Lords []Lord `json:"lords" mapstructure:"lords"`
}

// Vimshottari returns the classical 120-year scheme.  The order starts from
// Ketu, which rules the first nakshatra (Ashwini).
func Vimshottari() Scheme {
	return Scheme{Lords: []Lord{
		{Name: "Ketu", Years: 7},
		{Name: "Venus", Years: 20},
		{Name: "Sun", Years: 6},
		{Name: "Moon", Years: 10},
		{Name: "Mars", Years: 7},
		{Name: "Rahu", Years: 18},
		{Name: "Jupiter", Years: 16},
		{Name: "Saturn", Years: 19},
		{Name: "Mercury", Years: 17},
	}}
}

// TotalYears returns the full cycle length.
func (s Scheme) TotalYears() float64 {
	var total float64
	for _, l := range s.Lords {
		total += l.Years
	}
	return total
}

// Validate fails fast on malformed scheme tables, before any query runs.
func (s Scheme) Validate() error {
	if len(s.Lords) == 0 {
		return errors.New(errors.ErrCodeSchemeInvalid, "scheme must contain at least one lord")
	}
	seen := make(map[string]struct{}, len(s.Lords))
	for _, l := range s.Lords {
		if l.Name == "" {
			return errors.New(errors.ErrCodeSchemeInvalid, "lord name must not be empty")
		}
		if _, dup := seen[l.Name]; dup {
			return errors.New(errors.ErrCodeSchemeInvalid, "duplicate lord name: "+l.Name)
		}
		seen[l.Name] = struct{}{}
		if l.Years <= 0 {
			return errors.Newf(errors.ErrCodeSchemeInvalid,
				"lord %s duration %g must be positive", l.Name, l.Years)
		}
	}
	return nil
}

// indexOf returns the position of the named lord in the cycle, or -1.
func (s Scheme) indexOf(name string) int {
	for i, l := range s.Lords {
		if l.Name == name {
			return i
		}
	}
	return -1
}

// YearsOf returns the fixed duration of the named lord.
func (s Scheme) YearsOf(name string) (float64, error) {
	i := s.indexOf(name)
	if i < 0 {
		return 0, errors.New(errors.ErrCodeSchemeInvalid, "lord not in scheme: "+name)
	}
	return s.Lords[i].Years, nil
}

// LordOfDivision returns the lord ruling the given zodiacal division.
// The mapping cycles through the scheme order: division index mod cycle
// length.
func (s Scheme) LordOfDivision(index int) (Lord, error) {
	if index < 0 || index >= Divisions {
		return Lord{}, errors.Newf(errors.ErrCodeValidation,
			"division index %d must be in [0, %d)", index, Divisions)
	}
	return s.Lords[index%len(s.Lords)], nil
}

//Personal.AI order the ending
