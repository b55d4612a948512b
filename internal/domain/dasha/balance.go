package dasha

import (
	"math"

	"github.com/jyotisha-io/grahakala/internal/domain/geometry"
	"github.com/jyotisha-io/grahakala/pkg/errors"
)

// Balance captures how much of the opening period remains at the reference
// epoch: the lord ruling the division the driving body occupies, and the
// unelapsed fraction of that lord's full duration.
type Balance struct {
	Lord              string  `json:"lord"`
	RemainingFraction float64 `json:"remainingFraction"`
}

// ComputeBalance derives the opening balance from the driving body's
// position expressed as a division index and the fractional distance
// already traversed within that division.  A fraction of 0.9 leaves a
// remaining fraction of 0.1.
func (s Scheme) ComputeBalance(divisionIndex int, fraction float64) (Balance, error) {
	lord, err := s.LordOfDivision(divisionIndex)
	if err != nil {
		return Balance{}, err
	}
	if fraction < 0 || fraction >= 1 {
		return Balance{}, errors.Newf(errors.ErrCodeFractionOutOfRange,
			"traversed fraction %g must be in [0, 1)", fraction)
	}
	return Balance{Lord: lord.Name, RemainingFraction: 1 - fraction}, nil
}

// BalanceFromLongitude computes the opening balance directly from the
// driving body's ecliptic longitude.  The longitude is normalized first, so
// any finite value is accepted.
func (s Scheme) BalanceFromLongitude(longitude float64) Balance {
	lon := geometry.Normalize(longitude)
	index := int(lon / DivisionSpan)
	if index >= Divisions {
		index = Divisions - 1
	}
	fraction := (lon - float64(index)*DivisionSpan) / DivisionSpan
	if fraction < 0 {
		fraction = 0
	} else if fraction >= 1 {
		fraction = math.Nextafter(1, 0)
	}
	b, _ := s.ComputeBalance(index, fraction)
	return b
}

// Validate checks the balance against the scheme it will seed.
func (b Balance) Validate(s Scheme) error {
	if s.indexOf(b.Lord) < 0 {
		return errors.New(errors.ErrCodeSchemeInvalid, "balance lord not in scheme: "+b.Lord)
	}
	if b.RemainingFraction <= 0 || b.RemainingFraction > 1 {
		return errors.Newf(errors.ErrCodeFractionOutOfRange,
			"remaining fraction %g must be in (0, 1]", b.RemainingFraction)
	}
	return nil
}

//Personal.AI order the ending
