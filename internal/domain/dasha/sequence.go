package dasha

import (
	"fmt"
	"time"

	"github.com/jyotisha-io/grahakala/pkg/errors"
)

// DaysPerYear converts period years to calendar time.  Julian years keep
// period arithmetic exact and reversible; calendar-aware conversion is a
// presentation concern.
const DaysPerYear = 365.25

// YearsToDuration converts fractional years to a time.Duration.
func YearsToDuration(years float64) time.Duration {
	return time.Duration(years * DaysPerYear * 24 * float64(time.Hour))
}

// Period is one ruled span on the timeline.  Start is inclusive, End
// exclusive, so adjacent periods tile the timeline without overlap.
type Period struct {
	Lord  string    `json:"lord"`
	Level int       `json:"level"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Years float64   `json:"years"`
}

// Contains reports whether date falls inside the period.
func (p Period) Contains(date time.Time) bool {
	return !date.Before(p.Start) && date.Before(p.End)
}

// Duration returns the period's span as wall-clock time.
func (p Period) Duration() time.Duration {
	return p.End.Sub(p.Start)
}

// Progress returns how far through the period the date lies, in [0, 1).
// Dates outside the period clamp to the nearest bound.
func (p Period) Progress(date time.Time) float64 {
	total := p.End.Sub(p.Start)
	if total <= 0 {
		return 0
	}
	f := float64(date.Sub(p.Start)) / float64(total)
	if f < 0 {
		return 0
	}
	if f >= 1 {
		return 1
	}
	return f
}

func (p Period) String() string {
	return fmt.Sprintf("%s L%d [%s .. %s)", p.Lord, p.Level,
		p.Start.Format(time.RFC3339), p.End.Format(time.RFC3339))
}

// GenerateSequence produces the top-level period sequence anchored at the
// epoch.  The first period belongs to the balance lord and carries only the
// remaining fraction of its full duration; the rest of the cycle follows in
// scheme order at full durations.  Periods are contiguous: each End equals
// the next Start.
func (s Scheme) GenerateSequence(epoch time.Time, b Balance) ([]Period, error) {
	if epoch.IsZero() {
		return nil, errors.New(errors.ErrCodeEpochInvalid, "epoch must not be the zero time")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := b.Validate(s); err != nil {
		return nil, err
	}

	first := s.indexOf(b.Lord)
	seq := make([]Period, 0, len(s.Lords))
	start := epoch
	for i := 0; i < len(s.Lords); i++ {
		lord := s.Lords[(first+i)%len(s.Lords)]
		years := lord.Years
		if i == 0 {
			years *= b.RemainingFraction
		}
		end := start.Add(YearsToDuration(years))
		seq = append(seq, Period{
			Lord:  lord.Name,
			Level: 1,
			Start: start,
			End:   end,
			Years: years,
		})
		start = end
	}
	return seq, nil
}

// ActivePeriod returns the period containing date.  The second return is
// false when the date lies outside the sequence horizon; that is an
// ordinary outcome, not an error.
func ActivePeriod(seq []Period, date time.Time) (Period, bool) {
	for _, p := range seq {
		if p.Contains(date) {
			return p, true
		}
	}
	return Period{}, false
}

//Personal.AI order the ending
