package dasha

import (
	"time"

	"github.com/jyotisha-io/grahakala/pkg/errors"
)

// HardDepthCap bounds nesting regardless of configuration.  Beyond a
// handful of levels sub-periods shrink below any meaningful resolution.
const HardDepthCap = 8

// DefaultMaxDepth is the stock nesting depth (period, sub-period,
// sub-sub-period, and two more below).
const DefaultMaxDepth = 5

// DefaultMinSubPeriod stops subdivision once children would be shorter
// than this.
const DefaultMinSubPeriod = time.Hour

// CalculatorConfig bounds recursive subdivision.
type CalculatorConfig struct {
	MaxDepth     int           `json:"maxDepth" mapstructure:"max_depth"`
	MinSubPeriod time.Duration `json:"minSubPeriod" mapstructure:"min_sub_period"`
}

// DefaultCalculatorConfig returns the stock bounds.
func DefaultCalculatorConfig() CalculatorConfig {
	return CalculatorConfig{
		MaxDepth:     DefaultMaxDepth,
		MinSubPeriod: DefaultMinSubPeriod,
	}
}

// Validate rejects configurations that would loop or recurse unbounded.
func (c CalculatorConfig) Validate() error {
	if c.MaxDepth < 1 || c.MaxDepth > HardDepthCap {
		return errors.Newf(errors.ErrCodeDepthExceeded,
			"max depth %d must be in [1, %d]", c.MaxDepth, HardDepthCap)
	}
	if c.MinSubPeriod <= 0 {
		return errors.New(errors.ErrCodeConfigInvalid, "min sub-period must be positive")
	}
	return nil
}

// Calculator resolves period chains against a validated scheme.
type Calculator struct {
	scheme Scheme
	cfg    CalculatorConfig
}

// NewCalculator validates the scheme and bounds once so queries cannot
// fail on configuration.
func NewCalculator(scheme Scheme, cfg CalculatorConfig) (*Calculator, error) {
	if err := scheme.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{scheme: scheme, cfg: cfg}, nil
}

// Scheme returns the cycle the calculator was built with.
func (c *Calculator) Scheme() Scheme {
	return c.scheme
}

// Subdivide partitions a parent period into one child per lord.  The child
// cycle starts from the parent's own lord and proceeds in scheme order;
// each child's share of the parent is its lord's years over the full cycle
// length, so children always sum exactly to the parent.
func (c *Calculator) Subdivide(parent Period) ([]Period, error) {
	first := c.scheme.indexOf(parent.Lord)
	if first < 0 {
		return nil, errors.New(errors.ErrCodeSchemeInvalid, "period lord not in scheme: "+parent.Lord)
	}
	total := c.scheme.TotalYears()
	parentSpan := parent.Duration()

	children := make([]Period, 0, len(c.scheme.Lords))
	start := parent.Start
	for i := 0; i < len(c.scheme.Lords); i++ {
		lord := c.scheme.Lords[(first+i)%len(c.scheme.Lords)]
		share := lord.Years / total
		end := start.Add(time.Duration(float64(parentSpan) * share))
		if i == len(c.scheme.Lords)-1 {
			end = parent.End
		}
		children = append(children, Period{
			Lord:  lord.Name,
			Level: parent.Level + 1,
			Start: start,
			End:   end,
			Years: parent.Years * share,
		})
		start = end
	}
	return children, nil
}

// ChainEntry is one level of a resolved nesting chain.
type ChainEntry struct {
	Level    int     `json:"level"`
	Period   Period  `json:"period"`
	Progress float64 `json:"progress"`
}

// NestedPeriods resolves the chain of active periods containing date, from
// the given top-level period down to depth levels.  Subdivision stops early
// once children would fall below the configured minimum sub-period length.
func (c *Calculator) NestedPeriods(top Period, date time.Time, depth int) ([]ChainEntry, error) {
	if depth < 1 || depth > c.cfg.MaxDepth {
		return nil, errors.Newf(errors.ErrCodeDepthExceeded,
			"depth %d must be in [1, %d]", depth, c.cfg.MaxDepth)
	}
	if !top.Contains(date) {
		return nil, errors.InvalidParam("date outside period " + top.String())
	}

	chain := make([]ChainEntry, 0, depth)
	current := top
	for level := 1; ; level++ {
		chain = append(chain, ChainEntry{
			Level:    level,
			Period:   current,
			Progress: current.Progress(date),
		})
		if level == depth {
			break
		}
		if c.shortestChild(current) < c.cfg.MinSubPeriod {
			break
		}
		children, err := c.Subdivide(current)
		if err != nil {
			return nil, err
		}
		next, ok := ActivePeriod(children, date)
		if !ok {
			// Cannot happen while children tile the parent; guard anyway.
			break
		}
		current = next
	}
	return chain, nil
}

// shortestChild returns the duration of the briefest child a subdivision of
// p would yield.
func (c *Calculator) shortestChild(p Period) time.Duration {
	total := c.scheme.TotalYears()
	min := c.scheme.Lords[0].Years
	for _, l := range c.scheme.Lords[1:] {
		if l.Years < min {
			min = l.Years
		}
	}
	return time.Duration(float64(p.Duration()) * min / total)
}

// ActiveChain is the one-shot query: generate the sequence from epoch and
// balance, locate the period containing date, and resolve its nesting
// chain.  The boolean mirrors ActivePeriod: false means the date lies
// outside the sequence horizon.
func (c *Calculator) ActiveChain(epoch time.Time, b Balance, date time.Time, depth int) ([]ChainEntry, bool, error) {
	seq, err := c.scheme.GenerateSequence(epoch, b)
	if err != nil {
		return nil, false, err
	}
	top, ok := ActivePeriod(seq, date)
	if !ok {
		return nil, false, nil
	}
	chain, err := c.NestedPeriods(top, date, depth)
	if err != nil {
		return nil, false, err
	}
	return chain, true, nil
}

//Personal.AI order the ending
