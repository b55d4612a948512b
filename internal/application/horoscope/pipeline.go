package horoscope

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jyotisha-io/grahakala/internal/config"
	"github.com/jyotisha-io/grahakala/internal/domain/aspect"
	"github.com/jyotisha-io/grahakala/internal/domain/dasha"
	"github.com/jyotisha-io/grahakala/internal/domain/influence"
	"github.com/jyotisha-io/grahakala/internal/domain/pattern"
	"github.com/jyotisha-io/grahakala/internal/infrastructure/monitoring/logging"
	"github.com/jyotisha-io/grahakala/internal/infrastructure/monitoring/prometheus"
	"github.com/jyotisha-io/grahakala/pkg/errors"
)

// Ephemeris supplies chart positions for any instant.  Implementations
// must return a stable body order across calls.
type Ephemeris interface {
	PositionsAt(ctx context.Context, t time.Time) ([]aspect.Body, error)
}

// DefaultDrivingBody seeds the period balance; classically the Moon's
// division position drives the cycle.
const DefaultDrivingBody = "Moon"

// DefaultChainDepth is the stock nesting depth reported per step.
const DefaultChainDepth = 3

// MaxForecastSteps bounds a single run.  A range and granularity whose
// step count exceeds it is rejected rather than truncated.
const MaxForecastSteps = 1024

// ForecastRequest describes one pipeline run.
type ForecastRequest struct {
	// Birth anchors the period sequence.
	Birth time.Time `json:"birth"`
	// Start (inclusive) and End (exclusive) bound the forecast range.
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	// Granularity selects the step width.
	Granularity Granularity `json:"granularity"`
	// ChainDepth overrides the nesting depth; zero means the default.
	ChainDepth int `json:"chainDepth,omitempty"`
}

func (r ForecastRequest) validate() error {
	if r.Birth.IsZero() {
		return errors.New(errors.ErrCodeEpochInvalid, "birth must not be the zero time")
	}
	if r.Start.IsZero() || r.End.IsZero() {
		return errors.New(errors.ErrCodeForecastRangeInvalid, "start and end must be set")
	}
	if !r.End.After(r.Start) {
		return errors.New(errors.ErrCodeForecastRangeInvalid, "end must be after start")
	}
	if !r.Granularity.IsValid() {
		return errors.New(errors.ErrCodeGranularityUnknown,
			"unsupported granularity: "+string(r.Granularity))
	}
	if r.ChainDepth < 0 {
		return errors.InvalidParam("chain depth must not be negative")
	}
	return nil
}

// Snapshot is the full analysis for one forecast step.
type Snapshot struct {
	Date       time.Time          `json:"date"`
	Bodies     []aspect.Body      `json:"bodies"`
	Aspects    []aspect.Aspect    `json:"aspects"`
	Patterns   []pattern.Pattern  `json:"patterns"`
	Chain      []dasha.ChainEntry `json:"chain,omitempty"`
	Influences map[string]float64 `json:"influences"`
}

// Forecast is the result of one pipeline run.
type Forecast struct {
	ID          uuid.UUID       `json:"id"`
	Request     ForecastRequest `json:"request"`
	GeneratedAt time.Time       `json:"generatedAt"`
	Steps       []Snapshot      `json:"steps"`
}

// Pipeline wires the domain engines behind a single Run entry point.
type Pipeline struct {
	ephemeris   Ephemeris
	detector    *aspect.Detector
	recognizer  *pattern.Recognizer
	calculator  *dasha.Calculator
	scorer      *influence.Scorer
	drivingBody string
	logger      logging.Logger
	metrics     *prometheus.EngineMetrics
}

// NewPipeline builds every domain engine from the supplied configuration.
// A nil logger or metrics set degrades to no-ops.
func NewPipeline(cfg *config.Config, eph Ephemeris, logger logging.Logger, metrics *prometheus.EngineMetrics) (*Pipeline, error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrCodeConfigInvalid, "config must not be nil")
	}
	if eph == nil {
		return nil, errors.InvalidParam("ephemeris must not be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if metrics == nil {
		metrics = prometheus.NopEngineMetrics()
	}

	aspectCfg, err := cfg.Engine.AspectConfig()
	if err != nil {
		return nil, err
	}
	detector, err := aspect.NewDetector(aspectCfg)
	if err != nil {
		return nil, err
	}

	patternCfg, err := cfg.Engine.Pattern.Domain()
	if err != nil {
		return nil, err
	}
	recognizer, err := pattern.NewRecognizer(patternCfg)
	if err != nil {
		return nil, err
	}

	scheme, calcCfg, err := cfg.Engine.Dasha.Domain()
	if err != nil {
		return nil, err
	}
	calculator, err := dasha.NewCalculator(scheme, calcCfg)
	if err != nil {
		return nil, err
	}

	modifiers, weights, err := cfg.Engine.Influence.Domain()
	if err != nil {
		return nil, err
	}
	scorer, err := influence.NewScorer(modifiers, weights)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		ephemeris:   eph,
		detector:    detector,
		recognizer:  recognizer,
		calculator:  calculator,
		scorer:      scorer,
		drivingBody: DefaultDrivingBody,
		logger:      logger.Named("horoscope"),
		metrics:     metrics,
	}, nil
}

// Run generates a forecast: one snapshot per step from Start to End.
func (p *Pipeline) Run(ctx context.Context, req ForecastRequest) (*Forecast, error) {
	timer := prometheus.NewTimer(p.metrics.QueryDuration.WithLabelValues("forecast"))
	defer timer.ObserveDuration()

	forecast, err := p.run(ctx, req)
	outcome := prometheus.OutcomeOK
	if err != nil {
		outcome = prometheus.OutcomeError
		p.metrics.Errors.WithLabelValues(string(errors.GetCode(err))).Inc()
		p.logger.Error("forecast run failed",
			logging.String("granularity", string(req.Granularity)),
			logging.Err(err))
	}
	p.metrics.ForecastRuns.WithLabelValues(string(req.Granularity), outcome).Inc()
	return forecast, err
}

func (p *Pipeline) run(ctx context.Context, req ForecastRequest) (*Forecast, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	depth := req.ChainDepth
	if depth == 0 {
		depth = DefaultChainDepth
	}

	seq, err := p.periodSequence(ctx, req.Birth)
	if err != nil {
		return nil, err
	}

	steps := make([]Snapshot, 0, 32)
	for date := req.Start; date.Before(req.End); date = req.Granularity.Next(date) {
		if len(steps) >= MaxForecastSteps {
			return nil, errors.Newf(errors.ErrCodeForecastRangeInvalid,
				"range at %s granularity exceeds %d steps", req.Granularity, MaxForecastSteps)
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternal, "forecast cancelled")
		}

		snap, err := p.snapshot(ctx, date, seq, depth)
		if err != nil {
			return nil, err
		}
		steps = append(steps, snap)
	}

	p.metrics.ForecastSteps.WithLabelValues(string(req.Granularity)).Set(float64(len(steps)))
	p.logger.Info("forecast generated",
		logging.String("granularity", string(req.Granularity)),
		logging.Int("steps", len(steps)),
		logging.Time("start", req.Start),
		logging.Time("end", req.End))

	return &Forecast{
		ID:          uuid.New(),
		Request:     req,
		GeneratedAt: time.Now().UTC(),
		Steps:       steps,
	}, nil
}

// periodSequence anchors the period cycle at birth, seeding the balance
// from the driving body's longitude in the birth chart.
func (p *Pipeline) periodSequence(ctx context.Context, birth time.Time) ([]dasha.Period, error) {
	bodies, err := p.ephemeris.PositionsAt(ctx, birth)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeEphemerisFailed, "birth chart lookup failed")
	}
	driving, ok := findBody(bodies, p.drivingBody)
	if !ok {
		return nil, errors.New(errors.ErrCodeBodyInvalid,
			"driving body absent from chart: "+p.drivingBody)
	}

	scheme := p.calculator.Scheme()
	balance := scheme.BalanceFromLongitude(driving.Longitude)
	return scheme.GenerateSequence(birth, balance)
}

// snapshot computes the full analysis for one step date.
func (p *Pipeline) snapshot(ctx context.Context, date time.Time, seq []dasha.Period, depth int) (Snapshot, error) {
	bodies, err := p.ephemeris.PositionsAt(ctx, date)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, errors.ErrCodeEphemerisFailed, "position lookup failed")
	}

	aspects, err := p.detector.Detect(bodies)
	if err != nil {
		p.metrics.AspectQueries.WithLabelValues(prometheus.OutcomeError).Inc()
		return Snapshot{}, err
	}
	p.metrics.AspectQueries.WithLabelValues(prometheus.OutcomeOK).Inc()
	for _, a := range aspects {
		p.metrics.AspectsFound.WithLabelValues(string(a.Type)).Inc()
	}

	patterns, err := p.recognizer.Detect(bodies, aspects)
	if err != nil {
		return Snapshot{}, err
	}
	for _, pat := range patterns {
		p.metrics.PatternsFound.WithLabelValues(string(pat.Kind)).Inc()
	}

	var chain []dasha.ChainEntry
	if top, ok := dasha.ActivePeriod(seq, date); ok {
		chain, err = p.calculator.NestedPeriods(top, date, depth)
		if err != nil {
			p.metrics.DashaQueries.WithLabelValues(prometheus.OutcomeError).Inc()
			return Snapshot{}, err
		}
		p.metrics.DashaQueries.WithLabelValues(prometheus.OutcomeOK).Inc()
	}

	names := make([]string, len(bodies))
	for i, b := range bodies {
		names[i] = b.Name
	}
	influences, err := p.scorer.ScoreAll(aspects, names...)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Date:       date,
		Bodies:     bodies,
		Aspects:    aspects,
		Patterns:   patterns,
		Chain:      chain,
		Influences: influences,
	}, nil
}

func findBody(bodies []aspect.Body, name string) (aspect.Body, bool) {
	for _, b := range bodies {
		if b.Name == name {
			return b, true
		}
	}
	return aspect.Body{}, false
}

//Personal.AI order the ending
