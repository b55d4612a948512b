package prometheus

// EngineMetrics bundles the instrument set the analysis engine reports.
// All fields are interface-typed, so an EngineMetrics built from a failed
// collector silently degrades to no-ops.
type EngineMetrics struct {
	// AspectQueries counts detection runs, labelled by outcome.
	AspectQueries CounterVec
	// AspectsFound counts detected aspects by type.
	AspectsFound CounterVec
	// PatternsFound counts recognized patterns by kind.
	PatternsFound CounterVec
	// DashaQueries counts period-chain resolutions, labelled by outcome.
	DashaQueries CounterVec
	// ForecastRuns counts pipeline executions, labelled by granularity
	// and outcome.
	ForecastRuns CounterVec
	// ForecastSteps gauges the step count of the most recent forecast.
	ForecastSteps GaugeVec
	// QueryDuration is the per-operation latency histogram, labelled by
	// operation name.
	QueryDuration HistogramVec
	// Errors counts failures by error code.
	Errors CounterVec
}

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// NewEngineMetrics registers the engine instrument set on the collector.
func NewEngineMetrics(c MetricsCollector) *EngineMetrics {
	return &EngineMetrics{
		AspectQueries: c.RegisterCounter("aspect_queries_total",
			"Aspect detection runs by outcome.", "outcome"),
		AspectsFound: c.RegisterCounter("aspects_found_total",
			"Detected aspects by type.", "type"),
		PatternsFound: c.RegisterCounter("patterns_found_total",
			"Recognized multi-body patterns by kind.", "kind"),
		DashaQueries: c.RegisterCounter("dasha_queries_total",
			"Period chain resolutions by outcome.", "outcome"),
		ForecastRuns: c.RegisterCounter("forecast_runs_total",
			"Forecast pipeline executions by granularity and outcome.", "granularity", "outcome"),
		ForecastSteps: c.RegisterGauge("forecast_steps",
			"Step count of the most recent forecast.", "granularity"),
		QueryDuration: c.RegisterHistogram("query_duration_seconds",
			"Latency of engine operations.", nil, "operation"),
		Errors: c.RegisterCounter("errors_total",
			"Engine failures by error code.", "code"),
	}
}

// NopEngineMetrics returns an instrument set that records nothing.  Used
// where a caller does not wire monitoring.
func NopEngineMetrics() *EngineMetrics {
	return &EngineMetrics{
		AspectQueries: noopCounterVec{},
		AspectsFound:  noopCounterVec{},
		PatternsFound: noopCounterVec{},
		DashaQueries:  noopCounterVec{},
		ForecastRuns:  noopCounterVec{},
		ForecastSteps: noopGaugeVec{},
		QueryDuration: noopHistogramVec{},
		Errors:        noopCounterVec{},
	}
}

//Personal.AI order the ending
