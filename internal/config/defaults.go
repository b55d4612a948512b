package config

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultMetricsNamespace = "grahakala"
	DefaultMetricsSubsystem = "engine"
)

// ApplyDefaults fills zero-value fields with well-known defaults.  It runs
// after unmarshalling and before Validate, so optional fields are never
// seen as missing.  Explicitly set values are left alone.  Engine table
// overrides stay empty here; the convert layer maps empty to the stock
// domain tables.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = []string{"stdout"}
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Metrics.Subsystem == "" {
		cfg.Metrics.Subsystem = DefaultMetricsSubsystem
	}
}

//Personal.AI order the ending
