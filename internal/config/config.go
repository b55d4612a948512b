// Package config defines the engine's configuration structures and their
// loading, defaults, and validation.  Only plain data types live in this
// file; parsing is in loader.go and domain conversion in convert.go.
package config

import (
	"time"

	"github.com/jyotisha-io/grahakala/internal/infrastructure/monitoring/logging"
	"github.com/jyotisha-io/grahakala/pkg/errors"
)

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
	Subsystem string `mapstructure:"subsystem"`
}

// AspectDefConfig is one row of the aspect table: nominal angle and
// maximum orb, both in degrees.
type AspectDefConfig struct {
	Angle  float64 `mapstructure:"angle"`
	MaxOrb float64 `mapstructure:"max_orb"`
}

// PatternConfig tunes multi-body pattern recognition.
type PatternConfig struct {
	// TriangleTypes lists the aspect types eligible to close a triangle
	// pattern.  Empty means trine only.
	TriangleTypes []string `mapstructure:"triangle_types"`
	// ClusterMinSize is the minimum body count for a cluster pattern.
	ClusterMinSize int `mapstructure:"cluster_min_size"`
	// ClusterMaxSpan is the maximum arc, in degrees, a cluster may cover.
	ClusterMaxSpan float64 `mapstructure:"cluster_max_span"`
}

// LordConfig is one entry of a period scheme override.
type LordConfig struct {
	Name  string  `mapstructure:"name"`
	Years float64 `mapstructure:"years"`
}

// DashaConfig tunes the period calculator.  An empty Lords list selects
// the stock Vimshottari scheme.
type DashaConfig struct {
	Lords        []LordConfig  `mapstructure:"lords"`
	MaxDepth     int           `mapstructure:"max_depth"`
	MinSubPeriod time.Duration `mapstructure:"min_sub_period"`
}

// InfluenceConfig overrides the influence scoring tables.  Empty maps
// select the stock tables.
type InfluenceConfig struct {
	BaseWeights map[string]float64 `mapstructure:"base_weights"`
	Modifiers   map[string]float64 `mapstructure:"modifiers"`
}

// EngineConfig groups the analysis tunables.
type EngineConfig struct {
	// Aspects overrides the aspect table, keyed by type name.  Empty
	// selects the stock table.
	Aspects   map[string]AspectDefConfig `mapstructure:"aspects"`
	Pattern   PatternConfig              `mapstructure:"pattern"`
	Dasha     DashaConfig                `mapstructure:"dasha"`
	Influence InfluenceConfig            `mapstructure:"influence"`
}

// Config is the root configuration document.
type Config struct {
	Log     logging.Config `mapstructure:"log"`
	Metrics MetricsConfig  `mapstructure:"metrics"`
	Engine  EngineConfig   `mapstructure:"engine"`
}

// Validate checks the whole document by converting every engine section
// into its domain form, so a bad table fails at startup rather than on
// first query.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New(errors.ErrCodeConfigInvalid, "config must not be nil")
	}
	if _, err := c.Engine.AspectConfig(); err != nil {
		return err
	}
	if _, err := c.Engine.Pattern.Domain(); err != nil {
		return err
	}
	scheme, calcCfg, err := c.Engine.Dasha.Domain()
	if err != nil {
		return err
	}
	if err := scheme.Validate(); err != nil {
		return err
	}
	if err := calcCfg.Validate(); err != nil {
		return err
	}
	if _, _, err := c.Engine.Influence.Domain(); err != nil {
		return err
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "metrics namespace must not be empty when metrics are enabled")
	}
	return nil
}

//Personal.AI order the ending
