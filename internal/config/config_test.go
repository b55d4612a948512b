package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyotisha-io/grahakala/internal/domain/aspect"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, []string{"stdout"}, cfg.Log.OutputPaths)
	assert.Equal(t, DefaultMetricsNamespace, cfg.Metrics.Namespace)
	assert.Equal(t, DefaultMetricsSubsystem, cfg.Metrics.Subsystem)

	// Explicit values win.
	cfg = &Config{}
	cfg.Log.Level = "debug"
	ApplyDefaults(cfg)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Nil is tolerated.
	ApplyDefaults(nil)
}

func TestConfig_Validate_Defaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown_aspect_type", func(c *Config) {
			c.Engine.Aspects = map[string]AspectDefConfig{"nonagon": {Angle: 40, MaxOrb: 2}}
		}},
		{"orb_out_of_range", func(c *Config) {
			c.Engine.Aspects = map[string]AspectDefConfig{"trine": {Angle: 120, MaxOrb: 20}}
		}},
		{"cluster_span_out_of_range", func(c *Config) {
			c.Engine.Pattern.ClusterMaxSpan = 150
		}},
		{"dasha_depth_over_cap", func(c *Config) {
			c.Engine.Dasha.MaxDepth = 99
		}},
		{"dasha_lord_without_years", func(c *Config) {
			c.Engine.Dasha.Lords = []LordConfig{{Name: "Sun"}}
		}},
		{"modifier_out_of_range", func(c *Config) {
			c.Engine.Influence.Modifiers = map[string]float64{"trine": 2}
		}},
		{"metrics_without_namespace", func(c *Config) {
			c.Metrics.Enabled = true
			c.Metrics.Namespace = ""
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			ApplyDefaults(cfg)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestEngineConfig_AspectConfig(t *testing.T) {
	// Empty override selects the stock table.
	table, err := EngineConfig{}.AspectConfig()
	require.NoError(t, err)
	assert.Equal(t, aspect.DefaultConfig(), table)

	// Overrides replace the whole table.
	table, err = EngineConfig{Aspects: map[string]AspectDefConfig{
		"trine":  {Angle: 120, MaxOrb: 9},
		"square": {Angle: 90, MaxOrb: 6},
	}}.AspectConfig()
	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.Equal(t, 9.0, table[aspect.Trine].MaxOrb)
}

func TestPatternConfig_Domain(t *testing.T) {
	cfg, err := PatternConfig{
		TriangleTypes:  []string{"sextile"},
		ClusterMinSize: 4,
	}.Domain()
	require.NoError(t, err)
	assert.Equal(t, []aspect.Type{aspect.Sextile}, cfg.TriangleTypes)
	assert.Equal(t, 4, cfg.ClusterMinSize)
	// Unset fields keep the stock values.
	assert.Equal(t, 30.0, cfg.ClusterMaxSpan)
}

func TestDashaConfig_Domain(t *testing.T) {
	scheme, calcCfg, err := DashaConfig{MaxDepth: 3}.Domain()
	require.NoError(t, err)
	assert.Len(t, scheme.Lords, 9)
	assert.Equal(t, 3, calcCfg.MaxDepth)

	scheme, _, err = DashaConfig{Lords: []LordConfig{
		{Name: "Alpha", Years: 10},
		{Name: "Beta", Years: 20},
	}}.Domain()
	require.NoError(t, err)
	assert.InDelta(t, 30.0, scheme.TotalYears(), 1e-12)
}

func TestLoad_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
log:
  level: debug
  format: console
engine:
  aspects:
    trine:
      angle: 120
      max_orb: 9
  pattern:
    cluster_min_size: 4
  dasha:
    max_depth: 3
    min_sub_period: 2h
  influence:
    base_weights:
      Sun: 0.8
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 4, cfg.Engine.Pattern.ClusterMinSize)
	assert.Equal(t, 3, cfg.Engine.Dasha.MaxDepth)
	assert.Equal(t, 2*time.Hour, cfg.Engine.Dasha.MinSubPeriod)
	assert.Equal(t, 9.0, cfg.Engine.Aspects["trine"].MaxOrb)
	assert.Equal(t, 0.8, cfg.Engine.Influence.BaseWeights["Sun"])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
engine:
  aspects:
    trine:
      angle: 120
      max_orb: 99
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GRAHA_LOG_LEVEL", "warn")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestWatch_DeliversUpdatedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: info\n"), 0o600))

	updates := make(chan *Config, 1)
	Watch(path, func(c *Config) {
		select {
		case updates <- c:
		default:
		}
	})

	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o600))
	select {
	case cfg := <-updates:
		assert.Equal(t, "debug", cfg.Log.Level)
	case <-time.After(3 * time.Second):
		t.Skip("filesystem watch did not fire in this environment")
	}
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "absent.yaml"))
	})
}

//Personal.AI order the ending
