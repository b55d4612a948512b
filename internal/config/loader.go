package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for all engine settings.
const envPrefix = "GRAHA"

// newViper builds a pre-configured Viper instance: YAML file type, GRAHA_
// env prefix, automatic env binding, and a "." → "_" key replacer so
// nested keys like "engine.dasha.max_depth" resolve to
// GRAHA_ENGINE_DASHA_MAX_DEPTH.
// knownEnvKeys lists the scalar keys resolvable from environment variables
// alone.  Viper only unmarshals keys it knows about, so each must be
// registered for env-only loading to see it.
var knownEnvKeys = []string{
	"log.level", "log.format",
	"metrics.enabled", "metrics.namespace", "metrics.subsystem",
	"engine.pattern.cluster_min_size", "engine.pattern.cluster_max_span",
	"engine.dasha.max_depth", "engine.dasha.min_sub_period",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range knownEnvKeys {
		v.SetDefault(key, nil)
	}
	return v
}

// Load reads the YAML file at configPath, merges GRAHA_* environment
// overrides, applies defaults, and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}
	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from GRAHA_* environment variables
// and defaults, with no file required.
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

// Watch monitors configPath and invokes onChange with each newly parsed
// Config.  A change that fails to parse or validate is dropped rather than
// propagated, so the running configuration never regresses to a broken
// state.  Watch is non-blocking; viper manages the watcher goroutine.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Callers are expected to Load first; the initial read only primes
	// the watcher.
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
}

// MustLoad panics on any load error.  For use in main() only.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}

//Personal.AI order the ending
