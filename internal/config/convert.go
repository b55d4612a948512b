package config

import (
	"github.com/jyotisha-io/grahakala/internal/domain/aspect"
	"github.com/jyotisha-io/grahakala/internal/domain/dasha"
	"github.com/jyotisha-io/grahakala/internal/domain/influence"
	"github.com/jyotisha-io/grahakala/internal/domain/pattern"
)

// AspectConfig converts the aspect table override into its domain form.
// An empty override selects the stock table.
func (c EngineConfig) AspectConfig() (aspect.Config, error) {
	if len(c.Aspects) == 0 {
		return aspect.DefaultConfig(), nil
	}
	out := make(aspect.Config, len(c.Aspects))
	for name, def := range c.Aspects {
		typ, err := aspect.ParseType(name)
		if err != nil {
			return nil, err
		}
		out[typ] = aspect.Definition{Angle: def.Angle, MaxOrb: def.MaxOrb}
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Domain converts the pattern section, filling unset fields from the stock
// configuration.
func (c PatternConfig) Domain() (pattern.Config, error) {
	out := pattern.DefaultConfig()
	if len(c.TriangleTypes) > 0 {
		types := make([]aspect.Type, 0, len(c.TriangleTypes))
		for _, name := range c.TriangleTypes {
			typ, err := aspect.ParseType(name)
			if err != nil {
				return pattern.Config{}, err
			}
			types = append(types, typ)
		}
		out.TriangleTypes = types
	}
	if c.ClusterMinSize != 0 {
		out.ClusterMinSize = c.ClusterMinSize
	}
	if c.ClusterMaxSpan != 0 {
		out.ClusterMaxSpan = c.ClusterMaxSpan
	}
	if err := out.Validate(); err != nil {
		return pattern.Config{}, err
	}
	return out, nil
}

// Domain converts the dasha section into a scheme and calculator bounds.
func (c DashaConfig) Domain() (dasha.Scheme, dasha.CalculatorConfig, error) {
	scheme := dasha.Vimshottari()
	if len(c.Lords) > 0 {
		lords := make([]dasha.Lord, len(c.Lords))
		for i, l := range c.Lords {
			lords[i] = dasha.Lord{Name: l.Name, Years: l.Years}
		}
		scheme = dasha.Scheme{Lords: lords}
	}
	if err := scheme.Validate(); err != nil {
		return dasha.Scheme{}, dasha.CalculatorConfig{}, err
	}

	calcCfg := dasha.DefaultCalculatorConfig()
	if c.MaxDepth != 0 {
		calcCfg.MaxDepth = c.MaxDepth
	}
	if c.MinSubPeriod != 0 {
		calcCfg.MinSubPeriod = c.MinSubPeriod
	}
	if err := calcCfg.Validate(); err != nil {
		return dasha.Scheme{}, dasha.CalculatorConfig{}, err
	}
	return scheme, calcCfg, nil
}

// Domain converts the influence section into modifier and weight tables.
// Empty maps select the stock tables.
func (c InfluenceConfig) Domain() (influence.Modifiers, influence.BaseWeights, error) {
	modifiers := influence.DefaultModifiers()
	if len(c.Modifiers) > 0 {
		modifiers = make(influence.Modifiers, len(c.Modifiers))
		for name, factor := range c.Modifiers {
			typ, err := aspect.ParseType(name)
			if err != nil {
				return nil, nil, err
			}
			modifiers[typ] = factor
		}
	}
	if err := modifiers.Validate(); err != nil {
		return nil, nil, err
	}

	weights := influence.DefaultBaseWeights()
	if len(c.BaseWeights) > 0 {
		weights = influence.BaseWeights(c.BaseWeights)
	}
	if err := weights.Validate(); err != nil {
		return nil, nil, err
	}
	return modifiers, weights, nil
}

//Personal.AI order the ending
