package horoscope

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyotisha-io/grahakala/internal/config"
	"github.com/jyotisha-io/grahakala/internal/domain/aspect"
	"github.com/jyotisha-io/grahakala/internal/infrastructure/ephemeris"
	"github.com/jyotisha-io/grahakala/internal/infrastructure/monitoring/logging"
	"github.com/jyotisha-io/grahakala/pkg/errors"
)

var birth = time.Date(1990, 5, 20, 4, 30, 0, 0, time.UTC)

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	eph, err := ephemeris.NewMeanMotionFromRates(birth, map[string]float64{
		"Sun":     35.2,
		"Moon":    128.7,
		"Mercury": 18.4,
		"Venus":   74.9,
		"Mars":    301.5,
		"Jupiter": 95.0,
		"Saturn":  275.3,
	})
	require.NoError(t, err)

	p, err := NewPipeline(cfg, eph, logging.NewNopLogger(), nil)
	require.NoError(t, err)
	return p
}

func TestParseGranularity(t *testing.T) {
	for _, s := range []string{"daily", "weekly", "monthly", "yearly"} {
		g, err := ParseGranularity(s)
		require.NoError(t, err)
		assert.True(t, g.IsValid())
	}

	_, err := ParseGranularity("hourly")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeGranularityUnknown))
}

func TestGranularity_Next(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, base.AddDate(0, 0, 1), Daily.Next(base))
	assert.Equal(t, base.AddDate(0, 0, 7), Weekly.Next(base))
	assert.Equal(t, base.AddDate(0, 1, 0), Monthly.Next(base))
	assert.Equal(t, base.AddDate(1, 0, 0), Yearly.Next(base))
}

func TestRun_DailyForecast(t *testing.T) {
	p := newTestPipeline(t)
	start := birth.AddDate(30, 0, 0)

	forecast, err := p.Run(context.Background(), ForecastRequest{
		Birth:       birth,
		Start:       start,
		End:         start.AddDate(0, 0, 7),
		Granularity: Daily,
	})
	require.NoError(t, err)
	require.NotNil(t, forecast)
	assert.NotEqual(t, forecast.ID.String(), "00000000-0000-0000-0000-000000000000")
	require.Len(t, forecast.Steps, 7)

	for i, step := range forecast.Steps {
		assert.True(t, step.Date.Equal(start.AddDate(0, 0, i)))
		assert.Len(t, step.Bodies, 7)
		assert.NotEmpty(t, step.Influences)
		assert.Contains(t, step.Influences, "Sun")

		// Thirty years in is well inside the 120-year horizon, so every
		// step carries a period chain.
		require.NotEmpty(t, step.Chain)
		assert.Equal(t, 1, step.Chain[0].Level)
		assert.LessOrEqual(t, len(step.Chain), DefaultChainDepth)
		for _, entry := range step.Chain {
			assert.True(t, entry.Period.Contains(step.Date))
		}
	}
}

func TestRun_MonthlyStepCount(t *testing.T) {
	p := newTestPipeline(t)
	start := birth.AddDate(10, 0, 0)

	forecast, err := p.Run(context.Background(), ForecastRequest{
		Birth:       birth,
		Start:       start,
		End:         start.AddDate(0, 3, 0),
		Granularity: Monthly,
	})
	require.NoError(t, err)
	assert.Len(t, forecast.Steps, 3)
}

func TestRun_InvalidRequest(t *testing.T) {
	p := newTestPipeline(t)
	start := birth.AddDate(1, 0, 0)

	tests := []struct {
		name string
		req  ForecastRequest
		code errors.ErrorCode
	}{
		{"zero_birth", ForecastRequest{
			Start: start, End: start.AddDate(0, 0, 1), Granularity: Daily,
		}, errors.ErrCodeEpochInvalid},
		{"end_before_start", ForecastRequest{
			Birth: birth, Start: start, End: start.AddDate(0, 0, -1), Granularity: Daily,
		}, errors.ErrCodeForecastRangeInvalid},
		{"end_equals_start", ForecastRequest{
			Birth: birth, Start: start, End: start, Granularity: Daily,
		}, errors.ErrCodeForecastRangeInvalid},
		{"unknown_granularity", ForecastRequest{
			Birth: birth, Start: start, End: start.AddDate(0, 0, 1), Granularity: "hourly",
		}, errors.ErrCodeGranularityUnknown},
		{"range_exceeds_step_cap", ForecastRequest{
			Birth: birth, Start: start, End: start.AddDate(4, 0, 0), Granularity: Daily,
		}, errors.ErrCodeForecastRangeInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Run(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.code),
				"want %s, got %s", tt.code, errors.GetCode(err))
		})
	}
}

func TestRun_CancelledContext(t *testing.T) {
	p := newTestPipeline(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := birth.AddDate(1, 0, 0)
	_, err := p.Run(ctx, ForecastRequest{
		Birth:       birth,
		Start:       start,
		End:         start.AddDate(0, 0, 2),
		Granularity: Daily,
	})
	assert.Error(t, err)
}

func TestRun_MissingDrivingBody(t *testing.T) {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	// No Moon in the chart, so the period balance cannot be seeded.
	eph, err := ephemeris.NewMeanMotionFromRates(birth, map[string]float64{
		"Sun": 10, "Mars": 100, "Venus": 200,
	})
	require.NoError(t, err)
	p, err := NewPipeline(cfg, eph, logging.NewNopLogger(), nil)
	require.NoError(t, err)

	start := birth.AddDate(1, 0, 0)
	_, err = p.Run(context.Background(), ForecastRequest{
		Birth:       birth,
		Start:       start,
		End:         start.AddDate(0, 0, 1),
		Granularity: Daily,
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeBodyInvalid))
}

type failingEphemeris struct{}

func (failingEphemeris) PositionsAt(_ context.Context, _ time.Time) ([]aspect.Body, error) {
	return nil, fmt.Errorf("upstream unavailable")
}

func TestRun_EphemerisFailure(t *testing.T) {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	p, err := NewPipeline(cfg, failingEphemeris{}, logging.NewNopLogger(), nil)
	require.NoError(t, err)

	start := birth.AddDate(1, 0, 0)
	_, err = p.Run(context.Background(), ForecastRequest{
		Birth:       birth,
		Start:       start,
		End:         start.AddDate(0, 0, 1),
		Granularity: Daily,
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeEphemerisFailed))
}

func TestNewPipeline_Validation(t *testing.T) {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	_, err := NewPipeline(nil, failingEphemeris{}, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeConfigInvalid))

	_, err = NewPipeline(cfg, nil, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))

	cfg.Engine.Aspects = map[string]config.AspectDefConfig{"trine": {Angle: 120, MaxOrb: 99}}
	_, err = NewPipeline(cfg, failingEphemeris{}, nil, nil)
	assert.Error(t, err)
}

//Personal.AI order the ending
