package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyotisha-io/grahakala/pkg/errors"
)

func TestToDMS(t *testing.T) {
	tests := []struct {
		name    string
		angle   float64
		degrees int
		minutes int
		seconds float64
	}{
		{"zero", 0, 0, 0, 0},
		{"whole_degrees", 120, 120, 0, 0},
		{"half_degree", 13.5, 13, 30, 0},
		{"nakshatra_span", 13.0 + 20.0/60.0, 13, 20, 0},
		{"with_seconds", 45.2525, 45, 15, 9},
		{"negative_normalizes", -30, 330, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ToDMS(tt.angle)
			assert.Equal(t, tt.degrees, d.Degrees)
			assert.Equal(t, tt.minutes, d.Minutes)
			assert.InDelta(t, tt.seconds, d.Seconds, 1e-6)
			assert.NoError(t, d.Validate())
		})
	}
}

func TestDMS_RoundTrip(t *testing.T) {
	for _, angle := range []float64{0, 0.0001, 13.333333, 45.2525, 119.999, 211.77, 359.9999} {
		d := ToDMS(angle)
		back, err := FromDMS(d.Degrees, d.Minutes, d.Seconds)
		require.NoError(t, err, "angle %g", angle)
		assert.InDelta(t, angle, back, 1e-4, "angle %g", angle)
	}
}

func TestFromDMS_OutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		degrees int
		minutes int
		seconds float64
	}{
		{"minutes_60", 10, 60, 0},
		{"minutes_negative", 10, -1, 0},
		{"seconds_60", 10, 0, 60},
		{"seconds_negative", 10, 0, -0.5},
		{"degrees_negative", -1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromDMS(tt.degrees, tt.minutes, tt.seconds)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeDMSOutOfRange))
		})
	}
}

func TestFromDMS_NotNormalized(t *testing.T) {
	v, err := FromDMS(400, 30, 0)
	require.NoError(t, err)
	assert.InDelta(t, 400.5, v, 1e-9)
}

func TestDMS_String(t *testing.T) {
	d := DMS{Degrees: 45, Minutes: 15, Seconds: 9}
	assert.Equal(t, `45°15'9.00"`, d.String())
}

//Personal.AI order the ending
