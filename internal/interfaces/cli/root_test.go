package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyotisha-io/grahakala/pkg/errors"
)

// execute runs the root command with args and returns captured output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestParseBodies(t *testing.T) {
	bodies, err := parseBodies("Sun=35.2@0.98, Moon=128.7@13.2,Mars=301.5")
	require.NoError(t, err)
	require.Len(t, bodies, 3)

	assert.Equal(t, "Sun", bodies[0].Name)
	assert.InDelta(t, 35.2, bodies[0].Longitude, 1e-9)
	require.NotNil(t, bodies[0].Speed)
	assert.InDelta(t, 0.98, *bodies[0].Speed, 1e-9)

	// Speed is optional.
	assert.Nil(t, bodies[2].Speed)
}

func TestParseBodies_Invalid(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{"empty", ""},
		{"missing_equals", "Sun 35.2"},
		{"bad_longitude", "Sun=abc"},
		{"bad_speed", "Sun=35.2@fast"},
		{"longitude_out_of_range", "Sun=400"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseBodies(tt.spec)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidInput(err))
		})
	}
}

func TestParseTime(t *testing.T) {
	ts, err := parseTime("1990-05-20T04:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 1990, ts.Year())

	ts, err = parseTime("2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, 8, int(ts.Month()))

	_, err = parseTime("yesterday")
	assert.Error(t, err)
}

func TestFormatTable(t *testing.T) {
	out := FormatTable(
		[]string{"LORD", "YEARS"},
		[][]string{{"Ketu", "7"}, {"Venus", "20"}},
	)
	assert.Contains(t, out, "LORD   YEARS")
	assert.Contains(t, out, "-----  -----")
	assert.Contains(t, out, "Venus  20")

	assert.Equal(t, "", FormatTable(nil, nil))
}

func TestAspectsCmd_JSON(t *testing.T) {
	out, err := execute(t, "aspects",
		"--bodies", "Sun=0@1.0,Moon=60@13.2",
		"-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "sextile")
	assert.Contains(t, out, "\"strength\"")
}

func TestAspectsCmd_Table(t *testing.T) {
	out, err := execute(t, "aspects",
		"--bodies", "Sun=0,Moon=60",
		"-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "BODY A")
	assert.Contains(t, out, "sextile")
}

func TestAspectsCmd_MissingBodies(t *testing.T) {
	_, err := execute(t, "aspects")
	assert.Error(t, err)
}

func TestPatternsCmd(t *testing.T) {
	out, err := execute(t, "patterns",
		"--bodies", "Sun=0,Moon=120,Jupiter=240",
		"-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "grand_trine")
}

func TestDashaCmd_Sequence(t *testing.T) {
	out, err := execute(t, "dasha",
		"--birth", "1990-05-20",
		"--moon-longitude", "125.3",
		"--sequence",
		"-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Ketu")
	assert.Contains(t, out, "Mercury")
}

func TestDashaCmd_Chain(t *testing.T) {
	out, err := execute(t, "dasha",
		"--birth", "1990-05-20",
		"--moon-longitude", "125.3",
		"--date", "2026-08-30",
		"-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "\"level\": 1")
}

func TestDashaCmd_InvalidBirth(t *testing.T) {
	_, err := execute(t, "dasha",
		"--birth", "someday",
		"--moon-longitude", "125.3")
	assert.Error(t, err)
}

func TestChartCmd(t *testing.T) {
	chartPath := filepath.Join(t.TempDir(), "natal.yaml")
	chart := `
reference: 1990-05-20T04:30:00Z
bodies:
  - name: Sun
    longitude: 35.2
  - name: Moon
    longitude: 128.7
  - name: Mercury
    longitude: 18.4
`
	require.NoError(t, os.WriteFile(chartPath, []byte(chart), 0o600))

	out, err := execute(t, "chart",
		"--chart", chartPath,
		"--birth", "1990-05-20",
		"--start", "2026-01-01",
		"--end", "2026-01-04",
		"--granularity", "daily",
		"-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "\"steps\"")
	assert.Contains(t, out, "2026-01-03")
}

func TestChartCmd_BadGranularity(t *testing.T) {
	chartPath := filepath.Join(t.TempDir(), "natal.yaml")
	require.NoError(t, os.WriteFile(chartPath,
		[]byte("reference: 1990-05-20T04:30:00Z\nbodies:\n  - name: Moon\n    longitude: 10\n"), 0o600))

	_, err := execute(t, "chart",
		"--chart", chartPath,
		"--birth", "1990-05-20",
		"--start", "2026-01-01",
		"--end", "2026-01-02",
		"--granularity", "hourly")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeGranularityUnknown))
}

func TestGetCLIContext_Missing(t *testing.T) {
	root := NewRootCommand()
	_, err := GetCLIContext(root)
	assert.Error(t, err)
}

//Personal.AI order the ending
