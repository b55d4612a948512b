package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jyotisha-io/grahakala/internal/application/horoscope"
	"github.com/jyotisha-io/grahakala/internal/infrastructure/ephemeris"
	"github.com/jyotisha-io/grahakala/pkg/errors"
)

// ForecastResult renders a forecast as a per-step summary table.  JSON
// output carries the full snapshot data.
type ForecastResult horoscope.Forecast

func (r ForecastResult) TableHeaders() []string {
	return []string{"DATE", "ASPECTS", "PATTERNS", "PERIOD CHAIN", "STRONGEST"}
}

func (r ForecastResult) TableRows() [][]string {
	rows := make([][]string, len(r.Steps))
	for i, step := range r.Steps {
		kinds := make([]string, len(step.Patterns))
		for j, p := range step.Patterns {
			kinds[j] = string(p.Kind)
		}
		lords := make([]string, len(step.Chain))
		for j, e := range step.Chain {
			lords[j] = e.Period.Lord
		}

		strongest, best := "", -1.0
		for name, score := range step.Influences {
			if score > best || (score == best && name < strongest) {
				strongest, best = name, score
			}
		}

		rows[i] = []string{
			step.Date.Format("2006-01-02"),
			fmt.Sprintf("%d", len(step.Aspects)),
			strings.Join(kinds, " "),
			strings.Join(lords, ">"),
			fmt.Sprintf("%s %.2f", strongest, best),
		}
	}
	return rows
}

func (r ForecastResult) String() string {
	return fmt.Sprintf("forecast %s: %d steps from %s to %s",
		r.ID, len(r.Steps),
		r.Request.Start.Format("2006-01-02"),
		r.Request.End.Format("2006-01-02"))
}

// chartFile is the on-disk reference chart format.
type chartFile struct {
	Reference string                `mapstructure:"reference"`
	Bodies    []ephemeris.BodyState `mapstructure:"bodies"`
}

// loadChart reads a reference chart YAML.  Bodies without an explicit
// daily rate fall back to the stock mean-motion table.
func loadChart(path string) (*ephemeris.MeanMotion, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read chart file")
	}

	var cf chartFile
	if err := v.Unmarshal(&cf); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse chart file")
	}

	reference, err := parseTime(cf.Reference)
	if err != nil {
		return nil, err
	}

	rates := ephemeris.DefaultRates()
	for i, b := range cf.Bodies {
		if b.DailyRate == 0 {
			cf.Bodies[i].DailyRate = rates[b.Name]
		}
	}
	return ephemeris.NewMeanMotion(reference, cf.Bodies)
}

// NewChartCmd creates the chart command.
func NewChartCmd() *cobra.Command {
	var (
		chartPath   string
		birthStr    string
		startStr    string
		endStr      string
		granularity string
		depth       int
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Generate a stepped forecast from a reference chart",
		Long: "Run the full analysis pipeline over a date range: positions are\n" +
			"extrapolated from the reference chart, and each step reports aspects,\n" +
			"patterns, the active period chain, and influence scores.",
		Example: `  grahakala chart --chart natal.yaml --birth 1990-05-20 \
      --start 2026-01-01 --end 2026-02-01 --granularity daily`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			eph, err := loadChart(chartPath)
			if err != nil {
				return err
			}
			birth, err := parseTime(birthStr)
			if err != nil {
				return err
			}
			start, err := parseTime(startStr)
			if err != nil {
				return err
			}
			end, err := parseTime(endStr)
			if err != nil {
				return err
			}
			gran, err := horoscope.ParseGranularity(granularity)
			if err != nil {
				return err
			}

			pipeline, err := horoscope.NewPipeline(cliCtx.Config, eph, cliCtx.Logger, nil)
			if err != nil {
				return err
			}

			forecast, err := pipeline.Run(cmd.Context(), horoscope.ForecastRequest{
				Birth:       birth,
				Start:       start,
				End:         end,
				Granularity: gran,
				ChainDepth:  depth,
			})
			if err != nil {
				return err
			}
			return PrintResult(cmd, ForecastResult(*forecast))
		},
	}

	cmd.Flags().StringVar(&chartPath, "chart", "", "reference chart YAML path [REQUIRED]")
	cmd.Flags().StringVar(&birthStr, "birth", "", "birth epoch (RFC 3339 or YYYY-MM-DD) [REQUIRED]")
	cmd.Flags().StringVar(&startStr, "start", "", "forecast range start [REQUIRED]")
	cmd.Flags().StringVar(&endStr, "end", "", "forecast range end, exclusive [REQUIRED]")
	cmd.Flags().StringVar(&granularity, "granularity", "daily", "step width (daily, weekly, monthly, yearly)")
	cmd.Flags().IntVar(&depth, "depth", horoscope.DefaultChainDepth, "period chain depth per step")
	for _, f := range []string{"chart", "birth", "start", "end"} {
		_ = cmd.MarkFlagRequired(f)
	}

	return cmd
}

//Personal.AI order the ending
