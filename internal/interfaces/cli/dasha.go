package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jyotisha-io/grahakala/internal/domain/dasha"
	"github.com/jyotisha-io/grahakala/internal/infrastructure/monitoring/logging"
)

// PeriodList renders a period sequence as a table.
type PeriodList []dasha.Period

func (l PeriodList) TableHeaders() []string {
	return []string{"LORD", "START", "END", "YEARS"}
}

func (l PeriodList) TableRows() [][]string {
	rows := make([][]string, len(l))
	for i, p := range l {
		rows[i] = []string{
			p.Lord,
			p.Start.Format("2006-01-02"),
			p.End.Format("2006-01-02"),
			fmt.Sprintf("%.3f", p.Years),
		}
	}
	return rows
}

func (l PeriodList) String() string {
	out := ""
	for _, p := range l {
		out += p.String() + "\n"
	}
	if out == "" {
		return "empty sequence"
	}
	return out[:len(out)-1]
}

// ChainResult renders a nested period chain as a table.
type ChainResult []dasha.ChainEntry

func (r ChainResult) TableHeaders() []string {
	return []string{"LEVEL", "LORD", "START", "END", "PROGRESS"}
}

func (r ChainResult) TableRows() [][]string {
	rows := make([][]string, len(r))
	for i, e := range r {
		rows[i] = []string{
			fmt.Sprintf("%d", e.Level),
			e.Period.Lord,
			e.Period.Start.Format("2006-01-02"),
			e.Period.End.Format("2006-01-02"),
			fmt.Sprintf("%.1f%%", e.Progress*100),
		}
	}
	return rows
}

func (r ChainResult) String() string {
	out := ""
	for _, e := range r {
		out += fmt.Sprintf("L%d %s (%.1f%% elapsed)\n", e.Level, e.Period.Lord, e.Progress*100)
	}
	if out == "" {
		return "date outside the period horizon"
	}
	return out[:len(out)-1]
}

// NewDashaCmd creates the dasha command.
func NewDashaCmd() *cobra.Command {
	var (
		birthStr     string
		dateStr      string
		moonLon      float64
		depth        int
		showSequence bool
	)

	cmd := &cobra.Command{
		Use:   "dasha",
		Short: "Compute ruling period sequences and nested chains",
		Long: "Anchor the period cycle at a birth epoch, seed the opening balance\n" +
			"from the driving body's longitude, and resolve the chain of nested\n" +
			"periods active at a query date.",
		Example: `  grahakala dasha --birth 1990-05-20T04:30:00Z --moon-longitude 125.3 --date 2026-08-30
  grahakala dasha --birth 1990-05-20 --moon-longitude 125.3 --sequence`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			birth, err := parseTime(birthStr)
			if err != nil {
				return err
			}
			date := time.Now().UTC()
			if dateStr != "" {
				if date, err = parseTime(dateStr); err != nil {
					return err
				}
			}

			scheme, calcCfg, err := cliCtx.Config.Engine.Dasha.Domain()
			if err != nil {
				return err
			}
			calc, err := dasha.NewCalculator(scheme, calcCfg)
			if err != nil {
				return err
			}

			balance := scheme.BalanceFromLongitude(moonLon)
			cliCtx.Logger.Debug("period balance seeded",
				logging.String("lord", balance.Lord),
				logging.Float64("remaining", balance.RemainingFraction))

			if showSequence {
				seq, err := scheme.GenerateSequence(birth, balance)
				if err != nil {
					return err
				}
				return PrintResult(cmd, PeriodList(seq))
			}

			chain, ok, err := calc.ActiveChain(birth, balance, date, depth)
			if err != nil {
				return err
			}
			if !ok {
				return PrintResult(cmd, ChainResult(nil))
			}
			return PrintResult(cmd, ChainResult(chain))
		},
	}

	cmd.Flags().StringVar(&birthStr, "birth", "", "birth epoch (RFC 3339 or YYYY-MM-DD) [REQUIRED]")
	cmd.Flags().Float64Var(&moonLon, "moon-longitude", 0, "driving body longitude at birth, degrees [REQUIRED]")
	cmd.Flags().StringVar(&dateStr, "date", "", "query date (default: now)")
	cmd.Flags().IntVar(&depth, "depth", 3, "nesting depth of the reported chain")
	cmd.Flags().BoolVar(&showSequence, "sequence", false, "print the full top-level sequence instead of the chain")
	_ = cmd.MarkFlagRequired("birth")
	_ = cmd.MarkFlagRequired("moon-longitude")

	return cmd
}

//Personal.AI order the ending
