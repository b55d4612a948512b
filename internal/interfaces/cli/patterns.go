package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jyotisha-io/grahakala/internal/domain/aspect"
	"github.com/jyotisha-io/grahakala/internal/domain/pattern"
	"github.com/jyotisha-io/grahakala/internal/infrastructure/monitoring/logging"
)

// PatternList renders recognized patterns as a table.
type PatternList []pattern.Pattern

func (l PatternList) TableHeaders() []string {
	return []string{"PATTERN", "BODIES", "STRENGTH", "DESCRIPTOR", "APEX"}
}

func (l PatternList) TableRows() [][]string {
	rows := make([][]string, len(l))
	for i, p := range l {
		rows[i] = []string{
			string(p.Kind),
			strings.Join(p.Bodies, " "),
			fmt.Sprintf("%.3f", p.Strength),
			p.Descriptor,
			p.Apex,
		}
	}
	return rows
}

func (l PatternList) String() string {
	if len(l) == 0 {
		return "no patterns recognized"
	}
	parts := make([]string, len(l))
	for i, p := range l {
		parts[i] = fmt.Sprintf("%s: %s (strength %.3f, %s)",
			p.Kind, strings.Join(p.Bodies, " "), p.Strength, p.Descriptor)
	}
	return strings.Join(parts, "\n")
}

// NewPatternsCmd creates the patterns command.
func NewPatternsCmd() *cobra.Command {
	var bodiesSpec string

	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Recognize multi-body patterns in a chart",
		Long: "Recognize grand trines, T-squares, and stelliums across three or more\n" +
			"bodies, using the detected aspects between them.",
		Example: `  grahakala patterns --bodies "Sun=0,Moon=120,Jupiter=240"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			bodies, err := parseBodies(bodiesSpec)
			if err != nil {
				return err
			}

			table, err := cliCtx.Config.Engine.AspectConfig()
			if err != nil {
				return err
			}
			detector, err := aspect.NewDetector(table)
			if err != nil {
				return err
			}
			patternCfg, err := cliCtx.Config.Engine.Pattern.Domain()
			if err != nil {
				return err
			}
			recognizer, err := pattern.NewRecognizer(patternCfg)
			if err != nil {
				return err
			}

			aspects, err := detector.Detect(bodies)
			if err != nil {
				return err
			}
			found, err := recognizer.Detect(bodies, aspects)
			if err != nil {
				return err
			}
			cliCtx.Logger.Debug("pattern recognition complete",
				logging.Int("bodies", len(bodies)),
				logging.Int("patterns", len(found)))

			return PrintResult(cmd, PatternList(found))
		},
	}

	cmd.Flags().StringVar(&bodiesSpec, "bodies", "", "chart bodies as NAME=LONGITUDE[@SPEED],... [REQUIRED]")
	_ = cmd.MarkFlagRequired("bodies")

	return cmd
}

//Personal.AI order the ending
