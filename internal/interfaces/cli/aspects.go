package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyotisha-io/grahakala/internal/domain/aspect"
	"github.com/jyotisha-io/grahakala/internal/infrastructure/monitoring/logging"
)

// AspectList renders detected aspects as a table.
type AspectList []aspect.Aspect

func (l AspectList) TableHeaders() []string {
	return []string{"BODY A", "ASPECT", "BODY B", "SEPARATION", "ORB", "STRENGTH", "MOTION"}
}

func (l AspectList) TableRows() [][]string {
	rows := make([][]string, len(l))
	for i, a := range l {
		motion := "separating"
		if a.Applying {
			motion = "applying"
		}
		rows[i] = []string{
			a.BodyA,
			string(a.Type),
			a.BodyB,
			fmt.Sprintf("%.2f°", a.Separation),
			fmt.Sprintf("%.2f°", a.Orb),
			fmt.Sprintf("%.3f", a.Strength),
			motion,
		}
	}
	return rows
}

func (l AspectList) String() string {
	if len(l) == 0 {
		return "no aspects detected"
	}
	out := ""
	for _, a := range l {
		out += a.String() + "\n"
	}
	return out[:len(out)-1]
}

// NewAspectsCmd creates the aspects command.
func NewAspectsCmd() *cobra.Command {
	var bodiesSpec string

	cmd := &cobra.Command{
		Use:   "aspects",
		Short: "Detect pairwise aspects in a chart",
		Long: "Detect angular aspects between every pair of bodies, scoring each by\n" +
			"closeness to exactness within its configured orb.",
		Example: `  grahakala aspects --bodies "Sun=35.2@0.98,Moon=95.2@13.2,Mars=215.4@0.5"`,
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

			found, err := detector.Detect(bodies)
			if err != nil {
				return err
			}
			cliCtx.Logger.Debug("aspect detection complete",
				logging.Int("bodies", len(bodies)),
				logging.Int("aspects", len(found)))

			return PrintResult(cmd, AspectList(found))
		},
	}

	cmd.Flags().StringVar(&bodiesSpec, "bodies", "", "chart bodies as NAME=LONGITUDE[@SPEED],... [REQUIRED]")
	_ = cmd.MarkFlagRequired("bodies")

	return cmd
}

//Personal.AI order the ending
