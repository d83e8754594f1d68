package cmd

import (
	"github.com/spf13/cobra"

	"github.com/worthyretail/xray/core"
	"github.com/worthyretail/xray/internal/contract"
	"github.com/worthyretail/xray/internal/store"
)

// scoreCmd scores a complete answer set non-interactively.
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a complete answer set and print the archetype report.",
	Long: `Score nine Likert answers (1 = Strongly Disagree, 5 = Strongly Agree) and
print the pillar percentages, archetype, weakest pillar and reliability flag.

Answers can be given as question id to value pairs, as positional values in
question order, or as a JSON object keyed by question id. An incomplete set is
reported as not ready and never classified.

When both --user and --team are set, the result is also recorded in the result
store for the team dashboard.

Examples:
  # Positional answers in question order
  xray score --answers 5,4,4,2,3,2,4,5,4

  # Explicit pairs
  xray score --answers "1=5,2=4,3=4,4=2,5=3,6=2,7=4,8=5,9=4"

  # Record the result for a team
  xray score --answers-file answers.json --user "Robin" --team NY-01

  # Export the report as JSON
  xray score --answers 5,5,5,1,1,1,1,1,1 --output json --output-file report.json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(rootCtx, cfg, engine, store.Manager); err != nil {
			contract.LogFatal("Cannot score answers", err)
		}
	},
}
