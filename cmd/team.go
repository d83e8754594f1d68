package cmd

import (
	"github.com/spf13/cobra"

	"github.com/worthyretail/xray/core"
	"github.com/worthyretail/xray/internal/contract"
	"github.com/worthyretail/xray/internal/store"
)

// teamCmd prints one team's dashboard.
var teamCmd = &cobra.Command{
	Use:   "team <code>",
	Short: "Show pillar averages and archetype mix for a team.",
	Long: `Aggregate every recorded submission under a team code. Codes are
case-insensitive, so "ny-01" and "NY-01" are the same team.

Examples:
  xray team NY-01
  xray team ny-01 --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteTeam(rootCtx, cfg, engine, store.Manager, args[0]); err != nil {
			contract.LogFatal("Cannot show team dashboard", err)
		}
	},
}

// teamsCmd lists every team with submissions.
var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List every team with recorded submissions.",
	Long: `Print each team code with its submission count and latest submission time.

Examples:
  xray teams
  xray teams --output csv --output-file teams.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTeams(rootCtx, cfg, store.Manager); err != nil {
			contract.LogFatal("Cannot list teams", err)
		}
	},
}
