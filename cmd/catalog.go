package cmd

import (
	"github.com/spf13/cobra"

	"github.com/worthyretail/xray/core"
	"github.com/worthyretail/xray/internal/contract"
)

// questionsCmd prints the questionnaire.
var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the assessment questions with their pillars.",
	Long: `Print every statement in order with the pillar it measures.
Question ids shown here are the ids accepted by --answers.

Examples:
  xray questions
  xray questions --catalog custom.yaml --output csv`,
	PreRunE: catalogSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteQuestions(cfg, engine); err != nil {
			contract.LogFatal("Cannot list questions", err)
		}
	},
}

// archetypesCmd prints the archetype catalog and classification ladder.
var archetypesCmd = &cobra.Command{
	Use:   "archetypes",
	Short: "List archetypes and the ordered classification rules.",
	Long: `Print each archetype with the rule that selects it. Rules are evaluated
top to bottom and the first match wins; the last rule always matches.

Examples:
  xray archetypes
  xray archetypes --thresholds-override solid_min:85`,
	PreRunE: catalogSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteArchetypes(cfg, engine); err != nil {
			contract.LogFatal("Cannot list archetypes", err)
		}
	},
}
