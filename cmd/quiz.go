package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/worthyretail/xray/core"
	"github.com/worthyretail/xray/internal/contract"
	"github.com/worthyretail/xray/internal/store"
	"github.com/worthyretail/xray/schema"
)

// likertChoice is one selectable response in the quiz prompt.
type likertChoice struct {
	Value int
	Label string
}

// likertChoices lists responses from strongest agreement down.
func likertChoices() []likertChoice {
	choices := make([]likertChoice, 0, schema.MaxAnswer-schema.MinAnswer+1)
	for v := schema.MaxAnswer; v >= schema.MinAnswer; v-- {
		choices = append(choices, likertChoice{Value: v, Label: schema.LikertLabel(v)})
	}
	return choices
}

// promptAnswer asks a single question on the terminal.
func promptAnswer(q schema.Question, step, total int) (int, error) {
	choices := likertChoices()
	prompt := promptui.Select{
		Label: fmt.Sprintf("[%d/%d] %s  %s", step+1, total, schema.PillarName(q.Pillar), q.Text),
		Items: choices,
		Size:  len(choices),
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}",
			Active:   "▸ {{ .Value }} {{ .Label | cyan }}",
			Inactive: "  {{ .Value }} {{ .Label }}",
			Selected: "✔ {{ .Label | green }}",
		},
	}
	i, _, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	return choices[i].Value, nil
}

// quizCmd walks through the questionnaire interactively.
var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the assessment interactively, one question at a time.",
	Long: `Present each statement in order and collect a response from 1 to 5.
The report is printed once every question is answered. Press Ctrl+C to abort.

When both --user and --team are set, the result is recorded for the team dashboard.

Examples:
  # Take the assessment
  xray quiz

  # Take it and record the result
  xray quiz --user "Robin" --team NY-01`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteQuiz(rootCtx, cfg, engine, store.Manager, promptAnswer); err != nil {
			contract.LogFatal("Cannot complete quiz", err)
		}
	},
}
