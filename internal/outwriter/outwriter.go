// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/worthyretail/xray/internal/contract"
	"github.com/worthyretail/xray/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints an individual assessment using the configured output format.
func (ow *OutWriter) WriteReport(report schema.Report, catalog schema.Catalog, cfg *contract.Config) error {
	return PrintReport(report, catalog, cfg)
}

// WriteTeam prints a team dashboard using the configured output format.
func (ow *OutWriter) WriteTeam(dashboard schema.TeamDashboard, catalog schema.Catalog, cfg *contract.Config) error {
	return PrintTeamDashboard(dashboard, catalog, cfg)
}

// WriteTeams prints the admin team listing using the configured output format.
func (ow *OutWriter) WriteTeams(summaries []schema.TeamSummary, cfg *contract.Config) error {
	return PrintTeamSummaries(summaries, cfg)
}

// WriteQuestions prints the questionnaire using the configured output format.
func (ow *OutWriter) WriteQuestions(questions []schema.Question, cfg *contract.Config) error {
	return PrintQuestions(questions, cfg)
}

// WriteRules prints the archetype ladder using the configured output format.
func (ow *OutWriter) WriteRules(rules []schema.RuleView, cfg *contract.Config) error {
	return PrintRules(rules, cfg)
}

// WriteNotice prints a one-line notice to w, which is stderr for CLI runs so
// structured output on stdout stays parseable.
func (ow *OutWriter) WriteNotice(w io.Writer, msg string, cfg *contract.Config) error {
	_, err := fmt.Fprintf(w, "%s: %s\n", heading(cfg, "⚠️", "Notice"), msg)
	return err
}

// getMaxTableTextWidth calculates the maximum width for a free-text column
// based on terminal width and the space taken by the fixed columns.
func getMaxTableTextWidth(cfg *contract.Config, fixedWidth int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve generous space for table borders, separators, and padding
	available := termWidth - fixedWidth - 20
	if available < 20 {
		return 20
	}
	if available > 90 {
		return 90
	}
	return available
}
