package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/worthyretail/xray/internal/contract"
	"github.com/worthyretail/xray/schema"
)

// PrintQuestions outputs the questionnaire, dispatching based on the output format configured.
func PrintQuestions(questions []schema.Question, cfg *contract.Config) error {
	return dispatch(cfg,
		func(w io.Writer) error { return writeQuestionsText(w, questions, cfg) },
		func(w io.Writer) error { return writeJSON(w, questions) },
		func(w io.Writer) error { return writeQuestionsCSV(w, questions) },
	)
}

func writeQuestionsText(w io.Writer, questions []schema.Question, cfg *contract.Config) error {
	if err := writeHeading(w, heading(cfg, "📝", "Questions")); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Pillar", "Statement"})

	textWidth := getMaxTableTextWidth(cfg, 20)
	var data [][]string
	for _, q := range questions {
		data = append(data, []string{
			strconv.Itoa(q.ID),
			schema.PillarName(q.Pillar),
			contract.TruncateText(q.Text, textWidth),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Answer each statement from %d (%s) to %d (%s).\n",
		schema.MinAnswer, schema.LikertLabel(schema.MinAnswer),
		schema.MaxAnswer, schema.LikertLabel(schema.MaxAnswer))
	return err
}

func writeQuestionsCSV(w io.Writer, questions []schema.Question) error {
	return writeCSVWithHeader(w, []string{"id", "pillar", "text"}, func(cw *csv.Writer) error {
		for _, q := range questions {
			if err := cw.Write([]string{strconv.Itoa(q.ID), string(q.Pillar), q.Text}); err != nil {
				return err
			}
		}
		return nil
	})
}

// PrintRules outputs the archetype ladder, dispatching based on the output format configured.
func PrintRules(rules []schema.RuleView, cfg *contract.Config) error {
	return dispatch(cfg,
		func(w io.Writer) error { return writeRulesText(w, rules, cfg) },
		func(w io.Writer) error { return writeJSON(w, rules) },
		func(w io.Writer) error { return writeRulesCSV(w, rules) },
	)
}

func writeRulesText(w io.Writer, rules []schema.RuleView, cfg *contract.Config) error {
	if err := writeHeading(w, heading(cfg, "🧭", "Archetypes")); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Order", "Archetype", "Status", "When"})

	var data [][]string
	for _, r := range rules {
		data = append(data, []string{
			strconv.Itoa(r.Order),
			r.Archetype.Name,
			r.Archetype.Status,
			r.Condition,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "The first matching rule wins."); err != nil {
		return err
	}
	for _, r := range rules {
		if _, err := fmt.Fprintf(w, "\n%s: %s\n  %s\n  Prescription: %s\n",
			r.Archetype.Name, r.Archetype.Tagline, r.Archetype.Description, r.Archetype.Prescription); err != nil {
			return err
		}
	}
	return nil
}

func writeRulesCSV(w io.Writer, rules []schema.RuleView) error {
	header := []string{"order", "archetype_id", "name", "status", "condition"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range rules {
			if err := cw.Write([]string{
				strconv.Itoa(r.Order),
				string(r.Archetype.ID),
				r.Archetype.Name,
				r.Archetype.Status,
				r.Condition,
			}); err != nil {
				return err
			}
		}
		return nil
	})
}
