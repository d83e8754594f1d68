package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/worthyretail/xray/internal/contract"
	"github.com/worthyretail/xray/schema"
)

// PrintTeamDashboard outputs a team dashboard, dispatching based on the output format configured.
func PrintTeamDashboard(dashboard schema.TeamDashboard, catalog schema.Catalog, cfg *contract.Config) error {
	return dispatch(cfg,
		func(w io.Writer) error { return writeTeamText(w, dashboard, catalog, cfg) },
		func(w io.Writer) error { return writeJSON(w, dashboard) },
		func(w io.Writer) error { return writeTeamCSV(w, dashboard) },
	)
}

// writeTeamText renders the member table followed by the team average and focus pillar.
func writeTeamText(w io.Writer, d schema.TeamDashboard, catalog schema.Catalog, cfg *contract.Config) error {
	if err := writeHeading(w, heading(cfg, "👥", fmt.Sprintf("Team %s", d.TeamCode))); err != nil {
		return err
	}
	if d.Count == 0 {
		_, err := fmt.Fprintln(w, "No submissions yet.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Leader", "Archetype", "B", "F", "P", "Focus", "Submitted"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableTextWidth(cfg, 70)
	var data [][]string
	for _, m := range d.Members {
		data = append(data, []string{
			contract.TruncateText(m.UserName, nameWidth),
			catalog.Archetype(m.ArchetypeID).Name,
			strconv.Itoa(m.Scores.B),
			strconv.Itoa(m.Scores.F),
			strconv.Itoa(m.Scores.P),
			pillarDisplayName(catalog, m.LowestPillar),
			m.SubmittedAt.Format("2006-01-02 15:04"),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	avg := d.Average
	if _, err := fmt.Fprintf(w, "\nTeam average (%d leaders): B=%d%% %s, F=%d%% %s, P=%d%% %s, overall %.0f%%\n",
		d.Count,
		avg.B, scoreLabel(cfg, avg.B),
		avg.F, scoreLabel(cfg, avg.F),
		avg.P, scoreLabel(cfg, avg.P),
		avg.Average()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s: %s\n%s\n",
		heading(cfg, "🎯", "Team focus pillar"),
		pillarDisplayName(catalog, d.LowestPillar),
		catalog.Pillars[d.LowestPillar].Remedy); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "\nArchetype mix:"); err != nil {
		return err
	}
	for _, id := range schema.AllArchetypes {
		if n := d.ArchetypeCounts[id]; n > 0 {
			if _, err := fmt.Fprintf(w, "  %s: %d\n", catalog.Archetype(id).Name, n); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeTeamCSV writes one row per member.
func writeTeamCSV(w io.Writer, d schema.TeamDashboard) error {
	header := []string{
		"team_code",
		"id",
		"user_name",
		"archetype_id",
		"score_b",
		"score_f",
		"score_p",
		"lowest_pillar",
		"confidence",
		"submitted_at",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, m := range d.Members {
			if err := cw.Write([]string{
				d.TeamCode,
				m.ID,
				m.UserName,
				string(m.ArchetypeID),
				strconv.Itoa(m.Scores.B),
				strconv.Itoa(m.Scores.F),
				strconv.Itoa(m.Scores.P),
				string(m.LowestPillar),
				strconv.Itoa(m.Confidence),
				m.SubmittedAt.Format(contract.DateTimeFormat),
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

// PrintTeamSummaries outputs the admin team listing, dispatching based on the output format configured.
func PrintTeamSummaries(summaries []schema.TeamSummary, cfg *contract.Config) error {
	return dispatch(cfg,
		func(w io.Writer) error { return writeTeamsText(w, summaries, cfg) },
		func(w io.Writer) error { return writeJSON(w, summaries) },
		func(w io.Writer) error { return writeTeamsCSV(w, summaries) },
	)
}

func writeTeamsText(w io.Writer, summaries []schema.TeamSummary, cfg *contract.Config) error {
	if err := writeHeading(w, heading(cfg, "🗂️", "Teams")); err != nil {
		return err
	}
	if len(summaries) == 0 {
		_, err := fmt.Fprintln(w, "No submissions yet.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Team", "Leaders", "Last Submission"})

	var data [][]string
	total := 0
	for _, s := range summaries {
		total += s.Count
		data = append(data, []string{
			s.TeamCode,
			strconv.Itoa(s.Count),
			s.LastSubmission.Format("2006-01-02 15:04"),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d teams (%d submissions)\n", len(summaries), total)
	return err
}

func writeTeamsCSV(w io.Writer, summaries []schema.TeamSummary) error {
	return writeCSVWithHeader(w, []string{"team_code", "count", "last_submission"}, func(cw *csv.Writer) error {
		for _, s := range summaries {
			if err := cw.Write([]string{
				s.TeamCode,
				strconv.Itoa(s.Count),
				s.LastSubmission.Format(contract.DateTimeFormat),
			}); err != nil {
				return err
			}
		}
		return nil
	})
}
