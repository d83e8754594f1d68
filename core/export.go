package core

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/worthyretail/xray/internal/contract"
	"github.com/worthyretail/xray/internal/parquet"
	"github.com/worthyretail/xray/schema"
)

// ExecuteExport writes every stored submission and per-team averages to Parquet files
// named outputFile + ".submissions.parquet" and outputFile + ".teams.parquet".
func ExecuteExport(ctx context.Context, mgr contract.StoreManager, outputFile string, w io.Writer) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := mgr.GetSubmissionStore()
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}
	if status.TotalSubmissions == 0 {
		return errors.New("no submissions found to export")
	}

	_, _ = fmt.Fprintf(w, "Exporting data from %s backend...\n", status.Backend)

	subs, err := store.ListSubmissions(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to retrieve submissions: %w", err)
	}

	submissionsFile := outputFile + ".submissions.parquet"
	if err := parquet.WriteSubmissionsParquet(parquet.ConvertSubmissions(subs), submissionsFile); err != nil {
		return fmt.Errorf("failed to write submissions: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d submissions to: %s\n", len(subs), submissionsFile)

	teamsFile := outputFile + ".teams.parquet"
	dashboards := groupDashboards(subs)
	if err := parquet.WriteTeamAveragesParquet(parquet.ConvertTeamDashboards(dashboards), teamsFile); err != nil {
		return fmt.Errorf("failed to write team averages: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d teams to: %s\n", len(dashboards), teamsFile)

	return nil
}

// groupDashboards aggregates submissions per team, ordered by team code.
func groupDashboards(subs []schema.Submission) []schema.TeamDashboard {
	byTeam := make(map[string][]schema.Submission)
	for _, s := range subs {
		code := schema.NormalizeTeamCode(s.TeamCode)
		byTeam[code] = append(byTeam[code], s)
	}

	summaries := SummarizeTeams(subs)
	dashboards := make([]schema.TeamDashboard, 0, len(summaries))
	for _, summary := range summaries {
		dashboards = append(dashboards, AggregateTeam(summary.TeamCode, byTeam[summary.TeamCode]))
	}
	return dashboards
}
