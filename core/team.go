package core

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/worthyretail/xray/internal/contract"
	"github.com/worthyretail/xray/schema"
)

// AggregateTeam averages the pillar scores of every submission under teamCode.
// An empty input yields a dashboard with Count 0 and no lowest pillar.
func AggregateTeam(teamCode string, subs []schema.Submission) schema.TeamDashboard {
	dashboard := schema.TeamDashboard{
		TeamCode:        schema.NormalizeTeamCode(teamCode),
		ArchetypeCounts: make(map[schema.ArchetypeID]int, len(schema.AllArchetypes)),
		Members:         make([]schema.Submission, 0, len(subs)),
	}
	if len(subs) == 0 {
		return dashboard
	}

	var sumB, sumF, sumP int
	for _, s := range subs {
		sumB += s.Scores.B
		sumF += s.Scores.F
		sumP += s.Scores.P
		dashboard.ArchetypeCounts[s.ArchetypeID]++
		dashboard.Members = append(dashboard.Members, s)
	}

	n := float64(len(subs))
	dashboard.Count = len(subs)
	dashboard.Average = schema.PillarScores{
		B: int(math.Round(float64(sumB) / n)),
		F: int(math.Round(float64(sumF) / n)),
		P: int(math.Round(float64(sumP) / n)),
	}
	dashboard.LowestPillar = dashboard.Average.Lowest()

	// Newest first, like the dashboard feed.
	sort.SliceStable(dashboard.Members, func(i, j int) bool {
		return dashboard.Members[i].SubmittedAt.After(dashboard.Members[j].SubmittedAt)
	})
	return dashboard
}

// SummarizeTeams groups submissions by team code, sorted by team code.
func SummarizeTeams(subs []schema.Submission) []schema.TeamSummary {
	byTeam := make(map[string]*schema.TeamSummary)
	for _, s := range subs {
		code := schema.NormalizeTeamCode(s.TeamCode)
		summary, ok := byTeam[code]
		if !ok {
			summary = &schema.TeamSummary{TeamCode: code}
			byTeam[code] = summary
		}
		summary.Count++
		if s.SubmittedAt.After(summary.LastSubmission) {
			summary.LastSubmission = s.SubmittedAt
		}
	}

	summaries := make([]schema.TeamSummary, 0, len(byTeam))
	for _, s := range byTeam {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].TeamCode < summaries[j].TeamCode
	})
	return summaries
}

// TeamDashboard loads the submissions for teamCode from store and aggregates them.
func TeamDashboard(ctx context.Context, store contract.SubmissionStore, teamCode string) (schema.TeamDashboard, error) {
	code := schema.NormalizeTeamCode(teamCode)
	if code == "" {
		return schema.TeamDashboard{}, fmt.Errorf("team code is required")
	}
	subs, err := store.ListSubmissions(ctx, code)
	if err != nil {
		return schema.TeamDashboard{}, fmt.Errorf("failed to list submissions for team %s: %w", code, err)
	}
	return AggregateTeam(code, subs), nil
}
