package schema

import "time"

// Submission is a persisted, scored assessment for one user within a team.
type Submission struct {
	ID           string       `json:"id"`
	UserName     string       `json:"user_name"`
	TeamCode     string       `json:"team_code"`
	ArchetypeID  ArchetypeID  `json:"archetype_id"`
	Scores       PillarScores `json:"scores"`
	LowestPillar Pillar       `json:"lowest_pillar"`
	Confidence   int          `json:"confidence"`
	SubmittedAt  time.Time    `json:"submitted_at"`
}

// TeamDashboard aggregates every submission recorded under one team code.
type TeamDashboard struct {
	TeamCode        string              `json:"team_code"`
	Count           int                 `json:"count"`
	Average         PillarScores        `json:"average"`
	LowestPillar    Pillar              `json:"lowest_pillar,omitempty"`
	ArchetypeCounts map[ArchetypeID]int `json:"archetype_counts"`
	Members         []Submission        `json:"members"`
}

// TeamSummary is one row of the admin team listing.
type TeamSummary struct {
	TeamCode       string    `json:"team_code"`
	Count          int       `json:"count"`
	LastSubmission time.Time `json:"last_submission"`
}
