package schema

import "time"

// StoreStatus represents the status of the result store.
type StoreStatus struct {
	Backend          string    `json:"backend"`
	Connected        bool      `json:"connected"`
	TotalSubmissions int       `json:"total_submissions"`
	TotalTeams       int       `json:"total_teams"`
	LastSubmission   time.Time `json:"last_submission"`
	OldestSubmission time.Time `json:"oldest_submission"`
}
