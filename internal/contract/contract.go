// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/worthyretail/xray/schema"
)

// StoreManager defines the interface for managing the result store.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetSubmissionStore() SubmissionStore
}

// SubmissionStore defines the interface for persisting scored assessments.
type SubmissionStore interface {
	// RecordSubmission stores one scored assessment
	RecordSubmission(ctx context.Context, sub schema.Submission) error

	// ListSubmissions returns submissions for a team code, or every submission when teamCode is empty
	ListSubmissions(ctx context.Context, teamCode string) ([]schema.Submission, error)

	// GetStatus returns status information about the store
	GetStatus() (schema.StoreStatus, error)

	// Close closes the underlying connection
	Close() error
}
