package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/worthyretail/xray/internal/contract"
	"github.com/worthyretail/xray/schema"
)

// ErrMissingIdentity means a submission lacks a user name or team code.
var ErrMissingIdentity = errors.New("user name and team code are required")

// SubmitRequest is the input for recording one completed assessment.
type SubmitRequest struct {
	UserName string         `json:"user_name"`
	TeamCode string         `json:"team_code"`
	Answers  schema.Answers `json:"answers"`
}

// Submit scores req and persists the outcome. The answer set must be complete;
// ErrNotReady is returned otherwise. A store error is returned as-is and never
// alters the scored result carried by the returned submission.
func Submit(ctx context.Context, store contract.SubmissionStore, engine *Engine, req SubmitRequest, now time.Time) (schema.Submission, error) {
	userName := strings.TrimSpace(req.UserName)
	teamCode := schema.NormalizeTeamCode(req.TeamCode)
	if userName == "" || teamCode == "" {
		return schema.Submission{}, ErrMissingIdentity
	}
	if err := engine.ValidateAnswers(req.Answers); err != nil {
		return schema.Submission{}, err
	}

	result, ok := engine.Score(req.Answers)
	if !ok {
		return schema.Submission{}, fmt.Errorf("%w: %d of %d questions answered",
			ErrNotReady, len(req.Answers), len(engine.Questions()))
	}

	sub := schema.Submission{
		ID:           uuid.NewString(),
		UserName:     userName,
		TeamCode:     teamCode,
		ArchetypeID:  result.ArchetypeID,
		Scores:       result.Scores,
		LowestPillar: result.LowestPillar,
		Confidence:   result.Confidence.Percent,
		SubmittedAt:  now.UTC(),
	}
	if err := store.RecordSubmission(ctx, sub); err != nil {
		return sub, fmt.Errorf("failed to record submission: %w", err)
	}
	return sub, nil
}
