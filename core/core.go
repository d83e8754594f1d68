// Package core has core logic for scoring, classification and team aggregation.
package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/worthyretail/xray/internal/contract"
	"github.com/worthyretail/xray/internal/outwriter"
	"github.com/worthyretail/xray/schema"
)

// Sentinel errors surfaced to collaborators.
var (
	// ErrNotReady means the answer set does not yet cover every question.
	ErrNotReady = errors.New("answer set is not complete")

	// ErrInvalidAnswer means a response is outside the Likert scale.
	ErrInvalidAnswer = errors.New("answer must be between 1 and 5")

	// ErrUnknownQuestion means a response references a question not in the catalog.
	ErrUnknownQuestion = errors.New("unknown question")
)

// noticeOut receives CLI notices that must not mix with report output.
var noticeOut io.Writer = os.Stderr

// ValidateAnswer rejects values outside [schema.MinAnswer, schema.MaxAnswer].
func ValidateAnswer(v int) error {
	if v < schema.MinAnswer || v > schema.MaxAnswer {
		return fmt.Errorf("%w (received %d)", ErrInvalidAnswer, v)
	}
	return nil
}

// ValidateAnswers checks every entry of a possibly partial answer set against the catalog.
// It is meant for input collection; Engine.Score never tolerates what this rejects.
func (e *Engine) ValidateAnswers(answers schema.Answers) error {
	for id, v := range answers {
		if _, ok := e.catalog.Question(id); !ok {
			return fmt.Errorf("%w: id %d", ErrUnknownQuestion, id)
		}
		if err := ValidateAnswer(v); err != nil {
			return fmt.Errorf("question %d: %w", id, err)
		}
	}
	return nil
}

// RuleViews returns the ladder in a form suitable for display.
func (e *Engine) RuleViews() []schema.RuleView {
	views := make([]schema.RuleView, len(e.rules))
	for i, r := range e.rules {
		views[i] = schema.RuleView{
			Order:     i + 1,
			Archetype: e.catalog.Archetype(r.Archetype),
			Condition: r.Condition,
		}
	}
	return views
}

// ExecuteScore scores the configured answers, prints the report and, when a user
// and team are configured, records the submission.
func ExecuteScore(ctx context.Context, cfg *contract.Config, engine *Engine, mgr contract.StoreManager) error {
	answers, err := contract.LoadAnswers(cfg, engine.Questions())
	if err != nil {
		return err
	}
	if err := engine.ValidateAnswers(answers); err != nil {
		return err
	}
	return finishAssessment(ctx, cfg, engine, mgr, answers)
}

// finishAssessment is shared by the score and quiz commands once an answer set is collected.
func finishAssessment(ctx context.Context, cfg *contract.Config, engine *Engine, mgr contract.StoreManager, answers schema.Answers) error {
	result, ok := engine.Score(answers)
	if !ok {
		answered := len(answers)
		return fmt.Errorf("%w: %d of %d questions answered", ErrNotReady, answered, len(engine.Questions()))
	}

	report := engine.Report(result)
	if err := outwriter.NewOutWriter().WriteReport(report, engine.Catalog(), cfg); err != nil {
		return err
	}

	if cfg.UserName == "" || cfg.TeamCode == "" {
		return nil
	}
	sub, err := Submit(ctx, mgr.GetSubmissionStore(), engine, SubmitRequest{
		UserName: cfg.UserName,
		TeamCode: cfg.TeamCode,
		Answers:  answers,
	}, time.Now())
	if err != nil {
		// Persistence never changes the classification already printed.
		contract.LogWarn("Failed to record submission", err)
		msg := fmt.Sprintf("result for %s in team %s was not saved: %v", cfg.UserName, schema.NormalizeTeamCode(cfg.TeamCode), err)
		_ = outwriter.NewOutWriter().WriteNotice(noticeOut, msg, cfg)
		return nil
	}
	contract.Logger().Infow("Recorded submission", "id", sub.ID, "team", sub.TeamCode, "archetype", sub.ArchetypeID)
	return nil
}

// ExecuteTeam prints the dashboard for one team code.
func ExecuteTeam(ctx context.Context, cfg *contract.Config, engine *Engine, mgr contract.StoreManager, teamCode string) error {
	dashboard, err := TeamDashboard(ctx, mgr.GetSubmissionStore(), teamCode)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteTeam(dashboard, engine.Catalog(), cfg)
}

// ExecuteTeams prints the admin listing of every team with submissions.
func ExecuteTeams(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	subs, err := mgr.GetSubmissionStore().ListSubmissions(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to list submissions: %w", err)
	}
	return outwriter.NewOutWriter().WriteTeams(SummarizeTeams(subs), cfg)
}

// ExecuteQuestions prints the questionnaire.
func ExecuteQuestions(cfg *contract.Config, engine *Engine) error {
	return outwriter.NewOutWriter().WriteQuestions(engine.Questions(), cfg)
}

// ExecuteArchetypes prints the archetype catalog alongside the classification ladder.
func ExecuteArchetypes(cfg *contract.Config, engine *Engine) error {
	return outwriter.NewOutWriter().WriteRules(engine.RuleViews(), cfg)
}
