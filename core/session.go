package core

import (
	"context"
	"fmt"
	"maps"

	"github.com/worthyretail/xray/internal/contract"
	"github.com/worthyretail/xray/schema"
)

// Session collects one user's answers question by question.
// It is owned by a single user and is not safe for concurrent use.
type Session struct {
	questions []schema.Question
	answers   schema.Answers
	step      int
}

// NewSession starts an empty session over the ordered questions.
func NewSession(questions []schema.Question) *Session {
	return &Session{
		questions: questions,
		answers:   make(schema.Answers, len(questions)),
	}
}

// Current returns the question awaiting an answer. ok is false once complete.
func (s *Session) Current() (q schema.Question, ok bool) {
	if s.step >= len(s.questions) {
		return schema.Question{}, false
	}
	return s.questions[s.step], true
}

// Step returns the zero-based index of the current question.
func (s *Session) Step() int {
	return s.step
}

// Record validates and stores a response, then moves to the next unanswered question.
// Re-answering a question overwrites the earlier response.
func (s *Session) Record(questionID, value int) error {
	if err := ValidateAnswer(value); err != nil {
		return err
	}
	found := false
	for _, q := range s.questions {
		if q.ID == questionID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: id %d", ErrUnknownQuestion, questionID)
	}

	s.answers[questionID] = value
	s.step = s.nextUnanswered()
	return nil
}

// nextUnanswered returns the first unanswered index in catalog order, or len(questions).
func (s *Session) nextUnanswered() int {
	for i, q := range s.questions {
		if _, ok := s.answers[q.ID]; !ok {
			return i
		}
	}
	return len(s.questions)
}

// Progress returns how many questions are answered out of the total.
func (s *Session) Progress() (answered, total int) {
	return len(s.answers), len(s.questions)
}

// Complete reports whether every question has an answer.
func (s *Session) Complete() bool {
	return len(s.answers) == len(s.questions)
}

// Answers returns a copy of the collected answers.
func (s *Session) Answers() schema.Answers {
	return maps.Clone(s.answers)
}

// Reset clears all answers and returns to the first question.
func (s *Session) Reset() {
	s.answers = make(schema.Answers, len(s.questions))
	s.step = 0
}

// AskFunc prompts for the answer to q, shown as question step+1 of total.
type AskFunc func(q schema.Question, step, total int) (int, error)

// ExecuteQuiz walks a fresh session through ask and finishes like ExecuteScore.
func ExecuteQuiz(ctx context.Context, cfg *contract.Config, engine *Engine, mgr contract.StoreManager, ask AskFunc) error {
	session := NewSession(engine.Questions())
	for {
		q, ok := session.Current()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		_, total := session.Progress()
		v, err := ask(q, session.Step(), total)
		if err != nil {
			return fmt.Errorf("quiz aborted at question %d: %w", q.ID, err)
		}
		if err := session.Record(q.ID, v); err != nil {
			return err
		}
	}
	return finishAssessment(ctx, cfg, engine, mgr, session.Answers())
}
