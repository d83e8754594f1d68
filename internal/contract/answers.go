package contract

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/worthyretail/xray/schema"
)

// ParseAnswers reads an answer set in one of three forms:
//
//	"1=5,2=4,3=3"       explicit question id to value pairs
//	"5,4,3,5,4,3,5,4,3" positional values in catalog order
//	{"1":5,"2":4}       a JSON object keyed by question id
//
// Every id must exist in questions and every value must be on the Likert scale.
// Partial sets are allowed; completeness is decided by the scorer.
func ParseAnswers(input string, questions []schema.Question) (schema.Answers, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return schema.Answers{}, nil
	}

	var (
		answers schema.Answers
		err     error
	)
	switch {
	case strings.HasPrefix(input, "{"):
		answers, err = parseJSONAnswers([]byte(input))
	case strings.Contains(input, "="):
		answers, err = parsePairAnswers(input)
	default:
		answers, err = parsePositionalAnswers(input, questions)
	}
	if err != nil {
		return nil, err
	}

	known := make(map[int]struct{}, len(questions))
	for _, q := range questions {
		known[q.ID] = struct{}{}
	}
	for id, v := range answers {
		if _, ok := known[id]; !ok {
			return nil, fmt.Errorf("unknown question id %d", id)
		}
		if v < schema.MinAnswer || v > schema.MaxAnswer {
			return nil, fmt.Errorf("answer for question %d must be between %d and %d (received %d)",
				id, schema.MinAnswer, schema.MaxAnswer, v)
		}
	}
	return answers, nil
}

// LoadAnswers resolves the answer set from --answers or --answers-file.
func LoadAnswers(cfg *Config, questions []schema.Question) (schema.Answers, error) {
	if cfg.AnswersFile != "" {
		data, err := os.ReadFile(cfg.AnswersFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read answers file: %w", err)
		}
		return ParseAnswers(string(data), questions)
	}
	if cfg.Answers == "" {
		return nil, fmt.Errorf("no answers provided, use --answers or --answers-file")
	}
	return ParseAnswers(cfg.Answers, questions)
}

func parseJSONAnswers(data []byte) (schema.Answers, error) {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON answers: %w", err)
	}
	answers := make(schema.Answers, len(raw))
	for k, v := range raw {
		id, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return nil, fmt.Errorf("invalid question id '%s': %w", k, err)
		}
		answers[id] = v
	}
	return answers, nil
}

func parsePairAnswers(input string) (schema.Answers, error) {
	answers := make(schema.Answers)
	for part := range strings.SplitSeq(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idStr, valueStr, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid answer format '%s', expected 'id=value'", part)
		}
		id, err := strconv.Atoi(strings.TrimSpace(idStr))
		if err != nil {
			return nil, fmt.Errorf("invalid question id '%s': %w", idStr, err)
		}
		value, err := strconv.Atoi(strings.TrimSpace(valueStr))
		if err != nil {
			return nil, fmt.Errorf("invalid answer value '%s' for question %d: %w", valueStr, id, err)
		}
		if _, dup := answers[id]; dup {
			return nil, fmt.Errorf("question %d answered more than once", id)
		}
		answers[id] = value
	}
	return answers, nil
}

func parsePositionalAnswers(input string, questions []schema.Question) (schema.Answers, error) {
	parts := strings.Split(input, ",")
	if len(parts) > len(questions) {
		return nil, fmt.Errorf("received %d answers for %d questions", len(parts), len(questions))
	}
	answers := make(schema.Answers, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		value, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid answer value '%s' at position %d: %w", part, i+1, err)
		}
		answers[questions[i].ID] = value
	}
	return answers, nil
}
