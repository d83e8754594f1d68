package core

import (
	"math"

	"github.com/worthyretail/xray/schema"
)

// Engine classifies completed answer sets against a fixed catalog.
// It holds no mutable state after construction and is safe for concurrent use.
type Engine struct {
	catalog   schema.Catalog
	perPillar map[schema.Pillar]int
	rules     []Rule
}

// NewEngine validates the catalog and builds the classification ladder.
// Missing threshold keys fall back to schema.DefaultThresholds.
func NewEngine(catalog schema.Catalog, thresholds schema.Thresholds) (*Engine, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	perPillar := make(map[schema.Pillar]int, len(schema.AllPillars))
	for _, q := range catalog.Questions {
		perPillar[q.Pillar]++
	}
	return &Engine{
		catalog:   catalog,
		perPillar: perPillar,
		rules:     BuildRules(thresholds),
	}, nil
}

// Catalog returns the catalog the engine was built with.
func (e *Engine) Catalog() schema.Catalog {
	return e.catalog
}

// Questions returns the ordered question list.
func (e *Engine) Questions() []schema.Question {
	return e.catalog.Questions
}

// Rules returns the ordered classification ladder.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// Complete reports whether answers holds exactly one valid response per question.
func (e *Engine) Complete(answers schema.Answers) bool {
	if len(answers) != len(e.catalog.Questions) {
		return false
	}
	for _, q := range e.catalog.Questions {
		v, ok := answers[q.ID]
		if !ok || ValidateAnswer(v) != nil {
			return false
		}
	}
	return true
}

// Score computes the result for a completed answer set. The boolean is false
// when the set is not ready (missing or invalid entries); no partial result is produced.
func (e *Engine) Score(answers schema.Answers) (schema.Result, bool) {
	if !e.Complete(answers) {
		return schema.Result{}, false
	}

	raw := make(map[schema.Pillar]int, len(schema.AllPillars))
	for _, q := range e.catalog.Questions {
		raw[q.Pillar] += answers[q.ID]
	}

	scores := schema.PillarScores{
		B: percentage(raw[schema.Bedrock], e.perPillar[schema.Bedrock]),
		F: percentage(raw[schema.Fuel], e.perPillar[schema.Fuel]),
		P: percentage(raw[schema.Purpose], e.perPillar[schema.Purpose]),
	}

	return schema.Result{
		ArchetypeID:  Classify(e.rules, scores),
		Scores:       scores,
		LowestPillar: scores.Lowest(),
		Confidence:   reliability(answers, len(e.catalog.Questions)),
	}, true
}

// Report joins a result with the archetype and remediation copy from the catalog.
func (e *Engine) Report(result schema.Result) schema.Report {
	return schema.Report{
		Result:    result,
		Archetype: e.catalog.Archetype(result.ArchetypeID),
		Remedy:    e.catalog.Pillars[result.LowestPillar],
	}
}

// percentage normalizes a raw pillar sum against its maximum (MaxAnswer per question).
func percentage(raw, questions int) int {
	if questions == 0 {
		return 0
	}
	maxRaw := float64(schema.MaxAnswer * questions)
	return int(math.Round(float64(raw) / maxRaw * 100.0))
}

// reliability flags straight-lining: too many maximum responses lowers confidence.
func reliability(answers schema.Answers, total int) schema.Confidence {
	maxCount := 0
	for _, v := range answers {
		if v == schema.MaxAnswer {
			maxCount++
		}
	}

	var ratio float64
	if total > 0 {
		ratio = float64(maxCount) / float64(total)
	}

	c := schema.Confidence{
		MaxAnswers: maxCount,
		MaxRatio:   ratio,
		Reliable:   ratio <= schema.StraightLineRatio,
	}
	if c.Reliable {
		c.Percent = schema.ReliableConfidence
	} else {
		c.Percent = schema.SuspectConfidence
	}
	return c
}
