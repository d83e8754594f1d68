package core

import (
	"fmt"

	"github.com/worthyretail/xray/schema"
)

// Rule is one rung of the classification ladder.
type Rule struct {
	Archetype schema.ArchetypeID
	Condition string // human-readable form of Match
	Match     func(schema.PillarScores) bool
}

// BuildRules returns the ordered ladder for the given thresholds.
// Order matters: the first matching rule wins, and the final rule always matches.
func BuildRules(thresholds schema.Thresholds) []Rule {
	th := schema.DefaultThresholds().Merge(thresholds)

	solidMin := th[schema.SolidMin]
	bureaucratB, bureaucratF := th[schema.BureaucratBedrockMin], th[schema.BureaucratFuelMax]
	burnoutF, burnoutB := th[schema.BurnoutFuelMin], th[schema.BurnoutBedrockMax]
	visionaryP, visionaryB := th[schema.VisionaryPurposeMin], th[schema.VisionaryBedrockMax]

	return []Rule{
		{
			Archetype: schema.SolidArchetype,
			Condition: fmt.Sprintf("B >= %d and F >= %d and P >= %d", solidMin, solidMin, solidMin),
			Match: func(s schema.PillarScores) bool {
				return s.B >= solidMin && s.F >= solidMin && s.P >= solidMin
			},
		},
		{
			Archetype: schema.BureaucratArchetype,
			Condition: fmt.Sprintf("B >= %d and F <= %d", bureaucratB, bureaucratF),
			Match: func(s schema.PillarScores) bool {
				return s.B >= bureaucratB && s.F <= bureaucratF
			},
		},
		{
			Archetype: schema.BurnoutArchetype,
			Condition: fmt.Sprintf("F >= %d and B <= %d", burnoutF, burnoutB),
			Match: func(s schema.PillarScores) bool {
				return s.F >= burnoutF && s.B <= burnoutB
			},
		},
		{
			Archetype: schema.VisionaryArchetype,
			Condition: fmt.Sprintf("P >= %d and B <= %d", visionaryP, visionaryB),
			Match: func(s schema.PillarScores) bool {
				return s.P >= visionaryP && s.B <= visionaryB
			},
		},
		{
			Archetype: schema.AccidentalArchetype,
			Condition: "otherwise",
			Match:     func(schema.PillarScores) bool { return true },
		},
	}
}

// Classify walks the ladder and returns the first matching archetype.
func Classify(rules []Rule, scores schema.PillarScores) schema.ArchetypeID {
	for _, r := range rules {
		if r.Match(scores) {
			return r.Archetype
		}
	}
	return schema.AccidentalArchetype
}
