package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worthyretail/xray/schema"
)

// TestBuildRulesOrder tests that the ladder follows the classification order.
func TestBuildRulesOrder(t *testing.T) {
	rules := BuildRules(nil)
	require.Len(t, rules, len(schema.AllArchetypes))
	for i, r := range rules {
		assert.Equal(t, schema.AllArchetypes[i], r.Archetype)
		assert.NotEmpty(t, r.Condition)
	}
	assert.Equal(t, "B >= 87 and F >= 87 and P >= 87", rules[0].Condition)
	assert.Equal(t, "B >= 73 and F <= 60", rules[1].Condition)
	assert.Equal(t, "otherwise", rules[len(rules)-1].Condition)
}

// TestBuildRulesOverride tests that partial overrides keep remaining defaults.
func TestBuildRulesOverride(t *testing.T) {
	rules := BuildRules(schema.Thresholds{schema.BureaucratFuelMax: 40})
	assert.Equal(t, "B >= 73 and F <= 40", rules[1].Condition)
	assert.Equal(t, "F >= 87 and B <= 67", rules[2].Condition)
}

// TestClassify tests first-match-wins semantics on raw scores.
func TestClassify(t *testing.T) {
	rules := BuildRules(nil)

	tests := []struct {
		name   string
		scores schema.PillarScores
		want   schema.ArchetypeID
	}{
		{"solid", schema.PillarScores{B: 90, F: 90, P: 90}, schema.SolidArchetype},
		{"solid wins over bureaucrat", schema.PillarScores{B: 100, F: 87, P: 87}, schema.SolidArchetype},
		{"bureaucrat", schema.PillarScores{B: 80, F: 40, P: 100}, schema.BureaucratArchetype},
		{"burnout", schema.PillarScores{B: 40, F: 95, P: 30}, schema.BurnoutArchetype},
		{"burnout wins over visionary", schema.PillarScores{B: 40, F: 95, P: 95}, schema.BurnoutArchetype},
		{"visionary", schema.PillarScores{B: 35, F: 25, P: 92}, schema.VisionaryArchetype},
		{"accidental", schema.PillarScores{B: 18, F: 22, P: 12}, schema.AccidentalArchetype},
		{"middle of the road", schema.PillarScores{B: 70, F: 70, P: 70}, schema.AccidentalArchetype},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(rules, tt.scores))
		})
	}
}

// TestClassifyEmptyLadder tests the fallback when no rule is present.
func TestClassifyEmptyLadder(t *testing.T) {
	assert.Equal(t, schema.AccidentalArchetype, Classify(nil, schema.PillarScores{B: 100, F: 100, P: 100}))
}

// TestCatalogProfilesClassify tests that every reference profile lands on its own archetype.
func TestCatalogProfilesClassify(t *testing.T) {
	rules := BuildRules(nil)
	for id, a := range schema.DefaultCatalog().Archetypes {
		assert.Equal(t, id, Classify(rules, a.Profile), "profile of %s", id)
	}
}

// TestRuleViews tests the display form of the ladder.
func TestRuleViews(t *testing.T) {
	engine := newTestEngine(t)
	views := engine.RuleViews()
	require.Len(t, views, len(schema.AllArchetypes))
	assert.Equal(t, 1, views[0].Order)
	assert.Equal(t, "Solid Foundation", views[0].Archetype.Name)
	assert.Equal(t, schema.AccidentalArchetype, views[4].Archetype.ID)
}
