package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogValidate(t *testing.T) {
	c := DefaultCatalog()
	require.NoError(t, c.Validate())
	assert.Len(t, c.Questions, 9)
	assert.Len(t, c.Archetypes, len(AllArchetypes))
	assert.Equal(t, DefaultTitle, c.Title)
}

func TestDefaultCatalogIsCopy(t *testing.T) {
	c := DefaultCatalog()
	c.Questions[0].Text = "changed"
	delete(c.Archetypes, SolidArchetype)

	fresh := DefaultCatalog()
	assert.NotEqual(t, "changed", fresh.Questions[0].Text)
	assert.Contains(t, fresh.Archetypes, SolidArchetype)
}

func TestCatalogValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Catalog)
		errMsg string
	}{
		{"no questions", func(c *Catalog) { c.Questions = nil }, "no questions"},
		{"id out of range", func(c *Catalog) { c.Questions[0].ID = 42 }, "outside 1..9"},
		{"duplicate id", func(c *Catalog) { c.Questions[1].ID = 1 }, "duplicate question id 1"},
		{"unknown pillar", func(c *Catalog) { c.Questions[0].Pillar = "X" }, "unknown pillar"},
		{"uneven split", func(c *Catalog) { c.Questions[0].Pillar = Fuel }, "pillar B has 2 questions"},
		{"not divisible", func(c *Catalog) { c.Questions = c.Questions[:8] }, "not evenly split"},
		{"missing pillar copy", func(c *Catalog) { delete(c.Pillars, Purpose) }, "pillar P has no description"},
		{"missing archetype", func(c *Catalog) { delete(c.Archetypes, BurnoutArchetype) }, "archetype BURNOUT is missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultCatalog()
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestCatalogLookups(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, "The Bureaucrat", c.Archetype(BureaucratArchetype).Name)
	assert.Equal(t, AccidentalArchetype, c.Archetype("UNKNOWN").ID)

	q, ok := c.Question(7)
	require.True(t, ok)
	assert.Equal(t, Purpose, q.Pillar)

	_, ok = c.Question(10)
	assert.False(t, ok)
}

func TestPillarScoresLowest(t *testing.T) {
	tests := []struct {
		scores   PillarScores
		expected Pillar
	}{
		{PillarScores{B: 10, F: 50, P: 90}, Bedrock},
		{PillarScores{B: 50, F: 10, P: 90}, Fuel},
		{PillarScores{B: 50, F: 90, P: 10}, Purpose},
		{PillarScores{B: 40, F: 40, P: 40}, Bedrock},
		{PillarScores{B: 80, F: 40, P: 40}, Fuel},
		{PillarScores{B: 40, F: 80, P: 40}, Bedrock},
	}
	for _, tt := range tests {
		t.Run(tt.scores.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.scores.Lowest())
		})
	}
}

func TestPillarScoresHelpers(t *testing.T) {
	s := PillarScores{B: 100, F: 20, P: 30}
	assert.Equal(t, 100, s.Get(Bedrock))
	assert.Equal(t, 20, s.Get(Fuel))
	assert.Equal(t, 30, s.Get(Purpose))
	assert.InDelta(t, 50.0, s.Average(), 0.001)
	assert.Equal(t, "B=100 F=20 P=30", s.String())
}

func TestThresholdsMerge(t *testing.T) {
	base := DefaultThresholds()
	merged := base.Merge(Thresholds{SolidMin: 80})

	assert.Equal(t, 80, merged[SolidMin])
	assert.Equal(t, 87, base[SolidMin], "base must not be mutated")
	assert.Len(t, merged, len(AllThresholdKeys))

	var empty Thresholds
	assert.Equal(t, Thresholds{SolidMin: 1}, empty.Merge(Thresholds{SolidMin: 1}))
}

func TestDefaultThresholdsCoverKeys(t *testing.T) {
	th := DefaultThresholds()
	for _, k := range AllThresholdKeys {
		_, ok := th[k]
		assert.True(t, ok, "missing %s", k)
	}
}

func TestNormalizeTeamCode(t *testing.T) {
	assert.Equal(t, "NY-01", NormalizeTeamCode(" ny-01 "))
	assert.Equal(t, "", NormalizeTeamCode("   "))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Strongly Agree", LikertLabel(5))
	assert.Equal(t, "Neutral", LikertLabel(3))
	assert.Equal(t, "Strongly Disagree", LikertLabel(1))
	assert.Equal(t, "Unknown", LikertLabel(0))

	assert.Equal(t, "Fuel", PillarName(Fuel))
	assert.Equal(t, "X", PillarName("X"))
}
