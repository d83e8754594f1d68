package schema

import (
	"fmt"
	"maps"
	"slices"
)

// DefaultTitle is the product name shown on reports.
const DefaultTitle = "Worthy Retail X-Ray"

// defaultQuestions is the canonical nine-statement questionnaire, three per pillar.
var defaultQuestions = []Question{
	{ID: 1, Pillar: Bedrock, Text: "My team feels safe admitting mistakes to me without fear of retribution."},
	{ID: 2, Pillar: Bedrock, Text: "When pressure is high, I default to transparency rather than withholding information."},
	{ID: 3, Pillar: Bedrock, Text: "Trust within the team is strong enough that we don't need excessive oversight."},
	{ID: 4, Pillar: Fuel, Text: "We consistently hit our operational KPIs without requiring 'brute force' efforts."},
	{ID: 5, Pillar: Fuel, Text: "Our internal processes are lean and help us move faster rather than slowing us down."},
	{ID: 6, Pillar: Fuel, Text: "I have a systematic way to measure and improve our operational velocity."},
	{ID: 7, Pillar: Purpose, Text: "Every member of my team can clearly state the 'Why' behind our store's goals."},
	{ID: 8, Pillar: Purpose, Text: "The team feels a sense of ownership over the store's long-term legacy."},
	{ID: 9, Pillar: Purpose, Text: "Personal growth and purpose are discussed as often as sales targets."},
}

var defaultArchetypes = map[ArchetypeID]Archetype{
	SolidArchetype: {
		ID:           SolidArchetype,
		Name:         "Solid Foundation",
		Tagline:      "The Legacy-Ready Leader",
		Status:       "Legacy Ready",
		Description:  "Equilibrium across all three pillars. You drive results while maintaining deep trust.",
		Prescription: "You are ready for multi-unit leadership. Focus on scaling the BFP framework.",
		StriveFor:    "Legacy Scaling & Mentorship",
		Color:        "#059669",
		Profile:      PillarScores{B: 95, F: 92, P: 95},
	},
	BureaucratArchetype: {
		ID:           BureaucratArchetype,
		Name:         "The Bureaucrat",
		Tagline:      "Operational Stagnation",
		Status:       "Stagnant",
		Description:  "Trust is present, but velocity is low. Processes are prioritized over results.",
		Prescription: "Inject Fuel. Implement aggressive KPI targets and agile feedback loops.",
		StriveFor:    "Fuel Injection & Velocity",
		Color:        "#2563eb",
		Profile:      PillarScores{B: 88, F: 32, P: 55},
	},
	BurnoutArchetype: {
		ID:           BurnoutArchetype,
		Name:         "Burnout Driver",
		Tagline:      "Velocity Risk Profile",
		Status:       "Human Debt High",
		Description:  "KPIs are met through brute force. High velocity but low psychological safety.",
		Prescription: "Recover Purpose. Shift from 'Command & Control' to 'Clarity & Care.'",
		StriveFor:    "Purpose Recovery & Bedrock Stability",
		Color:        "#f97316",
		Profile:      PillarScores{B: 42, F: 96, P: 28},
	},
	VisionaryArchetype: {
		ID:           VisionaryArchetype,
		Name:         "Performative Visionary",
		Tagline:      "The Hollow Leader",
		Status:       "Hollow Foundation",
		Description:  "Charismatic but fails in execution. The team loves the dream but hates the reality.",
		Prescription: "Stabilize Bedrock. Stop selling the future and start fixing the present.",
		StriveFor:    "Structural Integrity & Systems",
		Color:        "#9333ea",
		Profile:      PillarScores{B: 35, F: 25, P: 92},
	},
	AccidentalArchetype: {
		ID:           AccidentalArchetype,
		Name:         "The Accidental Leader",
		Tagline:      "Critical Structural Fragility",
		Status:       "Critical Risk",
		Description:  "Technical expert leading on instinct. Survival mode across all pillars.",
		Prescription: "BFP Foundations. Immediate enrollment in radical ownership training.",
		StriveFor:    "Core BFP Foundations",
		Color:        "#dc2626",
		Profile:      PillarScores{B: 18, F: 22, P: 12},
	},
}

var defaultPillars = map[Pillar]PillarInfo{
	Bedrock: {
		Pillar:  Bedrock,
		Name:    "Bedrock",
		Meaning: "Trust and psychological safety",
		Remedy:  "Rebuild safety first: run blameless reviews and share bad news early and openly.",
	},
	Fuel: {
		Pillar:  Fuel,
		Name:    "Fuel",
		Meaning: "Operational velocity",
		Remedy:  "Set a small number of visible KPIs and review them weekly with the whole team.",
	},
	Purpose: {
		Pillar:  Purpose,
		Name:    "Purpose",
		Meaning: "Mission and ownership",
		Remedy:  "Connect every target to the store's 'Why' and hand real ownership to the team.",
	},
}

// DefaultCatalog returns a fresh copy of the built-in catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		Title:      DefaultTitle,
		Questions:  slices.Clone(defaultQuestions),
		Archetypes: maps.Clone(defaultArchetypes),
		Pillars:    maps.Clone(defaultPillars),
	}
}

// Validate checks the catalog invariants: IDs unique and covering 1..N, known
// pillars evenly split, and every archetype and pillar described.
func (c Catalog) Validate() error {
	n := len(c.Questions)
	if n == 0 {
		return fmt.Errorf("catalog has no questions")
	}

	seen := make(map[int]struct{}, n)
	perPillar := make(map[Pillar]int, len(AllPillars))
	for _, q := range c.Questions {
		if q.ID < 1 || q.ID > n {
			return fmt.Errorf("question id %d is outside 1..%d", q.ID, n)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = struct{}{}
		if _, ok := ValidPillars[q.Pillar]; !ok {
			return fmt.Errorf("question %d has unknown pillar %q", q.ID, q.Pillar)
		}
		perPillar[q.Pillar]++
	}

	if n%len(AllPillars) != 0 {
		return fmt.Errorf("question count %d is not evenly split across %d pillars", n, len(AllPillars))
	}
	for _, p := range AllPillars {
		if perPillar[p] != n/len(AllPillars) {
			return fmt.Errorf("pillar %s has %d questions, expected %d", p, perPillar[p], n/len(AllPillars))
		}
		if _, ok := c.Pillars[p]; !ok {
			return fmt.Errorf("pillar %s has no description", p)
		}
	}

	for _, id := range AllArchetypes {
		if _, ok := c.Archetypes[id]; !ok {
			return fmt.Errorf("archetype %s is missing from catalog", id)
		}
	}
	return nil
}

// Archetype returns the catalog entry for id, falling back to the accidental leader.
func (c Catalog) Archetype(id ArchetypeID) Archetype {
	if a, ok := c.Archetypes[id]; ok {
		return a
	}
	return c.Archetypes[AccidentalArchetype]
}

// Question returns the question with the given ID.
func (c Catalog) Question(id int) (Question, bool) {
	for _, q := range c.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
