// Package schema has models, catalogs and constants for all parts of xray.
package schema

// Question is a single Likert statement tagged with the pillar it measures.
type Question struct {
	ID     int    `json:"id" yaml:"id"`
	Pillar Pillar `json:"pillar" yaml:"pillar"`
	Text   string `json:"text" yaml:"text"`
}

// Answers maps a question ID to a Likert response in [MinAnswer, MaxAnswer].
type Answers map[int]int

// PillarScores holds one integer percentage (0-100) per pillar.
type PillarScores struct {
	B int `json:"b" yaml:"b"`
	F int `json:"f" yaml:"f"`
	P int `json:"p" yaml:"p"`
}

// Confidence is advisory metadata from the straight-lining heuristic.
// It never influences classification.
type Confidence struct {
	Percent    int     `json:"percent"`
	Reliable   bool    `json:"reliable"`
	MaxAnswers int     `json:"max_answers"` // number of MaxAnswer responses
	MaxRatio   float64 `json:"max_ratio"`   // MaxAnswers / question count
}

// Result is the sole output of the scoring engine.
type Result struct {
	ArchetypeID  ArchetypeID  `json:"archetype_id"`
	Scores       PillarScores `json:"scores"`
	LowestPillar Pillar       `json:"lowest_pillar"`
	Confidence   Confidence   `json:"confidence"`
}

// Archetype is a static catalog entry describing a leadership profile.
type Archetype struct {
	ID           ArchetypeID  `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	Tagline      string       `json:"tagline" yaml:"tagline"`
	Status       string       `json:"status" yaml:"status"` // risk/status label
	Description  string       `json:"description" yaml:"description"`
	Prescription string       `json:"prescription" yaml:"prescription"`
	StriveFor    string       `json:"strive_for" yaml:"strive_for"`
	Color        string       `json:"color" yaml:"color"`
	Profile      PillarScores `json:"profile" yaml:"profile"` // reference scores for display
}

// PillarInfo describes a pillar and the remedial focus shown when it is the weakest.
type PillarInfo struct {
	Pillar  Pillar `json:"pillar" yaml:"pillar"`
	Name    string `json:"name" yaml:"name"`
	Meaning string `json:"meaning" yaml:"meaning"`
	Remedy  string `json:"remedy" yaml:"remedy"`
}

// Catalog bundles everything fixed at process start: questions, archetypes and pillar copy.
type Catalog struct {
	Title      string                    `json:"title" yaml:"title"`
	Questions  []Question                `json:"questions" yaml:"questions"`
	Archetypes map[ArchetypeID]Archetype `json:"archetypes" yaml:"archetypes"`
	Pillars    map[Pillar]PillarInfo     `json:"pillars" yaml:"pillars"`
}

// Thresholds is the percentage table behind the classification ladder.
type Thresholds map[ThresholdKey]int

// Report joins a Result with the catalog copy needed to present it.
type Report struct {
	Result    Result     `json:"result"`
	Archetype Archetype  `json:"archetype"`
	Remedy    PillarInfo `json:"remedy"`
}

// RuleView is a display form of one classification rung.
type RuleView struct {
	Order     int       `json:"order"`
	Archetype Archetype `json:"archetype"`
	Condition string    `json:"condition"`
}
