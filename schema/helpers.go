package schema

import (
	"fmt"
	"maps"
	"strings"
)

// DefaultThresholds returns the canonical classification table.
// On a three-question pillar these percentages are exactly raw sums of
// 13 (87), 11 (73), 9 (60) and 10 (67) out of 15.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SolidMin:             87,
		BureaucratBedrockMin: 73,
		BureaucratFuelMax:    60,
		BurnoutFuelMin:       87,
		BurnoutBedrockMax:    67,
		VisionaryPurposeMin:  87,
		VisionaryBedrockMax:  67,
	}
}

// Merge returns a copy of t with every key present in overrides replaced.
func (t Thresholds) Merge(overrides Thresholds) Thresholds {
	merged := maps.Clone(t)
	if merged == nil {
		merged = make(Thresholds, len(overrides))
	}
	maps.Copy(merged, overrides)
	return merged
}

// Get returns the percentage for pillar p.
func (s PillarScores) Get(p Pillar) int {
	switch p {
	case Bedrock:
		return s.B
	case Fuel:
		return s.F
	default:
		return s.P
	}
}

// Average returns the mean of the three pillar percentages.
func (s PillarScores) Average() float64 {
	return float64(s.B+s.F+s.P) / 3.0
}

// Lowest returns the pillar with the minimum percentage. Ties go to the
// pillar listed first in AllPillars.
func (s PillarScores) Lowest() Pillar {
	lowest := AllPillars[0]
	for _, p := range AllPillars[1:] {
		if s.Get(p) < s.Get(lowest) {
			lowest = p
		}
	}
	return lowest
}

// String formats scores as "B=100 F=20 P=20".
func (s PillarScores) String() string {
	return fmt.Sprintf("B=%d F=%d P=%d", s.B, s.F, s.P)
}

// PillarName returns the display name of p.
func PillarName(p Pillar) string {
	switch p {
	case Bedrock:
		return "Bedrock"
	case Fuel:
		return "Fuel"
	case Purpose:
		return "Purpose"
	default:
		return string(p)
	}
}

// LikertLabel returns the response wording for a Likert value.
func LikertLabel(v int) string {
	switch v {
	case 5:
		return "Strongly Agree"
	case 4:
		return "Agree"
	case 3:
		return "Neutral"
	case 2:
		return "Disagree"
	case 1:
		return "Strongly Disagree"
	default:
		return "Unknown"
	}
}

// NormalizeTeamCode trims and upper-cases a team code so "ny-01 " and "NY-01" group together.
func NormalizeTeamCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
