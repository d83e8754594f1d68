package schema

// Custom string types for type safety.
type (
	// Pillar represents one of the three assessment dimensions.
	Pillar string

	// ArchetypeID identifies an entry in the archetype catalog.
	ArchetypeID string

	// ThresholdKey represents keys used in the classification threshold table.
	ThresholdKey string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for result storage.
	DatabaseBackend string
)

// All pillars supported.
const (
	Bedrock Pillar = "B" // trust and safety
	Fuel    Pillar = "F" // operational velocity
	Purpose Pillar = "P" // mission and ownership
)

// AllPillars lists the pillars in tie-break priority order.
var AllPillars = []Pillar{Bedrock, Fuel, Purpose}

// ValidPillars lists all valid pillars.
var ValidPillars = map[Pillar]struct{}{
	Bedrock: {},
	Fuel:    {},
	Purpose: {},
}

// All archetypes in the canonical catalog.
const (
	SolidArchetype      ArchetypeID = "SOLID"
	BureaucratArchetype ArchetypeID = "BUREAUCRAT"
	BurnoutArchetype    ArchetypeID = "BURNOUT"
	VisionaryArchetype  ArchetypeID = "VISIONARY"
	AccidentalArchetype ArchetypeID = "ACCIDENTAL" // fallback
)

// AllArchetypes lists the archetypes in classification order.
var AllArchetypes = []ArchetypeID{
	SolidArchetype,
	BureaucratArchetype,
	BurnoutArchetype,
	VisionaryArchetype,
	AccidentalArchetype,
}

// Likert scale bounds.
const (
	MinAnswer = 1 // Strongly Disagree
	MaxAnswer = 5 // Strongly Agree
)

// Threshold keys used in the classification ladder.
const (
	SolidMin             ThresholdKey = "solid_min"
	BureaucratBedrockMin ThresholdKey = "bureaucrat_bedrock_min"
	BureaucratFuelMax    ThresholdKey = "bureaucrat_fuel_max"
	BurnoutFuelMin       ThresholdKey = "burnout_fuel_min"
	BurnoutBedrockMax    ThresholdKey = "burnout_bedrock_max"
	VisionaryPurposeMin  ThresholdKey = "visionary_purpose_min"
	VisionaryBedrockMax  ThresholdKey = "visionary_bedrock_max"
)

// AllThresholdKeys lists every threshold key in ladder order.
var AllThresholdKeys = []ThresholdKey{
	SolidMin,
	BureaucratBedrockMin,
	BureaucratFuelMax,
	BurnoutFuelMin,
	BurnoutBedrockMax,
	VisionaryPurposeMin,
	VisionaryBedrockMax,
}

// All output modes supported.
const (
	CSVOut  OutputMode = "csv"
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:  {},
	TextOut: {},
	JSONOut: {},
}

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidDatabaseBackends lists all valid store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Reliability heuristic for straight-lining.
const (
	StraightLineRatio  = 0.9 // share of max answers above which a run is suspect
	ReliableConfidence = 94
	SuspectConfidence  = 45
)
