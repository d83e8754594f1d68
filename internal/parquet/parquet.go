// Package parquet provides data structures and functions for exporting xray
// submissions to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/worthyretail/xray/schema"
)

// Submission represents one scored assessment.
// This struct maps to the xray_submissions database table.
type Submission struct {
	// ID is the submission UUID
	ID string `parquet:"id,snappy"`

	// UserName is the display name entered by the leader
	UserName string `parquet:"user_name,snappy"`

	// TeamCode groups submissions for dashboards
	TeamCode string `parquet:"team_code,snappy,dict"`

	// ArchetypeID is the assigned archetype
	ArchetypeID string `parquet:"archetype_id,snappy,dict"`

	// ScoreB, ScoreF and ScoreP are the pillar percentages
	ScoreB int32 `parquet:"score_b,snappy"`
	ScoreF int32 `parquet:"score_f,snappy"`
	ScoreP int32 `parquet:"score_p,snappy"`

	// LowestPillar is the pillar targeted for remediation
	LowestPillar string `parquet:"lowest_pillar,snappy,dict"`

	// Confidence is the advisory reliability percentage
	Confidence int32 `parquet:"confidence,snappy"`

	// SubmittedAt is stored as TIMESTAMP with nanosecond precision
	SubmittedAt time.Time `parquet:"submitted_at,snappy"`
}

// TeamAverage is one row per team with its aggregated pillar scores.
type TeamAverage struct {
	TeamCode     string `parquet:"team_code,snappy"`
	Members      int32  `parquet:"members,snappy"`
	AverageB     int32  `parquet:"average_b,snappy"`
	AverageF     int32  `parquet:"average_f,snappy"`
	AverageP     int32  `parquet:"average_p,snappy"`
	LowestPillar string `parquet:"lowest_pillar,snappy"`

	// DominantArchetype is the most frequent archetype (nullable on an empty team)
	DominantArchetype *string `parquet:"dominant_archetype,optional,snappy"`
}

// writeParquet writes rows to outputPath using struct schema inference.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	// Close flushes the footer; a failure here leaves an unreadable file
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteSubmissionsParquet writes a slice of Submission structs to a Parquet file.
func WriteSubmissionsParquet(data []Submission, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteTeamAveragesParquet writes a slice of TeamAverage structs to a Parquet file.
func WriteTeamAveragesParquet(data []TeamAverage, outputPath string) error {
	return writeParquet(data, outputPath)
}

// ConvertSubmissions converts schema.Submission to Submission for Parquet export.
func ConvertSubmissions(records []schema.Submission) []Submission {
	result := make([]Submission, len(records))
	for i, record := range records {
		result[i] = Submission{
			ID:           record.ID,
			UserName:     record.UserName,
			TeamCode:     record.TeamCode,
			ArchetypeID:  string(record.ArchetypeID),
			ScoreB:       int32(record.Scores.B),
			ScoreF:       int32(record.Scores.F),
			ScoreP:       int32(record.Scores.P),
			LowestPillar: string(record.LowestPillar),
			Confidence:   int32(record.Confidence),
			SubmittedAt:  record.SubmittedAt,
		}
	}
	return result
}

// ConvertTeamDashboards converts schema.TeamDashboard to TeamAverage for Parquet export.
func ConvertTeamDashboards(dashboards []schema.TeamDashboard) []TeamAverage {
	result := make([]TeamAverage, len(dashboards))
	for i, d := range dashboards {
		row := TeamAverage{
			TeamCode:     d.TeamCode,
			Members:      int32(d.Count),
			AverageB:     int32(d.Average.B),
			AverageF:     int32(d.Average.F),
			AverageP:     int32(d.Average.P),
			LowestPillar: string(d.LowestPillar),
		}
		if dominant, ok := dominantArchetype(d.ArchetypeCounts); ok {
			s := string(dominant)
			row.DominantArchetype = &s
		}
		result[i] = row
	}
	return result
}

// dominantArchetype picks the most frequent archetype, breaking ties in classification order.
func dominantArchetype(counts map[schema.ArchetypeID]int) (schema.ArchetypeID, bool) {
	var best schema.ArchetypeID
	bestCount := 0
	for _, id := range schema.AllArchetypes {
		if counts[id] > bestCount {
			best, bestCount = id, counts[id]
		}
	}
	return best, bestCount > 0
}
