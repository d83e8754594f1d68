package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worthyretail/xray/schema"
)

func sampleSubmissions() []schema.Submission {
	now := time.Date(2026, 3, 14, 9, 30, 0, 123456789, time.UTC)
	return []schema.Submission{
		{
			ID:           "0b6a5c1e-0000-4000-8000-000000000001",
			UserName:     "Dana",
			TeamCode:     "NY-01",
			ArchetypeID:  schema.SolidArchetype,
			Scores:       schema.PillarScores{B: 93, F: 87, P: 100},
			LowestPillar: schema.Fuel,
			Confidence:   94,
			SubmittedAt:  now,
		},
		{
			ID:           "0b6a5c1e-0000-4000-8000-000000000002",
			UserName:     "Lee",
			TeamCode:     "NY-01",
			ArchetypeID:  schema.BurnoutArchetype,
			Scores:       schema.PillarScores{B: 40, F: 93, P: 60},
			LowestPillar: schema.Bedrock,
			Confidence:   94,
			SubmittedAt:  now.Add(-time.Hour),
		},
	}
}

func TestSubmissionStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	s := parquet.SchemaOf(new(Submission))
	require.NotNil(t, s)

	expectedColumns := []string{
		"id", "user_name", "team_code", "archetype_id",
		"score_b", "score_f", "score_p",
		"lowest_pillar", "confidence", "submitted_at",
	}
	for _, colName := range expectedColumns {
		_, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestWriteSubmissionsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "submissions.parquet")
	data := ConvertSubmissions(sampleSubmissions())

	require.NoError(t, WriteSubmissionsParquet(data, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[Submission](file)
	defer func() { _ = reader.Close() }()

	readData := make([]Submission, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	require.Equal(t, len(data), n, "Should read all records")

	for i := range data {
		assert.Equal(t, data[i].ID, readData[i].ID)
		assert.Equal(t, data[i].TeamCode, readData[i].TeamCode)
		assert.Equal(t, data[i].ArchetypeID, readData[i].ArchetypeID)
		assert.Equal(t, data[i].ScoreF, readData[i].ScoreF)
		assert.WithinDuration(t, data[i].SubmittedAt, readData[i].SubmittedAt, time.Nanosecond)
	}
}

func TestWriteTeamAveragesParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "teams.parquet")
	data := ConvertTeamDashboards([]schema.TeamDashboard{
		{
			TeamCode:        "NY-01",
			Count:           2,
			Average:         schema.PillarScores{B: 67, F: 90, P: 80},
			LowestPillar:    schema.Bedrock,
			ArchetypeCounts: map[schema.ArchetypeID]int{schema.SolidArchetype: 1, schema.BurnoutArchetype: 1},
		},
		{TeamCode: "EMPTY"},
	})

	require.NoError(t, WriteTeamAveragesParquet(data, outputPath))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[TeamAverage](file)
	defer func() { _ = reader.Close() }()

	readData := make([]TeamAverage, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, 2, n)

	require.NotNil(t, readData[0].DominantArchetype)
	assert.Equal(t, "SOLID", *readData[0].DominantArchetype, "ties go to classification order")
	assert.Equal(t, int32(90), readData[0].AverageF)
	assert.Nil(t, readData[1].DominantArchetype)
}

func TestWriteSubmissionsParquet_EmptyData(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteSubmissionsParquet([]Submission{}, outputPath))

	_, err := os.Stat(outputPath)
	assert.NoError(t, err, "Output file should exist even with empty data")
}

func TestWriteSubmissionsParquet_InvalidPath(t *testing.T) {
	err := WriteSubmissionsParquet(ConvertSubmissions(sampleSubmissions()), "/nonexistent/directory/file.parquet")
	assert.Error(t, err, "Should error on invalid path")
}
