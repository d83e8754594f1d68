//go:build basic

// Package integration contains integration tests for xray.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
// Database tests need Docker: go test -tags database ./integration
package integration

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worthyretail/xray/schema"
)

// sqliteEnv points the binary at a throwaway SQLite file.
func sqliteEnv(t *testing.T) []string {
	t.Helper()
	return []string{
		"XRAY_STORE_BACKEND=sqlite",
		"XRAY_STORE_DB_CONNECT=" + filepath.Join(t.TempDir(), "xray.db"),
	}
}

// TestScoreVerification checks the reference answer sets end to end.
func TestScoreVerification(t *testing.T) {
	env := []string{"XRAY_STORE_BACKEND=none"}

	tests := []struct {
		answers   string
		archetype schema.ArchetypeID
		scores    schema.PillarScores
	}{
		{"1,1,1,1,1,1,1,1,1", schema.AccidentalArchetype, schema.PillarScores{B: 20, F: 20, P: 20}},
		{"5,5,5,5,5,5,5,5,5", schema.SolidArchetype, schema.PillarScores{B: 100, F: 100, P: 100}},
		{"5,5,5,1,1,1,1,1,1", schema.BureaucratArchetype, schema.PillarScores{B: 100, F: 20, P: 20}},
		{"1,1,1,5,5,5,1,1,1", schema.BurnoutArchetype, schema.PillarScores{B: 20, F: 100, P: 20}},
		{"1,1,1,1,1,1,5,5,5", schema.VisionaryArchetype, schema.PillarScores{B: 20, F: 20, P: 100}},
	}

	for _, tt := range tests {
		t.Run(string(tt.archetype), func(t *testing.T) {
			out, err := runXray(t, env, "score", "--answers", tt.answers, "--output", "json")
			require.NoError(t, err)

			var report struct {
				Result schema.Result `json:"result"`
			}
			require.NoError(t, json.Unmarshal([]byte(out), &report))
			assert.Equal(t, tt.archetype, report.Result.ArchetypeID)
			assert.Equal(t, tt.scores, report.Result.Scores)
		})
	}
}

// TestScoreNotReady checks that a partial answer set fails without a report.
func TestScoreNotReady(t *testing.T) {
	out, err := runXray(t, []string{"XRAY_STORE_BACKEND=none"}, "score", "--answers", "1=5,2=5", "--output", "json")
	assert.Error(t, err)
	assert.NotContains(t, out, "archetype_id")
}

// TestTeamFlowSQLite records submissions, reads the dashboard and exports Parquet.
func TestTeamFlowSQLite(t *testing.T) {
	env := sqliteEnv(t)

	for _, user := range []string{"Robin", "Sam", "Alex"} {
		_, err := runXray(t, env, "score", "--answers", "4,4,4,4,4,4,4,4,4", "--user", user, "--team", "ny-01", "--output", "json")
		require.NoError(t, err)
	}

	out, err := runXray(t, env, "teams", "--output", "csv")
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "NY-01", records[1][0])

	out, err = runXray(t, env, "team", "NY-01", "--output", "json")
	require.NoError(t, err)
	var dashboard schema.TeamDashboard
	require.NoError(t, json.Unmarshal([]byte(out), &dashboard))
	assert.Equal(t, 3, dashboard.Count)
	assert.Equal(t, schema.PillarScores{B: 80, F: 80, P: 80}, dashboard.Average)
	assert.Equal(t, 3, dashboard.ArchetypeCounts[schema.AccidentalArchetype])

	exportBase := filepath.Join(t.TempDir(), "xray-data")
	_, err = runXray(t, env, "results", "export", "--output-file", exportBase)
	require.NoError(t, err)
	for _, suffix := range []string{".submissions.parquet", ".teams.parquet"} {
		_, statErr := os.Stat(exportBase + suffix)
		assert.NoError(t, statErr)
	}

	out, err = runXray(t, env, "results", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Submissions: 3")
}
