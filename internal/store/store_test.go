package store

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worthyretail/xray/schema"
)

func newSubmission(id, team string, archetype schema.ArchetypeID, at time.Time) schema.Submission {
	return schema.Submission{
		ID:           id,
		UserName:     "user-" + id,
		TeamCode:     team,
		ArchetypeID:  archetype,
		Scores:       schema.PillarScores{B: 73, F: 60, P: 87},
		LowestPillar: schema.Fuel,
		Confidence:   schema.ReliableConfidence,
		SubmittedAt:  at,
	}
}

func TestSubmissionStore_NoneBackend(t *testing.T) {
	s, err := NewSubmissionStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, s)

	ctx := context.Background()
	assert.NoError(t, s.RecordSubmission(ctx, newSubmission("a", "NY-01", schema.SolidArchetype, time.Now())))

	subs, err := s.ListSubmissions(ctx, "")
	assert.NoError(t, err)
	assert.Empty(t, subs)

	status, err := s.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "none", status.Backend)
	assert.False(t, status.Connected)

	assert.NoError(t, s.Close())
}

func TestSubmissionStore_SQLite(t *testing.T) {
	s, err := NewSubmissionStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	ctx := context.Background()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	// The half-second entry checks that fractional timestamps still sort correctly
	require.NoError(t, s.RecordSubmission(ctx, newSubmission("a", "NY-01", schema.SolidArchetype, base)))
	require.NoError(t, s.RecordSubmission(ctx, newSubmission("b", "NY-01", schema.BurnoutArchetype, base.Add(500*time.Millisecond))))
	require.NoError(t, s.RecordSubmission(ctx, newSubmission("c", "LA-02", schema.VisionaryArchetype, base.Add(-time.Hour))))

	t.Run("list by team newest first", func(t *testing.T) {
		subs, err := s.ListSubmissions(ctx, "NY-01")
		require.NoError(t, err)
		require.Len(t, subs, 2)
		assert.Equal(t, "b", subs[0].ID)
		assert.Equal(t, "a", subs[1].ID)
		assert.Equal(t, schema.BurnoutArchetype, subs[0].ArchetypeID)
		assert.Equal(t, schema.Fuel, subs[0].LowestPillar)
		assert.Equal(t, schema.PillarScores{B: 73, F: 60, P: 87}, subs[0].Scores)
		assert.True(t, base.Add(500*time.Millisecond).Equal(subs[0].SubmittedAt))
	})

	t.Run("list all teams", func(t *testing.T) {
		subs, err := s.ListSubmissions(ctx, "")
		require.NoError(t, err)
		assert.Len(t, subs, 3)
	})

	t.Run("unknown team is empty", func(t *testing.T) {
		subs, err := s.ListSubmissions(ctx, "NOPE")
		require.NoError(t, err)
		assert.Empty(t, subs)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		err := s.RecordSubmission(ctx, newSubmission("a", "NY-01", schema.SolidArchetype, base))
		assert.Error(t, err)
	})

	t.Run("status", func(t *testing.T) {
		status, err := s.GetStatus()
		require.NoError(t, err)
		assert.True(t, status.Connected)
		assert.Equal(t, 3, status.TotalSubmissions)
		assert.Equal(t, 2, status.TotalTeams)
		assert.True(t, base.Add(500*time.Millisecond).Equal(status.LastSubmission))
		assert.True(t, base.Add(-time.Hour).Equal(status.OldestSubmission))

		var buf bytes.Buffer
		PrintStoreStatus(&buf, status)
		assert.Contains(t, buf.String(), "Total Submissions: 3")
		assert.Contains(t, buf.String(), "Total Teams: 2")
	})
}

func TestSubmissionStore_EmptyStatus(t *testing.T) {
	s, err := NewSubmissionStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	status, err := s.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 0, status.TotalSubmissions)
	assert.True(t, status.LastSubmission.IsZero())
}

func TestSubmissionStore_UnsupportedBackend(t *testing.T) {
	_, err := NewSubmissionStore(schema.DatabaseBackend("redis"), "")
	assert.ErrorContains(t, err, "unsupported backend")
}

func TestClearStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")
	s, err := NewSubmissionStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.RecordSubmission(context.Background(), newSubmission("a", "NY-01", schema.SolidArchetype, time.Now())))
	require.NoError(t, s.Close())

	require.NoError(t, ClearStore(schema.SQLiteBackend, dbPath))
	assert.NoFileExists(t, dbPath)

	// Clearing twice is fine
	assert.NoError(t, ClearStore(schema.SQLiteBackend, dbPath))
	assert.NoError(t, ClearStore(schema.NoneBackend, ""))
	assert.Error(t, ClearStore(schema.DatabaseBackend("redis"), ""))
}

func TestStoreManager(t *testing.T) {
	s, err := NewSubmissionStore(schema.NoneBackend, "")
	require.NoError(t, err)

	mgr := NewStoreManager(s)
	assert.Same(t, s, mgr.GetSubmissionStore())
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "?, ?, ?", placeholders(schema.SQLiteBackend, 3))
	assert.Equal(t, "?", placeholders(schema.MySQLBackend, 1))
	assert.Equal(t, "$1, $2", placeholders(schema.PostgreSQLBackend, 2))
}

func TestQuoteTableName(t *testing.T) {
	tests := []struct {
		backend  schema.DatabaseBackend
		expected string
	}{
		{schema.SQLiteBackend, `"xray_submissions"`},
		{schema.MySQLBackend, "`xray_submissions`"},
		{schema.PostgreSQLBackend, `"xray_submissions"`},
	}
	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			assert.Equal(t, tt.expected, quoteTableName(submissionsTable, tt.backend))
		})
	}
}

func TestMysqlDSNForcesParseTime(t *testing.T) {
	dsn, err := mysqlDSN("user:pass@tcp(localhost:3306)/xray")
	require.NoError(t, err)
	assert.Contains(t, dsn, "parseTime=true")

	_, err = mysqlDSN("not a dsn")
	assert.Error(t, err)
}
