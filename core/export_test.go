package core

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/worthyretail/xray/internal/store"
	"github.com/worthyretail/xray/schema"
)

// TestExecuteExport tests writing both Parquet files from stored submissions.
func TestExecuteExport(t *testing.T) {
	subs := []schema.Submission{
		newSubmission("a", "NY-01", schema.SolidArchetype, 90, 90, 90, baseTime),
		newSubmission("b", "NY-01", schema.BurnoutArchetype, 40, 95, 30, baseTime.Add(time.Hour)),
		newSubmission("c", "LA", schema.VisionaryArchetype, 35, 25, 92, baseTime.Add(2*time.Hour)),
	}

	st := &store.MockSubmissionStore{}
	st.On("GetStatus").Return(schema.StoreStatus{Backend: "sqlite", Connected: true, TotalSubmissions: 3, TotalTeams: 2}, nil)
	st.On("ListSubmissions", mock.Anything, "").Return(subs, nil)
	mgr := &store.MockStoreManager{}
	mgr.On("GetSubmissionStore").Return(st)

	base := filepath.Join(t.TempDir(), "xray")
	var out bytes.Buffer
	require.NoError(t, ExecuteExport(context.Background(), mgr, base, &out))

	for _, suffix := range []string{".submissions.parquet", ".teams.parquet"} {
		info, err := os.Stat(base + suffix)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
	assert.Contains(t, out.String(), "Exported 3 submissions")
	assert.Contains(t, out.String(), "Exported 2 teams")
	st.AssertExpectations(t)
}

// TestExecuteExportErrors tests the export preconditions.
func TestExecuteExportErrors(t *testing.T) {
	ctx := context.Background()
	base := filepath.Join(t.TempDir(), "xray")

	t.Run("missing output file", func(t *testing.T) {
		mgr := &store.MockStoreManager{}
		err := ExecuteExport(ctx, mgr, "", &bytes.Buffer{})
		assert.ErrorContains(t, err, "--output-file")
		mgr.AssertNotCalled(t, "GetSubmissionStore")
	})

	t.Run("empty store", func(t *testing.T) {
		st := &store.MockSubmissionStore{}
		st.On("GetStatus").Return(schema.StoreStatus{Backend: "sqlite"}, nil)
		mgr := &store.MockStoreManager{}
		mgr.On("GetSubmissionStore").Return(st)

		err := ExecuteExport(ctx, mgr, base, &bytes.Buffer{})
		assert.ErrorContains(t, err, "no submissions")
	})

	t.Run("status error", func(t *testing.T) {
		st := &store.MockSubmissionStore{}
		st.On("GetStatus").Return(schema.StoreStatus{}, errors.New("closed"))
		mgr := &store.MockStoreManager{}
		mgr.On("GetSubmissionStore").Return(st)

		err := ExecuteExport(ctx, mgr, base, &bytes.Buffer{})
		assert.ErrorContains(t, err, "failed to get store status")
	})
}

// TestGroupDashboards tests per-team aggregation order.
func TestGroupDashboards(t *testing.T) {
	subs := []schema.Submission{
		newSubmission("a", "ny-01", schema.SolidArchetype, 90, 90, 90, baseTime),
		newSubmission("b", "LA", schema.BurnoutArchetype, 40, 95, 30, baseTime),
		newSubmission("c", "NY-01", schema.SolidArchetype, 100, 100, 100, baseTime),
	}

	dashboards := groupDashboards(subs)
	require.Len(t, dashboards, 2)
	assert.Equal(t, "LA", dashboards[0].TeamCode)
	assert.Equal(t, "NY-01", dashboards[1].TeamCode)
	assert.Equal(t, 2, dashboards[1].Count)
	assert.Equal(t, schema.PillarScores{B: 95, F: 95, P: 95}, dashboards[1].Average)
}
