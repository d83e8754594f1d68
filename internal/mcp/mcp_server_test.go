package mcp_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/worthyretail/xray/core"
	mcp_internal "github.com/worthyretail/xray/internal/mcp"
	"github.com/worthyretail/xray/internal/store"
	"github.com/worthyretail/xray/schema"
)

func newEngine(t *testing.T) *core.Engine {
	t.Helper()
	engine, err := core.NewEngine(schema.DefaultCatalog(), nil)
	require.NoError(t, err)
	return engine
}

func callTool(t *testing.T, st *store.MockSubmissionStore, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	s := mcp_internal.NewMCPServer(newEngine(t), st)
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	res, err := tool.Handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	})
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	require.NotEmpty(t, res.Content)
	return res
}

func resultText(res *mcp.CallToolResult) string {
	return res.Content[0].(mcp.TextContent).Text
}

func TestMCPServerCatalogTools(t *testing.T) {
	t.Run("list_questions", func(t *testing.T) {
		res := callTool(t, &store.MockSubmissionStore{}, "list_questions", nil)
		assert.False(t, res.IsError)

		var questions []schema.Question
		require.NoError(t, json.Unmarshal([]byte(resultText(res)), &questions))
		assert.Len(t, questions, 9)
		assert.Equal(t, schema.Bedrock, questions[0].Pillar)
	})

	t.Run("list_archetypes", func(t *testing.T) {
		res := callTool(t, &store.MockSubmissionStore{}, "list_archetypes", nil)
		assert.False(t, res.IsError)
		text := resultText(res)
		assert.Contains(t, text, "Burnout Driver")
		assert.Contains(t, text, "B >= 73 and F <= 60")
	})
}

func TestMCPServerScoreAnswers(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		res := callTool(t, &store.MockSubmissionStore{}, "score_answers", map[string]any{
			"answers": "5,5,5,1,1,1,1,1,1",
		})
		assert.False(t, res.IsError)

		var resp struct {
			Ready  bool          `json:"ready"`
			Report schema.Report `json:"report"`
		}
		require.NoError(t, json.Unmarshal([]byte(resultText(res)), &resp))
		assert.True(t, resp.Ready)
		assert.Equal(t, schema.BureaucratArchetype, resp.Report.Result.ArchetypeID)
		assert.Equal(t, schema.Fuel, resp.Report.Result.LowestPillar)
	})

	t.Run("partial is not ready", func(t *testing.T) {
		res := callTool(t, &store.MockSubmissionStore{}, "score_answers", map[string]any{
			"answers": "1=5,2=4",
		})
		assert.False(t, res.IsError)
		text := resultText(res)
		assert.Contains(t, text, `"ready": false`)
		assert.Contains(t, text, `"answered": 2`)
		assert.NotContains(t, text, "archetype_id")
	})

	t.Run("invalid value", func(t *testing.T) {
		res := callTool(t, &store.MockSubmissionStore{}, "score_answers", map[string]any{
			"answers": "1=9",
		})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(res), "invalid answers")
	})
}

func TestMCPServerSubmitResult(t *testing.T) {
	t.Run("recorded", func(t *testing.T) {
		st := &store.MockSubmissionStore{}
		st.On("RecordSubmission", testifymock.Anything, testifymock.AnythingOfType("schema.Submission")).Return(nil)

		res := callTool(t, st, "submit_result", map[string]any{
			"user_name": "Robin",
			"team_code": "la",
			"answers":   "5,5,5,5,5,5,5,5,5",
		})
		assert.False(t, res.IsError)

		var sub schema.Submission
		require.NoError(t, json.Unmarshal([]byte(resultText(res)), &sub))
		assert.Equal(t, "LA", sub.TeamCode)
		assert.Equal(t, schema.SolidArchetype, sub.ArchetypeID)
		assert.Equal(t, schema.SuspectConfidence, sub.Confidence)
		st.AssertExpectations(t)
	})

	t.Run("incomplete", func(t *testing.T) {
		st := &store.MockSubmissionStore{}
		res := callTool(t, st, "submit_result", map[string]any{
			"user_name": "Robin",
			"team_code": "LA",
			"answers":   "1=5",
		})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(res), "not complete")
		st.AssertNotCalled(t, "RecordSubmission", testifymock.Anything, testifymock.Anything)
	})

	t.Run("missing identity", func(t *testing.T) {
		res := callTool(t, &store.MockSubmissionStore{}, "submit_result", map[string]any{
			"answers": "5,5,5,5,5,5,5,5,5",
		})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(res), "user name and team code are required")
	})
}

func TestMCPServerTeamDashboard(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		st := &store.MockSubmissionStore{}
		st.On("ListSubmissions", testifymock.Anything, "NY-01").Return([]schema.Submission{
			{ID: "a", TeamCode: "NY-01", ArchetypeID: schema.SolidArchetype, Scores: schema.PillarScores{B: 90, F: 90, P: 90}},
		}, nil)

		res := callTool(t, st, "get_team_dashboard", map[string]any{"team_code": "ny-01"})
		assert.False(t, res.IsError)

		var dashboard schema.TeamDashboard
		require.NoError(t, json.Unmarshal([]byte(resultText(res)), &dashboard))
		assert.Equal(t, 1, dashboard.Count)
		assert.Equal(t, schema.PillarScores{B: 90, F: 90, P: 90}, dashboard.Average)
	})

	t.Run("store error", func(t *testing.T) {
		st := &store.MockSubmissionStore{}
		st.On("ListSubmissions", testifymock.Anything, "NY-01").Return(nil, errors.New("connection refused"))

		res := callTool(t, st, "get_team_dashboard", map[string]any{"team_code": "NY-01"})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(res), "connection refused")
	})

	t.Run("blank code", func(t *testing.T) {
		res := callTool(t, &store.MockSubmissionStore{}, "get_team_dashboard", map[string]any{"team_code": " "})
		assert.True(t, res.IsError)
	})
}
