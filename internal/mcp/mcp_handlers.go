package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/worthyretail/xray/core"
	"github.com/worthyretail/xray/internal/contract"
	"github.com/worthyretail/xray/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	engine *core.Engine
	store  contract.SubmissionStore
}

// scoreResponse is returned by score_answers. Report is nil until ready.
type scoreResponse struct {
	Ready    bool           `json:"ready"`
	Answered int            `json:"answered"`
	Total    int            `json:"total"`
	Report   *schema.Report `json:"report,omitempty"`
}

// archetypesResponse pairs the catalog with the classification ladder.
type archetypesResponse struct {
	Archetypes []schema.Archetype `json:"archetypes"`
	Rules      []schema.RuleView  `json:"rules"`
}

func jsonResult(data any) *mcp.CallToolResult {
	jsonData, _ := json.MarshalIndent(data, "", "  ")
	return mcp.NewToolResultText(string(jsonData))
}

func (h *toolHandler) handleListQuestions(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.engine.Questions()), nil
}

func (h *toolHandler) handleListArchetypes(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	catalog := h.engine.Catalog()
	archetypes := make([]schema.Archetype, 0, len(schema.AllArchetypes))
	for _, id := range schema.AllArchetypes {
		archetypes = append(archetypes, catalog.Archetype(id))
	}
	return jsonResult(archetypesResponse{
		Archetypes: archetypes,
		Rules:      h.engine.RuleViews(),
	}), nil
}

func (h *toolHandler) handleScoreAnswers(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	answers, err := contract.ParseAnswers(request.GetString("answers", ""), h.engine.Questions())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid answers: %v", err)), nil
	}

	resp := scoreResponse{Answered: len(answers), Total: len(h.engine.Questions())}
	if result, ok := h.engine.Score(answers); ok {
		report := h.engine.Report(result)
		resp.Ready = true
		resp.Report = &report
	}
	return jsonResult(resp), nil
}

func (h *toolHandler) handleSubmitResult(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	answers, err := contract.ParseAnswers(request.GetString("answers", ""), h.engine.Questions())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid answers: %v", err)), nil
	}

	sub, err := core.Submit(ctx, h.store, h.engine, core.SubmitRequest{
		UserName: request.GetString("user_name", ""),
		TeamCode: request.GetString("team_code", ""),
		Answers:  answers,
	}, time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("submission failed: %v", err)), nil
	}
	return jsonResult(sub), nil
}

func (h *toolHandler) handleGetTeamDashboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dashboard, err := core.TeamDashboard(ctx, h.store, request.GetString("team_code", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("dashboard failed: %v", err)), nil
	}
	return jsonResult(dashboard), nil
}
