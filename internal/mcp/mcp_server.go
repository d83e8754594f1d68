// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/worthyretail/xray/core"
	"github.com/worthyretail/xray/internal/contract"
)

// answersHelp documents the accepted answer formats for tool callers.
const answersHelp = "Answers as 'id=value' pairs (e.g. '1=5,2=4'), positional values in question order " +
	"(e.g. '5,4,3,5,4,3,5,4,3') or a JSON object keyed by question id. Values range from 1 to 5."

// NewMCPServer initializes and configures the X-Ray MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(engine *core.Engine, store contract.SubmissionStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Worthy Retail X-Ray Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		engine: engine,
		store:  store,
	}

	// --- 1. Tool: list_questions ---
	s.AddTool(mcp.NewTool("list_questions",
		mcp.WithDescription("List the leadership questionnaire in order, each statement tagged with its pillar (B, F or P)."),
	), h.handleListQuestions)

	// --- 2. Tool: list_archetypes ---
	s.AddTool(mcp.NewTool("list_archetypes",
		mcp.WithDescription("List the archetype catalog with the ordered classification rules."),
	), h.handleListArchetypes)

	// --- 3. Tool: score_answers ---
	s.AddTool(mcp.NewTool("score_answers",
		mcp.WithDescription("Score an answer set without saving it. Incomplete sets report ready=false."),
		mcp.WithString("answers", mcp.Description(answersHelp), mcp.Required()),
	), h.handleScoreAnswers)

	// --- 4. Tool: submit_result ---
	s.AddTool(mcp.NewTool("submit_result",
		mcp.WithDescription("Score a complete answer set and record it under a team code."),
		mcp.WithString("user_name", mcp.Description("Name of the person taking the assessment."), mcp.Required()),
		mcp.WithString("team_code", mcp.Description("Team or store code to group results under."), mcp.Required()),
		mcp.WithString("answers", mcp.Description(answersHelp), mcp.Required()),
	), h.handleSubmitResult)

	// --- 5. Tool: get_team_dashboard ---
	s.AddTool(mcp.NewTool("get_team_dashboard",
		mcp.WithDescription("Get pillar averages, archetype distribution and members for a team code."),
		mcp.WithString("team_code", mcp.Description("Team or store code."), mcp.Required()),
	), h.handleGetTeamDashboard)

	return s
}

// StartMCPServer starts the X-Ray MCP server over stdio.
func StartMCPServer(_ context.Context, engine *core.Engine, store contract.SubmissionStore) error {
	s := NewMCPServer(engine, store)
	return server.ServeStdio(s)
}
