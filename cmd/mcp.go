package cmd

import (
	"github.com/spf13/cobra"

	"github.com/worthyretail/xray/internal/mcp"
	"github.com/worthyretail/xray/internal/store"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the X-Ray MCP server",
	Long: `Launch an MCP server over stdio so AI agents can list questions, score
answers, record submissions and read team dashboards via standard tools.`,
	// Logs go to stderr, so stdout stays clean for the protocol.
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, engine, store.Manager.GetSubmissionStore())
	},
}
