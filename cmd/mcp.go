package cmd

import (
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the gitpulse MCP server",
	Long:  `Launch an MCP server that allows AI agents to query commit activity via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// The handlers return JSON over stdio, so the normal header and
		// emoji rendering never runs in this mode.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, contract.NewLocalGitClient())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
