package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	autotagmcp "github.com/gorewood/autotag/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run autotag as a Model Context Protocol (MCP) server over stdio.

The server answers for the repository containing the working directory
(or --dir). Its tools are read-only; tags are only created by 'autotag tag'.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "autotag": {
        "command": "autotag",
        "args": ["serve"]
      }
    }
  }

Available tools: detect, check, formats`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			server := autotagmcp.NewServer(buildVersion(), &autotagmcp.Workspace{
				Root:     ws.root,
				Defaults: ws.cfg,
				Reader:   ws.reader,
				Tagger:   ws.tagger,
			})
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
