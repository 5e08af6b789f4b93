package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/resumedesk/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the read-only MCP server",
	Long: `Start a Model Context Protocol server over stdio so AI assistants can
read the resume. The server cannot edit the document.

Resources:
  resume://document            the whole resume as JSON
  resume://sections/{section}  one section as JSON

Tools:
  list_sections  sections and record counts
  preview        the resume as laid out by the live preview

With --watch (or seed.watch) the served document follows the seed file.

Client configuration:
  {
    "mcpServers": {
      "resumedesk": {
        "command": "/path/to/resumedesk",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().BoolVarP(&tuiWatch, "watch", "w", false, "reload the seed file when it changes")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Store:    s.Store,
		Exporter: s.Exporter,
		Preview:  s.Preview,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if s.Watcher != nil && watchEnabled(s.Settings) {
		if err := forwardSeedChanges(ctx, s.Watcher, s.Store); err != nil {
			return err
		}
	}

	return server.Run(ctx)
}
