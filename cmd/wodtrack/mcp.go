// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/wodtrack/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your workout data through
a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "wodtrack": {
        "command": "wodtrack",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  add_exercise    Add an exercise to the catalog
  list_exercises  List catalog exercises
  log_result      Record a result (reports achieved goals)
  list_logs       List results for an exercise
  delete_log      Delete a result by ID
  get_prs         Grouped personal records for an exercise
  add_goal        Set a target score and date
  list_goals      List goals by status
  goal_progress   Progress and trend projection for a goal
  check_in        Record today's training or rest day
  get_recovery    Today's fatigue score and alert level

AVAILABLE RESOURCES:

  wodtrack://summary    Every exercise with its current best
  wodtrack://goals      Active goals with progress and pacing
  wodtrack://recovery   Today's fatigue assessment`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, cfg.RecoveryConfig())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
