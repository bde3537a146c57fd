// ABOUTME: Root Cobra command for wodtrack CLI.
// ABOUTME: Handles config load and storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/wodtrack/internal/config"
	"github.com/harperreed/wodtrack/internal/storage"
	"github.com/harperreed/wodtrack/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	cfg   *config.Config
	repo  storage.Repository
	track *tracker.Tracker
)

var rootCmd = &cobra.Command{
	Use:   "wodtrack",
	Short: "Personal workout performance tracker",
	Long: `Wodtrack tracks workout performances, personal records, goals, and recovery.

WHAT IT TRACKS:

  Exercises   benchmark WODs, lifts, monostructural work, skills
  Results     timed scores, loads, reps, rounds+reps, distances, calories
  Goals       target score + target date, with trend projection
  Recovery    daily check-ins scored into a fatigue alert

QUICK START:

  $ wodtrack exercise add Fran benchmark time        # Register an exercise
  $ wodtrack log Fran 4:55 --variant rx              # Log a result
  $ wodtrack pr Fran                                 # See your PRs
  $ wodtrack goal add Fran 4:30 2026-12-01           # Set a goal
  $ wodtrack goal progress <id>                      # Check pacing
  $ wodtrack checkin --energy 4 --soreness 2 --sleep 7.5
  $ wodtrack recovery                                # Today's fatigue score

SYNC:

  Sync data across devices using Charm Cloud (backend "charm" in config).
  Data is E2E encrypted with your SSH key.

  $ wodtrack sync link      # Link device to your Charm account
  $ wodtrack sync status    # Check sync status

MCP INTEGRATION:

  Run 'wodtrack mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "wodtrack": { "command": "wodtrack", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  SQLite under $XDG_DATA_HOME/wodtrack by default. Set "backend": "charm"
  in $XDG_CONFIG_HOME/wodtrack/config.json to store in Charm KV instead.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		track = tracker.New(repo, cfg.RecoveryConfig())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
