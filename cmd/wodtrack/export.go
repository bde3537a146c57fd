// ABOUTME: CLI commands for exporting and importing data.
// ABOUTME: Supports JSON and YAML via the versioned export envelope.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/wodtrack/internal/storage"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export all data",
	Long: `Export exercises, results, goals, and check-ins.

FORMATS:

  json   Full JSON export (suitable for backup/restore)
  yaml   YAML export (human-readable)

EXAMPLES:

  wodtrack export json                  # Export all data as JSON
  wodtrack export json -o backup.json   # Save to file
  wodtrack export yaml                  # Export as YAML`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]
		if format != "json" && format != "yaml" {
			return fmt.Errorf("unknown format: %s (use json or yaml)", format)
		}

		all, err := repo.GetAllData()
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		data, err := storage.EncodeExport(all, format)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from a backup",
	Long: `Import exercises, results, goals, and check-ins from a previously
exported JSON or YAML file. The format is detected from the content.

Duplicate entries (same ID) will cause an error.

EXAMPLES:

  wodtrack import backup.json
  wodtrack import backup.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		data, err := storage.DecodeExport(raw)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		if err := repo.ImportData(data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", args[0])
		fmt.Printf("  %d exercises, %d results, %d goals, %d check-ins\n",
			len(data.Exercises), len(data.Logs), len(data.Goals), len(data.CheckIns))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
