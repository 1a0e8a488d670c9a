// Package main implements the tasklists CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tasklists",
	Short: "Task lists with priorities, due dates and a terminal UI",
	Long: `tasklists keeps named, colored task lists in a local store and offers
an interactive terminal UI plus scriptable subcommands.

Examples:
  tasklists run "/list new Work"
  tasklists add "Ship release" --priority high --due tomorrow
  tasklists show --view list --sort priority
  tasklists export --format yaml > backup.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

var (
	configPath string
	backend    string
	dataPath   string
	logLevel   string
	logFormat  string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./tasklists.toml when present)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Storage backend: file|sqlite|memory")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text|json")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
