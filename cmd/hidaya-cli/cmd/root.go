package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hidaya-cli",
	Short: "Hidaya Academy site tool",
	Long: `hidaya-cli works with the content of the Hidaya Academy landing site.

Available commands:
  annotate   Show how a feature line is split into text and glossary terms
  content    Load and validate site content
  render     Export the landing page as a static HTML file
  version    Print the version

Use "hidaya-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// contentDir is an optional directory whose YAML files override the embedded content.
var contentDir string

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&contentDir, "dir", os.Getenv("CONTENT_DIR"),
		"directory of YAML files layered over the embedded content")
}
