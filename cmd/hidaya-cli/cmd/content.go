package cmd

import (
	"fmt"

	"github.com/nfrund/hidaya/cmd/hidaya-cli/internal/format"
	"github.com/nfrund/hidaya/internal/content"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// contentCmd represents the content command
var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect site content",
	Long: `The content command checks the YAML content the site is rendered from.

Available subcommands:
  validate  Load every content file and report validation problems

Examples:
  # Validate the embedded content
  hidaya-cli content validate

  # Validate an override directory layered over the embedded content
  hidaya-cli content validate --dir=./content`,
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate site content",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := do.Invoke[*content.Provider](newInjector())
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "❌ Content is invalid: %v\n", err)
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✅ Content is valid")
		format.ContentSummary(cmd.OutOrStdout(), provider.Current())
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentValidateCmd)
	rootCmd.AddCommand(contentCmd)
}
