package cmd

import (
	"github.com/nfrund/hidaya/cmd/hidaya-cli/internal/format"
	"github.com/nfrund/hidaya/internal/annotate"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

var annotateOutput string

var annotateCmd = &cobra.Command{
	Use:   "annotate <line>",
	Short: "Split a feature line into text and glossary terms",
	Long: `Annotate renders a pricing feature line the way the site does. Terms wrapped
in double asterisks are looked up in the glossary of the loaded content.

Examples:
  hidaya-cli annotate "**Ijazah**-certified instructors"
  hidaya-cli annotate --output=json "Weekly **Tajweed** review"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		glossary, err := do.Invoke[annotate.Glossary](newInjector())
		if err != nil {
			return err
		}

		segments := annotate.Render(args[0], glossary)
		if annotateOutput == "json" {
			return format.SegmentsJSON(cmd.OutOrStdout(), segments)
		}
		format.SegmentsTable(cmd.OutOrStdout(), segments)
		return nil
	},
}

func init() {
	annotateCmd.Flags().StringVarP(&annotateOutput, "output", "o", "table", "output format (table|json)")
	rootCmd.AddCommand(annotateCmd)
}
