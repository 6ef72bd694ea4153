package cmd

import (
	"fmt"

	"github.com/nfrund/hidaya/internal/app"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of hidaya-cli",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "hidaya-cli %s\n", app.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
