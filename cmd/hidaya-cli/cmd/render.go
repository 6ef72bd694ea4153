package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nfrund/hidaya/internal/content"
	"github.com/nfrund/hidaya/internal/rendering"
	"github.com/nfrund/hidaya/internal/view"
	"github.com/nfrund/hidaya/web/src/templates/pages"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Export the landing page as static HTML",
	Long: `Render writes the complete landing page, in the light theme, to a file or
stdout. Static assets are referenced under /static and are not copied.

Examples:
  hidaya-cli render > index.html
  hidaya-cli render --out=dist/index.html`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		injector := newInjector()
		provider, err := do.Invoke[*content.Provider](injector)
		if err != nil {
			return err
		}
		renderer := do.MustInvoke[*rendering.UniversalRenderer](injector)

		page := pages.Landing(pages.LandingProps{
			Content: provider.Current(),
			Theme:   view.ThemeLight,
			Year:    time.Now().Year(),
		})
		html, err := renderer.RenderComponent(context.Background(), page)
		if err != nil {
			return fmt.Errorf("failed to render landing page: %w", err)
		}

		if renderOut == "" {
			_, err = cmd.OutOrStdout().Write(html)
			return err
		}
		if err := os.WriteFile(renderOut, html, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", renderOut, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d bytes to %s\n", len(html), renderOut)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderOut, "out", "", "file to write instead of stdout")
	rootCmd.AddCommand(renderCmd)
}
