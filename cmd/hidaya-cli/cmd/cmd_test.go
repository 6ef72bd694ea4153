package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flags keep their values between executions of the shared command tree.
	contentDir, annotateOutput, renderOut = "", "table", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "hidaya-cli "))
}

func TestAnnotateCommand(t *testing.T) {
	t.Run("table output", func(t *testing.T) {
		out, err := run(t, "annotate", "**Ijazah**-certified **Mystery** teachers")
		require.NoError(t, err)
		assert.Contains(t, out, "KIND")
		assert.Contains(t, out, `"Ijazah"`)
		assert.Contains(t, out, "Traditional certification")
		assert.Contains(t, out, "(not in glossary)")
	})

	t.Run("json output", func(t *testing.T) {
		out, err := run(t, "annotate", "--output=json", "Weekly **Tajweed** review")
		require.NoError(t, err)
		assert.Contains(t, out, `"kind": "term"`)
		assert.Contains(t, out, `"text": "Tajweed"`)
	})

	t.Run("glossary comes from the override directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "glossary.yaml"),
			[]byte("glossary:\n  Hifz: Memorisation of the Quran\n"), 0o644))

		out, err := run(t, "annotate", "--dir", dir, "Start your **Hifz** journey")
		require.NoError(t, err)
		assert.Contains(t, out, "Memorisation of the Quran")
	})

	t.Run("requires a line", func(t *testing.T) {
		_, err := run(t, "annotate")
		assert.Error(t, err)
	})
}

func TestContentValidateCommand(t *testing.T) {
	t.Run("embedded content is valid", func(t *testing.T) {
		out, err := run(t, "content", "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "✅ Content is valid")
		assert.Contains(t, out, "Tajweed Mastery")
		assert.Contains(t, out, "popular")
	})

	t.Run("override with two highlighted plans is rejected", func(t *testing.T) {
		dir := t.TempDir()
		override := `pricing:
  heading: Plans
  period: month
  plans:
    - title: One
      price: "10"
      highlighted: true
      features: ["Weekly class"]
    - title: Two
      price: "20"
      highlighted: true
      features: ["Daily class"]
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "zz-pricing.yaml"), []byte(override), 0o644))

		out, err := run(t, "content", "validate", "--dir", dir)
		require.Error(t, err)
		assert.Contains(t, out, "❌ Content is invalid")
	})
}

func TestRenderCommand(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		out, err := run(t, "render")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
		assert.Contains(t, out, `id="pricing"`)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "index.html")
		out, err := run(t, "render", "--out", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Wrote")

		html, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(html), "Most Popular")
	})
}
