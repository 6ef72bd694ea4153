package web

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	for _, name := range []string{"css/landing.css", "js/landing.js", "images/teacher.svg"} {
		_, err := fs.Stat(Static(), name)
		assert.NoError(t, err, name)
	}
}

// TestLandingScript_DelegatesTooltipListeners guards against per-element
// tooltip listeners: the script re-runs its htmx hook after every swap, so
// binding on elements there would stack duplicate handlers.
func TestLandingScript_DelegatesTooltipListeners(t *testing.T) {
	src, err := fs.ReadFile(Static(), "js/landing.js")
	require.NoError(t, err)
	script := string(src)

	assert.NotContains(t, script, "querySelectorAll(\"[data-tooltip-id")
	assert.NotContains(t, script, "el.addEventListener")
	assert.Contains(t, script, `document.addEventListener("mouseover", onEnter)`)
	assert.Contains(t, script, `document.addEventListener("focusin", onEnter)`)

	for _, line := range strings.Split(script, "\n") {
		if strings.Contains(line, `"htmx:afterSettle"`) {
			assert.NotContains(t, line, "tooltip", "tooltip setup must not re-run after swaps")
		}
	}
}
