// Package format prints CLI results as tables or JSON.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nfrund/hidaya/internal/annotate"
	"github.com/nfrund/hidaya/internal/content"
)

// SegmentsTable writes segments as an aligned table.
func SegmentsTable(w io.Writer, segments []annotate.Segment) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "KIND\tTEXT\tEXPLANATION")
	fmt.Fprintln(tw, "----\t----\t-----------")

	if len(segments) == 0 {
		fmt.Fprintln(tw, "No segments")
		return
	}
	for _, s := range segments {
		explanation := "-"
		if s.IsTerm() {
			explanation = "(not in glossary)"
			if s.Known {
				explanation = truncateString(s.Explanation, 60)
			}
		}
		fmt.Fprintf(tw, "%s\t%q\t%s\n", s.Kind, s.Text, explanation)
	}
}

// SegmentsJSON writes segments as indented JSON.
func SegmentsJSON(w io.Writer, segments []annotate.Segment) error {
	if segments == nil {
		segments = []annotate.Segment{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(segments); err != nil {
		return fmt.Errorf("failed to encode segments: %w", err)
	}
	return nil
}

// ContentSummary writes a short overview of the loaded content.
func ContentSummary(w io.Writer, snapshot content.Snapshot) {
	site := snapshot.Site

	fmt.Fprintf(w, "   Brand: %s\n", site.Brand.Name)
	fmt.Fprintf(w, "   Nav items: %d\n", len(site.Nav))
	fmt.Fprintf(w, "   Testimonials: %d\n", len(site.Testimonials))
	fmt.Fprintf(w, "   FAQs: %d\n", len(site.FAQs))
	fmt.Fprintf(w, "   Glossary terms: %d\n", snapshot.Glossary.Len())
	fmt.Fprintf(w, "   Plans: %d\n", len(site.Pricing.Plans))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()
	fmt.Fprintln(tw, "\n   TITLE\tPRICE\tFEATURES\tFLAGS")
	for _, plan := range site.Pricing.Plans {
		flags := "-"
		switch {
		case plan.Highlighted && plan.IsDiscounted():
			flags = "popular, " + plan.DiscountLabel() + " off"
		case plan.Highlighted:
			flags = "popular"
		case plan.IsDiscounted():
			flags = plan.DiscountLabel() + " off"
		}
		fmt.Fprintf(tw, "   %s\t%s\t%d\t%s\n", plan.Title, content.FormatPrice(plan.Price), len(plan.Features), flags)
	}
}

// truncateString truncates a string to at most maxLen runes
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
