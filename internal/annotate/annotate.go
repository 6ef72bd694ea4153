// Package annotate turns feature lines such as "**Ijazah**-certified
// instructors" into ordered segments of plain text and highlighted glossary
// terms. The package performs no escaping; callers render the segments.
package annotate

import (
	"fmt"
	"regexp"
	"strings"
)

// marker delimits a highlighted term on both sides.
const marker = "**"

// termPattern matches the shortest "**...**" span. It never spans a newline.
var termPattern = regexp.MustCompile(`\*\*.*?\*\*`)

// Kind tags a Segment as plain text or a highlighted term.
type Kind int

const (
	KindText Kind = iota
	KindTerm
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindTerm:
		return "term"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText encodes the kind as its string name for JSON responses.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind written by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "text":
		*k = KindText
	case "term":
		*k = KindTerm
	default:
		return fmt.Errorf("unknown segment kind %q", text)
	}
	return nil
}

// Segment is a single unit of rendered feature text.
type Segment struct {
	Kind Kind `json:"kind"`
	// Text is the literal text for KindText, or the term without markers for KindTerm.
	Text string `json:"text"`
	// Explanation is the glossary entry for a term. Only meaningful when Known is true.
	Explanation string `json:"explanation,omitempty"`
	Known       bool   `json:"known,omitempty"`
}

// PlainText creates a text segment.
func PlainText(value string) Segment {
	return Segment{Kind: KindText, Text: value}
}

// HighlightedTerm creates a term segment. An empty explanation with known set
// to false means the term is not in the glossary.
func HighlightedTerm(term, explanation string, known bool) Segment {
	return Segment{Kind: KindTerm, Text: term, Explanation: explanation, Known: known}
}

// IsTerm reports whether the segment is a highlighted term.
func (s Segment) IsTerm() bool {
	return s.Kind == KindTerm
}

// Render splits line on "**term**" spans and resolves each term against the
// glossary. Adjacent plain fragments are merged and empty ones dropped, so the
// result never holds two consecutive text segments. A "****" span encloses
// nothing and stays plain text. Unbalanced markers are left as text.
func Render(line string, glossary Glossary) []Segment {
	var segments []Segment
	appendText := func(value string) {
		if value == "" {
			return
		}
		if n := len(segments); n > 0 && segments[n-1].Kind == KindText {
			segments[n-1].Text += value
			return
		}
		segments = append(segments, PlainText(value))
	}

	cursor := 0
	for _, loc := range termPattern.FindAllStringIndex(line, -1) {
		appendText(line[cursor:loc[0]])
		fragment := line[loc[0]:loc[1]]
		cursor = loc[1]

		term, ok := enclosed(fragment)
		if !ok {
			appendText(fragment)
			continue
		}
		explanation, known := glossary.Lookup(term)
		segments = append(segments, HighlightedTerm(term, explanation, known))
	}
	appendText(line[cursor:])

	return segments
}

// enclosed strips the markers from a delimited fragment. It fails when the
// fragment encloses nothing.
func enclosed(fragment string) (string, bool) {
	if len(fragment) <= 2*len(marker) ||
		!strings.HasPrefix(fragment, marker) || !strings.HasSuffix(fragment, marker) {
		return "", false
	}
	return fragment[len(marker) : len(fragment)-len(marker)], true
}

// Plain concatenates the textual content of segments, which reconstructs the
// original line without the markers around highlighted terms.
func Plain(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Terms returns the highlighted terms in order of appearance.
func Terms(segments []Segment) []string {
	var terms []string
	for _, s := range segments {
		if s.IsTerm() {
			terms = append(terms, s.Text)
		}
	}
	return terms
}
