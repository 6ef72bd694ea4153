package annotate

import "sort"

// Glossary is an immutable lookup table from a highlighted term to the
// explanation shown in its tooltip. Keys are matched exactly: no case folding
// and no trimming.
type Glossary struct {
	entries map[string]string
}

// NewGlossary builds a Glossary from the given entries. The map is copied, so
// later changes to it are not visible through the Glossary.
func NewGlossary(entries map[string]string) Glossary {
	copied := make(map[string]string, len(entries))
	for term, explanation := range entries {
		copied[term] = explanation
	}
	return Glossary{entries: copied}
}

// DefaultGlossary returns the academy's built-in terms.
func DefaultGlossary() Glossary {
	return NewGlossary(map[string]string{
		"Ijazah":         "Traditional certification granting permission to teach",
		"Sanad-Verified": "Curriculum verified through authentic scholarly chains",
		"Makharij":       "Proper articulation points of Arabic letters",
		"Tajweed":        "Rules of Quranic recitation",
		"Qira'at":        "Different methods of Quranic recitation",
	})
}

// Lookup returns the explanation for term. A miss is not an error.
func (g Glossary) Lookup(term string) (string, bool) {
	explanation, ok := g.entries[term]
	return explanation, ok
}

// Len returns the number of terms in the glossary.
func (g Glossary) Len() int {
	return len(g.entries)
}

// Terms returns all known terms in sorted order.
func (g Glossary) Terms() []string {
	terms := make([]string, 0, len(g.entries))
	for term := range g.entries {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
