package keymap

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Rank orders bindings by how well they match query, best first. Substring
// matches on the description, action, or chord rank ahead of edit-distance
// matches; bindings further than maxDistance edits from the query are
// dropped. An empty query returns the input unchanged.
func Rank(query string, bindings []Binding) []Binding {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return bindings
	}
	const maxDistance = 5

	type scored struct {
		binding  Binding
		distance int
	}
	matches := make([]scored, 0, len(bindings))
	for _, b := range bindings {
		d, ok := score(q, b, maxDistance)
		if !ok {
			continue
		}
		matches = append(matches, scored{binding: b, distance: d})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})
	out := make([]Binding, len(matches))
	for i, m := range matches {
		out[i] = m.binding
	}
	return out
}

func score(query string, b Binding, maxDistance int) (int, bool) {
	candidates := []string{
		strings.ToLower(b.Description),
		strings.ToLower(string(b.Action)),
		b.Chord,
	}
	best := -1
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if strings.Contains(c, query) {
			// Substring hits rank by how early the match starts.
			return strings.Index(c, query), true
		}
		d := levenshtein.ComputeDistance(query, c)
		if d <= maxDistance && (best == -1 || d < best) {
			best = d
		}
	}
	if best == -1 {
		return 0, false
	}
	// Offset edit-distance scores past any plausible substring position.
	return 100 + best, true
}
