package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns up to limit entity names within a small edit distance of
// name, nearest first. Ties keep catalog order.
func (e *Engine) Suggest(name string, limit int) []string {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" || limit <= 0 {
		return nil
	}
	threshold := max(2, len([]rune(query))/3)

	type candidate struct {
		name string
		dist int
	}
	var candidates []candidate
	for _, entity := range e.entities {
		dist := levenshtein.ComputeDistance(query, strings.ToLower(entity.Name))
		if dist <= threshold {
			candidates = append(candidates, candidate{name: entity.Name, dist: dist})
		}
	}
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(a.dist, b.dist)
	})

	out := make([]string, 0, min(limit, len(candidates)))
	for _, c := range candidates[:min(limit, len(candidates))] {
		out = append(out, c.name)
	}
	return out
}
