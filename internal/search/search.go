package search

import (
	"strings"

	"github.com/tormodhaugland/pl/internal/model"
)

// Filter returns the projects whose name contains query, ignoring case.
// Relative order is kept. An empty query returns a copy of all, never all
// itself.
func Filter(all []model.Project, query string) []model.Project {
	q := strings.ToLower(query)

	if q == "" {
		out := make([]model.Project, len(all))
		copy(out, all)
		return out
	}

	out := make([]model.Project, 0, len(all))
	for _, p := range all {
		if Matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether p's lowercased name contains the already
// lowercased query.
func Matches(p model.Project, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(p.Name), lowerQuery)
}
