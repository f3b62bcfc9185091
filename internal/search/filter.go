package search

import (
	"strings"

	"memegrip/internal/domain"
)

// Normalize trims and lower-cases a query
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Filter returns the templates whose name contains the query,
// case-insensitively, in their original order. An empty or whitespace-only
// query returns the full list.
func Filter(templates []domain.Template, query string) []domain.Template {
	q := Normalize(query)
	if q == "" {
		return templates
	}

	results := make([]domain.Template, 0)
	for _, t := range templates {
		if strings.Contains(strings.ToLower(t.Name), q) {
			results = append(results, t)
		}
	}
	return results
}
