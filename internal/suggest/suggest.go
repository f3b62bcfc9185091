// Package suggest derives a short list of popular words from template names.
package suggest

import (
	"regexp"
	"sort"
	"strings"

	"memegrip/internal/domain"
)

const (
	DefaultPool  = 40
	DefaultLimit = 10
)

var nonWord = regexp.MustCompile(`[^\w-]`)

// Derive counts the words in the names of the first pool templates and
// returns up to limit of them, most frequent first. Ties keep the order in
// which the words were first seen. A nil list yields nil.
func Derive(templates []domain.Template, pool, limit int) []string {
	if templates == nil {
		return nil
	}
	if pool <= 0 {
		pool = DefaultPool
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(templates) > pool {
		templates = templates[:pool]
	}

	freq := make(map[string]int)
	var order []string
	for _, t := range templates {
		for _, field := range strings.Fields(t.Name) {
			word := Token(field)
			if word == "" {
				continue
			}
			if freq[word] == 0 {
				order = append(order, word)
			}
			freq[word]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

// Token lower-cases a word and strips everything but letters, digits,
// underscores and hyphens
func Token(word string) string {
	return nonWord.ReplaceAllString(strings.ToLower(word), "")
}
