// File path: internal/kb/search.go
package kb

import (
	"sort"
	"strings"
)

const (
	// greetingSentinelScore guarantees the greeting entry ranks first for
	// simple greeting queries. It must exceed any attainable keyword score
	// (max priority * 3 * keyword count with the current tables). Kept as a
	// hard constant rather than derived from the priority table; see
	// DESIGN.md.
	greetingSentinelScore = 1000

	// minTokenLength excludes short noise tokens ("is", "a") from
	// content-level matching.
	minTokenLength = 2
)

var simpleGreetings = []string{"hi", "hello", "hey", "greetings"}

// IsSimpleGreeting reports whether the trimmed lowercase query exactly
// equals one of the fixed greeting words.
func IsSimpleGreeting(query string) bool {
	normalized := strings.ToLower(strings.TrimSpace(query))
	for _, word := range simpleGreetings {
		if normalized == word {
			return true
		}
	}
	return false
}

// Search scores every entry against the query and returns the top matches,
// most relevant first. Ties keep definition order. An empty query or an
// empty registry yields an empty result, never an error.
func (r *Registry) Search(query string, limit int) []Match {
	if limit <= 0 {
		limit = 5
	}
	queryLower := strings.ToLower(strings.TrimSpace(query))
	tokens := queryTokens(queryLower)
	greeting := IsSimpleGreeting(query)

	matches := make([]Match, 0, len(r.entries))
	for _, entry := range r.entries {
		score := scoreEntry(entry, queryLower, tokens, greeting)
		if score <= 0 {
			continue
		}
		matches = append(matches, Match{Entry: entry, Score: score})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func scoreEntry(entry Entry, queryLower string, tokens []string, greeting bool) float64 {
	if entry.ID == GreetingEntryID {
		if greeting {
			return greetingSentinelScore
		}
		return 0
	}
	if queryLower == "" {
		return 0
	}
	priority := float64(entry.Priority)
	var score float64
	for _, keyword := range entry.Keywords {
		keywordLower := strings.ToLower(keyword)
		if queryLower == keywordLower {
			score += priority * 3
		} else if strings.Contains(queryLower, keywordLower) {
			score += priority * 2
		}
	}
	contentLower := strings.ToLower(entry.Content)
	for _, token := range tokens {
		if strings.Contains(contentLower, token) {
			score += priority * 0.5
		}
	}
	if strings.Contains(queryLower, entry.Category.String()) {
		score += priority * 1.5
	}
	if strings.Contains(queryLower, strings.ToLower(entry.ID)) {
		score += priority * 1.2
	}
	return score
}

func queryTokens(queryLower string) []string {
	fields := strings.Fields(queryLower)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if len(field) > minTokenLength {
			tokens = append(tokens, field)
		}
	}
	return tokens
}
