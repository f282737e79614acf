// File path: internal/intent/classifier.go
package intent

import (
	"math"
	"strings"
)

const (
	exactPatternBonus = 0.6
	patternBonus      = 0.3
	entityBonus       = 0.4

	greetingConfidence = 0.95
	defaultConfidence  = 0.3
)

var greetingWords = []string{"hi", "hello", "hey", "greetings"}

// Classification is the result of matching one query against the table.
type Classification struct {
	Intent     string
	Entities   []string
	Confidence float64
}

// Classify returns the single best-scoring intent for the query. Simple
// greeting words short-circuit to the greeting intent; otherwise every
// intent is scanned in definition order and a strictly greater score is
// required to displace the current best, so ties keep the earlier intent.
// The floor is the "general" intent at confidence 0.3.
func (c *Classifier) Classify(query string) Classification {
	queryLower := strings.ToLower(strings.TrimSpace(query))

	for _, word := range greetingWords {
		if queryLower == word {
			return Classification{
				Intent:     Greeting,
				Entities:   []string{"greeting"},
				Confidence: greetingConfidence,
			}
		}
	}

	best := Classification{Intent: General, Confidence: defaultConfidence}
	if queryLower == "" {
		return best
	}
	for _, in := range c.intents {
		var score float64
		var found []string
		for _, pattern := range in.Patterns {
			if queryLower == pattern {
				score += exactPatternBonus
			} else if strings.Contains(queryLower, pattern) {
				score += patternBonus
			}
		}
		for _, entity := range in.Entities {
			if strings.Contains(queryLower, entity) {
				score += entityBonus
				found = append(found, entity)
			}
		}
		if score > best.Confidence {
			best = Classification{
				Intent:     in.Name,
				Entities:   found,
				Confidence: math.Min(score, 1.0),
			}
		}
	}
	return best
}
