// File path: internal/kb/types.go
package kb

import (
	"fmt"
	"strings"
)

// Category is the closed set of topical groupings a knowledge entry can
// belong to. Categories are parsed from configuration at load time so the
// composer can switch on them exhaustively instead of comparing strings.
type Category int

const (
	CategoryConversation Category = iota
	CategoryProject
	CategoryRoles
	CategoryTechnical
	CategoryFeatures
	CategoryCompliance
	CategoryAI
)

var categoryNames = map[Category]string{
	CategoryConversation: "conversation",
	CategoryProject:      "project",
	CategoryRoles:        "roles",
	CategoryTechnical:    "technical",
	CategoryFeatures:     "features",
	CategoryCompliance:   "compliance",
	CategoryAI:           "ai",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCategory resolves a configuration string into a Category.
func ParseCategory(value string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for cat, name := range categoryNames {
		if name == normalized {
			return cat, nil
		}
	}
	return 0, fmt.Errorf("unknown knowledge category %q", value)
}

// Entry is a static canned-answer record. Entries are defined once at
// process start and never mutated, so they are safe to share across
// concurrent searches. Content is an opaque string; any markup inside it is
// the rendering layer's problem.
type Entry struct {
	ID       string
	Category Category
	Content  string
	Keywords []string
	Context  string
	Priority int
}

// Match pairs an entry with its relevance score for one query. Scores rank
// results within a single query only and are not comparable across queries.
type Match struct {
	Entry Entry
	Score float64
}
