// File path: internal/docrank/rank.go
package docrank

import (
	"sort"
	"strings"
	"time"
)

// Score weights for included documents.
const (
	exactLiteralScore   = 20
	nameContainsLiteral = 15
	literalContainsName = 12
	nameContainsQuery   = 10
	vendorContainsQuery = 8
	contentOccurrence   = 2
	recencyBonus        = 1

	recencyWindow = 7 * 24 * time.Hour
)

// genericDocumentKeywords flag queries that are about uploaded files in
// general rather than a specific name.
var genericDocumentKeywords = []string{"overview", "file", "document", "upload", "pdf", "resume", "syllabus"}

// Engine scores caller-supplied documents against a query. It is stateless
// apart from the clock, which exists so tests can freeze the recency bonus.
type Engine struct {
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used for the recency bonus.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Rank filters the candidate documents through the inclusion heuristics and
// returns the included ones sorted by relevance, most relevant first. Ties
// keep input order. The full candidate set is rescanned on every call.
func (e *Engine) Rank(documents []Document, query string) []Match {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	literals := ExtractLiterals(query)
	now := e.now()

	matches := make([]Match, 0, len(documents))
	for _, doc := range documents {
		text := ExtractText(doc)
		if !included(doc, text, queryLower, literals) {
			continue
		}
		matches = append(matches, Match{
			Doc:   doc,
			Text:  text,
			Score: e.score(doc, text, queryLower, literals, now),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

func included(doc Document, text, queryLower string, literals []string) bool {
	docName := strings.ToLower(doc.Name)
	for _, literal := range literals {
		if strings.Contains(docName, literal) || strings.Contains(literal, stripExtension(docName)) {
			return true
		}
	}
	for _, keyword := range genericDocumentKeywords {
		if strings.Contains(queryLower, keyword) {
			return true
		}
	}
	if queryLower == "" {
		return false
	}
	return strings.Contains(docName, queryLower) ||
		strings.Contains(strings.ToLower(doc.VendorName), queryLower) ||
		strings.Contains(strings.ToLower(text), queryLower)
}

func (e *Engine) score(doc Document, text, queryLower string, literals []string, now time.Time) float64 {
	docName := strings.ToLower(doc.Name)
	var score float64
	for _, literal := range literals {
		switch {
		case docName == literal:
			score += exactLiteralScore
		case strings.Contains(docName, literal):
			score += nameContainsLiteral
		case strings.Contains(literal, stripExtension(docName)):
			score += literalContainsName
		}
	}
	if queryLower != "" {
		if strings.Contains(docName, queryLower) {
			score += nameContainsQuery
		}
		if strings.Contains(strings.ToLower(doc.VendorName), queryLower) {
			score += vendorContainsQuery
		}
		score += float64(contentOccurrence * strings.Count(strings.ToLower(text), queryLower))
	}
	if !doc.CreatedAt.IsZero() && now.Sub(doc.CreatedAt) < recencyWindow {
		score += recencyBonus
	}
	return score
}
