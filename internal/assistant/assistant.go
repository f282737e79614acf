// File path: internal/assistant/assistant.go
package assistant

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/vendorvault/assistant/internal/docrank"
	"github.com/vendorvault/assistant/internal/intent"
	"github.com/vendorvault/assistant/internal/kb"
)

const (
	projectName = "VendorVault"

	// documentBoost is added to the confidence when uploaded documents
	// contributed to the answer.
	documentBoost = 0.2

	// knowledgeScoreDivisor converts a raw knowledge score into a [0,1]
	// confidence estimate.
	knowledgeScoreDivisor = 50

	defaultHistoryLimit = 5
	knowledgeLimit      = 3
)

// Request carries one query into the composer. Documents are the candidate
// set supplied by the caller; the composer rescans them per call.
type Request struct {
	Message   string
	Topic     string
	Role      string
	Documents []docrank.Document
}

// Result is the composed answer for a single query. It is derived
// transiently and holds no references back into the composer.
type Result struct {
	Answer           string   `json:"response"`
	Sources          []string `json:"sources"`
	Confidence       float64  `json:"confidence"`
	Suggestions      []string `json:"suggestions"`
	Intent           string   `json:"intent"`
	IntentConfidence float64  `json:"intentConfidence"`
	DocumentsFound   int      `json:"documentsFound"`
	Thinking         string   `json:"thinking,omitempty"`
}

// Composer orchestrates the intent classifier, knowledge scorer and
// document relevance engine into a single answer. All collaborators are
// read-only after construction; the only mutable state is the bounded
// conversation history, which never affects scoring.
type Composer struct {
	registry   *kb.Registry
	classifier *intent.Classifier
	engine     *docrank.Engine

	mu           sync.Mutex
	history      []string
	historyLimit int
}

// Option configures a Composer.
type Option func(*Composer)

// WithHistoryLimit caps the retained conversation history.
func WithHistoryLimit(limit int) Option {
	return func(c *Composer) {
		if limit > 0 {
			c.historyLimit = limit
		}
	}
}

func New(registry *kb.Registry, classifier *intent.Classifier, engine *docrank.Engine, opts ...Option) *Composer {
	c := &Composer{
		registry:     registry,
		classifier:   classifier,
		engine:       engine,
		historyLimit: defaultHistoryLimit,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.engine == nil {
		c.engine = docrank.NewEngine()
	}
	return c
}

// Respond composes an answer for the query. It never returns a domain
// error: missing or malformed inputs degrade to the general intent and the
// low-confidence fallback answer.
func (c *Composer) Respond(req Request) Result {
	c.remember(req.Message)

	cls := c.classifier.Classify(req.Message)
	knowledge := c.knowledgeAnswer(req.Message)

	var docMatches []docrank.Match
	if len(req.Documents) > 0 {
		docMatches = c.engine.Rank(req.Documents, req.Message)
	}
	narrative := buildNarrative(req.Message, docMatches)

	var answer string
	if narrative != "" {
		// Document content anchors the answer; the project banner would be
		// a redundant header here.
		answer = narrative + "\n\n---\n\n" + knowledge.body
	} else {
		answer = knowledge.banner + knowledge.body
	}
	if closing := roleClosing(req.Role); closing != "" {
		answer += closing
	}

	confidence := math.Max(knowledge.confidence, cls.Confidence)
	if len(docMatches) > 0 {
		confidence = math.Min(confidence+documentBoost, 1.0)
	}

	sources := append([]string(nil), knowledge.sources...)
	for _, match := range docMatches {
		sources = append(sources, "Document: "+match.Doc.Name)
	}

	return Result{
		Answer:           answer,
		Sources:          dedupe(sources),
		Confidence:       confidence,
		Suggestions:      c.suggestions(cls.Intent, len(docMatches) > 0),
		Intent:           cls.Intent,
		IntentConfidence: cls.Confidence,
		DocumentsFound:   len(docMatches),
		Thinking:         buildThinking(req.Message, cls, len(req.Documents)),
	}
}

var documentSuggestions = []string{
	"Tell me more about these documents",
	"What's the status of my uploads?",
	"Show me document details",
	"Analyze document compliance",
}

func (c *Composer) suggestions(intentName string, withDocuments bool) []string {
	base := c.classifier.Suggestions(intentName)
	if !withDocuments {
		return base
	}
	mixed := append([]string(nil), documentSuggestions[:2]...)
	if len(base) > 2 {
		base = base[:2]
	}
	return append(mixed, base...)
}

func roleClosing(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "admin":
		return "\n\n**👑 Admin Perspective:**\nAs an admin, you have full system access and can manage all vendors, review documents, and configure system settings."
	case "vendor":
		return "\n\n**🏢 Vendor Perspective:**\nAs a vendor, you can upload documents, track your compliance status, and communicate with the compliance team."
	case "auditor":
		return "\n\n**🔍 Auditor Perspective:**\nAs an auditor, you can review and verify documents, assess compliance risks, and generate audit reports."
	default:
		return ""
	}
}

func buildThinking(query string, cls intent.Classification, documentCount int) string {
	entities := strings.Join(cls.Entities, ", ")
	if entities == "" {
		entities = "none detected"
	}
	documentLine := "• No uploaded documents to analyze"
	if documentCount > 0 {
		documentLine = "• Analyzing document content for relevance"
	}
	return strings.Join([]string{
		"🤔 **AI Thinking Process:**",
		"",
		"**Query Analysis:**",
		fmt.Sprintf("• User asked: %q", query),
		fmt.Sprintf("• Detected intent: %s (%d%% confidence)", cls.Intent, int(math.Round(cls.Confidence*100))),
		"• Key entities: " + entities,
		"",
		"**Document Search:**",
		fmt.Sprintf("• Found %d uploaded documents", documentCount),
		documentLine,
		"• Searching VendorVault knowledge base...",
		"",
		"**Response Generation:**",
		"• Synthesizing document information",
		"• Combining with system knowledge",
		"• Ensuring accuracy and completeness",
	}, "\n")
}

func (c *Composer) remember(query string) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = append(c.history, trimmed)
	if len(c.history) > c.historyLimit {
		c.history = c.history[len(c.history)-c.historyLimit:]
	}
}

// History returns a copy of the retained recent queries, oldest first.
func (c *Composer) History() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.history))
	copy(out, c.history)
	return out
}

// Reset clears the conversation history.
func (c *Composer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = nil
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
