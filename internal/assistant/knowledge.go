// File path: internal/assistant/knowledge.go
package assistant

import (
	"math"
	"strings"

	"github.com/vendorvault/assistant/internal/kb"
)

const fallbackAnswer = "I don't have specific information about that topic in my VendorVault knowledge base. " +
	"Could you please rephrase your question or ask about vendor management, compliance, documents, or AI features?"

const (
	fallbackConfidence = 0.3
	greetingConfidence = 0.95
)

// greetingPhrases is broader than the classifier's single-word set so that
// multi-word salutations still get the conversational answer verbatim. The
// check runs before any scoring: a salutation anywhere at the edge of the
// query short-circuits to the greeting entry.
var greetingPhrases = []string{
	"hi", "hello", "hey", "greetings",
	"good morning", "good afternoon", "good evening",
}

// knowledgeReply is the knowledge-base half of an answer. The banner is kept
// separate from the body so document narratives can replace it.
type knowledgeReply struct {
	banner     string
	body       string
	sources    []string
	confidence float64
}

func (c *Composer) knowledgeAnswer(query string) knowledgeReply {
	if isGreetingPhrase(query) {
		if greeting, ok := c.registry.Greeting(); ok {
			return knowledgeReply{
				body:       greeting.Content,
				sources:    []string{greeting.Context},
				confidence: greetingConfidence,
			}
		}
	}

	matches := c.registry.Search(query, knowledgeLimit)
	if len(matches) == 0 {
		return knowledgeReply{
			body:       fallbackAnswer,
			sources:    []string{"AI Assistant"},
			confidence: fallbackConfidence,
		}
	}

	top := matches[0]
	confidence := math.Min(top.Score/knowledgeScoreDivisor, 1.0)

	sources := make([]string, 0, len(matches))
	for _, match := range matches {
		sources = append(sources, match.Entry.Context)
	}

	// Conversational entries (greetings, thanks) read poorly under a
	// project banner, so their content is returned verbatim.
	if top.Entry.Category == kb.CategoryConversation {
		return knowledgeReply{
			body:       top.Entry.Content,
			sources:    sources,
			confidence: confidence,
		}
	}

	var body strings.Builder
	body.WriteString(top.Entry.Content)
	if len(matches) > 1 {
		body.WriteString("\n\n**Related Information:**\n")
		for _, match := range matches[1:] {
			body.WriteString("• " + match.Entry.Context + "\n")
		}
	}

	return knowledgeReply{
		banner:     "**🏢 " + projectName + "** - " + top.Entry.Context + "\n\n",
		body:       body.String(),
		sources:    sources,
		confidence: confidence,
	}
}

func isGreetingPhrase(query string) bool {
	normalized := strings.ToLower(strings.TrimSpace(query))
	for _, phrase := range greetingPhrases {
		if normalized == phrase ||
			strings.HasPrefix(normalized, phrase+" ") ||
			strings.HasSuffix(normalized, " "+phrase) {
			return true
		}
	}
	return false
}
