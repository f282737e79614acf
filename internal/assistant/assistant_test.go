// File path: internal/assistant/assistant_test.go
package assistant

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vendorvault/assistant/internal/docrank"
	"github.com/vendorvault/assistant/internal/intent"
	"github.com/vendorvault/assistant/internal/kb"
)

var frozen = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func newComposer(t *testing.T, opts ...Option) *Composer {
	t.Helper()
	registry, err := kb.Load()
	require.NoError(t, err)
	classifier, err := intent.Load()
	require.NoError(t, err)
	engine := docrank.NewEngine(docrank.WithClock(func() time.Time { return frozen }))
	return New(registry, classifier, engine, opts...)
}

func TestRespondGreetingVerbatim(t *testing.T) {
	c := newComposer(t)
	result := c.Respond(Request{Message: "hi"})

	require.Equal(t, intent.Greeting, result.Intent)
	require.InDelta(t, 0.95, result.IntentConfidence, 1e-9)
	require.True(t, strings.HasPrefix(result.Answer, "Hello! 👋 Welcome to VendorVault AI Assistant!"))
	require.NotContains(t, result.Answer, "**🏢 VendorVault** -")
	require.Contains(t, result.Sources, "Greeting and introduction")
	require.Zero(t, result.DocumentsFound)
}

func TestRespondMultiWordSalutation(t *testing.T) {
	c := newComposer(t)
	for _, query := range []string{"good morning", "Good Afternoon", "hello compliance", "hey there"} {
		result := c.Respond(Request{Message: query})
		require.True(t, strings.HasPrefix(result.Answer, "Hello! 👋 Welcome to VendorVault AI Assistant!"), "query %q", query)
		require.NotContains(t, result.Answer, "I don't have specific information", "query %q", query)
		require.NotContains(t, result.Answer, "**🏢 VendorVault** -", "query %q", query)
		require.Contains(t, result.Sources, "Greeting and introduction", "query %q", query)
		require.GreaterOrEqual(t, result.Confidence, 0.95, "query %q", query)
	}
}

func TestRespondKnowledgeWithBanner(t *testing.T) {
	c := newComposer(t)
	result := c.Respond(Request{Message: "What is VendorVault?"})

	require.Equal(t, intent.ProjectInfo, result.Intent)
	require.True(t, strings.HasPrefix(result.Answer, "**🏢 VendorVault** - General project information\n\n"))
	require.Contains(t, result.Answer, "vendor compliance management platform")
	require.Contains(t, result.Sources, "General project information")
	require.GreaterOrEqual(t, result.Confidence, 0.3)
	require.GreaterOrEqual(t, len(result.Suggestions), 2)
}

func TestRespondRelatedInformationListed(t *testing.T) {
	c := newComposer(t)
	result := c.Respond(Request{Message: "What is VendorVault?"})

	require.Contains(t, result.Answer, "**Related Information:**")
	require.GreaterOrEqual(t, len(result.Sources), 2)
}

func TestRespondSpecificFileOverview(t *testing.T) {
	c := newComposer(t)
	docs := []docrank.Document{
		{
			ID:        "d1",
			Name:      "resume.pdf",
			Status:    "verified",
			CreatedAt: frozen.AddDate(0, 0, -2),
			TextContent: "Jane Doe, senior compliance analyst with ten years of vendor audit " +
				"experience across regulated industries and large enterprise programs.",
		},
		{
			ID:          "d2",
			Name:        "notes.txt",
			Status:      "pending",
			CreatedAt:   frozen.AddDate(0, 0, -40),
			TextContent: "meeting notes",
		},
	}
	result := c.Respond(Request{Message: `show me "resume.pdf"`, Documents: docs})

	// notes.txt also passes inclusion (the query mentions "resume", a
	// generic document keyword) but the named file wins the narrative.
	require.Equal(t, 2, result.DocumentsFound)
	require.Contains(t, result.Answer, "📄 **File Overview: resume.pdf**")
	require.Contains(t, result.Answer, "• **File Type:** Not specified")
	require.Contains(t, result.Answer, "• **Status:** verified")
	require.Contains(t, result.Answer, "This appears to be a resume document")
	require.Contains(t, result.Answer, "\n\n---\n\n")
	require.NotContains(t, result.Answer, "**🏢 VendorVault** -")
	require.Contains(t, result.Sources, "Document: resume.pdf")
}

func TestRespondDocumentBoostAndCap(t *testing.T) {
	c := newComposer(t)
	docs := []docrank.Document{{
		ID:          "d1",
		Name:        "overview.pdf",
		Status:      "verified",
		CreatedAt:   frozen.AddDate(0, 0, -1),
		TextContent: "vendorvault compliance overview material",
	}}
	with := c.Respond(Request{Message: "show my files", Documents: docs})
	without := c.Respond(Request{Message: "show my files"})

	require.Equal(t, 1, with.DocumentsFound)
	require.Greater(t, with.Confidence, without.Confidence)
	require.LessOrEqual(t, with.Confidence, 1.0)
}

func TestRespondThanksIgnoresUnrelatedDocuments(t *testing.T) {
	c := newComposer(t)
	docs := []docrank.Document{{
		ID:          "d1",
		Name:        "contract.pdf",
		Status:      "verified",
		CreatedAt:   frozen.AddDate(0, 0, -3),
		TextContent: "service agreement terms",
	}}
	result := c.Respond(Request{Message: "thanks!", Documents: docs})

	require.Equal(t, intent.ThanksPositive, result.Intent)
	require.Zero(t, result.DocumentsFound)
	require.True(t, strings.HasPrefix(result.Answer, "You're very welcome!"))
	require.NotContains(t, result.Answer, "File Overview")
	require.NotContains(t, result.Sources, "Document: contract.pdf")
}

func TestRespondGenericFileQueryWithoutDocuments(t *testing.T) {
	c := newComposer(t)
	result := c.Respond(Request{Message: "show me my files"})

	require.Zero(t, result.DocumentsFound)
	require.NotContains(t, result.Answer, "Based on your uploaded documents")
	require.NotEmpty(t, result.Sources)
}

func TestRespondFallbackAnswer(t *testing.T) {
	c := newComposer(t)
	result := c.Respond(Request{Message: "zzz qqq xxyzzy"})

	require.Equal(t, intent.General, result.Intent)
	require.Contains(t, result.Answer, "I don't have specific information about that topic")
	require.Equal(t, []string{"AI Assistant"}, result.Sources)
	require.InDelta(t, 0.3, result.Confidence, 1e-9)
	require.GreaterOrEqual(t, len(result.Suggestions), 2)
}

func TestRespondRoleClosings(t *testing.T) {
	c := newComposer(t)
	for role, want := range map[string]string{
		"admin":   "👑 Admin Perspective",
		"vendor":  "🏢 Vendor Perspective",
		"auditor": "🔍 Auditor Perspective",
	} {
		result := c.Respond(Request{Message: "What is VendorVault?", Role: role})
		require.Contains(t, result.Answer, want, "role %s", role)
	}
	plain := c.Respond(Request{Message: "What is VendorVault?"})
	require.NotContains(t, plain.Answer, "Perspective")
}

func TestRespondSuggestionsWithDocuments(t *testing.T) {
	c := newComposer(t)
	docs := []docrank.Document{{
		ID:          "d1",
		Name:        "report.pdf",
		Status:      "verified",
		CreatedAt:   frozen.AddDate(0, 0, -1),
		TextContent: "quarterly compliance report for vendorvault",
	}}
	result := c.Respond(Request{Message: "Give me an overview of VendorVault", Documents: docs})

	require.Equal(t, "Tell me more about these documents", result.Suggestions[0])
	require.Len(t, result.Suggestions, 4)
}

func TestRespondThinkingTrace(t *testing.T) {
	c := newComposer(t)
	result := c.Respond(Request{Message: "What is VendorVault?"})

	require.Contains(t, result.Thinking, "🤔 **AI Thinking Process:**")
	require.Contains(t, result.Thinking, `User asked: "What is VendorVault?"`)
	require.Contains(t, result.Thinking, "Detected intent: project_info")
	require.Contains(t, result.Thinking, "Found 0 uploaded documents")
}

func TestHistoryBoundedAndReset(t *testing.T) {
	c := newComposer(t)
	for i := 0; i < 8; i++ {
		c.Respond(Request{Message: fmt.Sprintf("question %d", i)})
	}
	history := c.History()
	require.Len(t, history, defaultHistoryLimit)
	require.Equal(t, "question 3", history[0])
	require.Equal(t, "question 7", history[len(history)-1])

	c.Reset()
	require.Empty(t, c.History())

	c.Respond(Request{Message: "   "})
	require.Empty(t, c.History(), "blank queries are not recorded")
}

func TestRespondSourcesDeduped(t *testing.T) {
	c := newComposer(t)
	result := c.Respond(Request{Message: "What is VendorVault?"})

	seen := map[string]int{}
	for _, source := range result.Sources {
		seen[source]++
	}
	for source, count := range seen {
		require.Equal(t, 1, count, "duplicate source %q", source)
	}
}

func TestRespondBinaryDocumentPreview(t *testing.T) {
	c := newComposer(t)
	docs := []docrank.Document{{
		ID:          "d1",
		Name:        "scan.pdf",
		FileType:    "application/pdf",
		Status:      "verified",
		VendorName:  "Acme Corp",
		CreatedAt:   frozen.AddDate(0, 0, -1),
		FileContent: base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 binary payload without readable sections")),
	}}
	result := c.Respond(Request{Message: `open "scan.pdf"`, Documents: docs})

	require.Equal(t, 1, result.DocumentsFound)
	require.Contains(t, result.Answer, "File Overview: scan.pdf")
	require.Contains(t, result.Answer, "• **Vendor:** Acme Corp")
}
