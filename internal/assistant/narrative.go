// File path: internal/assistant/narrative.go
package assistant

import (
	"fmt"
	"strings"

	"github.com/vendorvault/assistant/internal/docrank"
)

const (
	overviewPreviewLimit = 500
	generalPreviewLimit  = 200
	candidateLimit       = 3
)

// buildNarrative renders the document half of an answer. A specific file
// query (one that names a file) gets a full overview when it resolves to a
// single document, a short candidate list when it stays ambiguous; general
// queries get content previews of the top matches.
func buildNarrative(query string, matches []docrank.Match) string {
	if len(matches) == 0 {
		return ""
	}
	literals := docrank.ExtractLiterals(query)
	if len(literals) == 0 {
		return generalPreviews(matches)
	}
	if len(matches) == 1 {
		return fileOverview(matches[0])
	}
	if match, ok := findNamed(matches, literals); ok {
		return fileOverview(match)
	}
	return candidateList(matches)
}

func findNamed(matches []docrank.Match, literals []string) (docrank.Match, bool) {
	for _, match := range matches {
		name := strings.ToLower(match.Doc.Name)
		for _, literal := range literals {
			if strings.Contains(name, literal) {
				return match, true
			}
		}
	}
	return docrank.Match{}, false
}

func fileOverview(match docrank.Match) string {
	doc := match.Doc
	var b strings.Builder
	fmt.Fprintf(&b, "📄 **File Overview: %s**\n\n", doc.Name)
	b.WriteString("**📋 Document Details:**\n")
	fmt.Fprintf(&b, "• **File Name:** %s\n", doc.Name)
	fmt.Fprintf(&b, "• **File Type:** %s\n", orDefault(doc.FileType, "Not specified"))
	fmt.Fprintf(&b, "• **Status:** %s\n", doc.Status)
	fmt.Fprintf(&b, "• **Uploaded:** %s\n", doc.CreatedAt.Format("Jan 2, 2006"))
	fmt.Fprintf(&b, "• **Vendor:** %s\n", orDefault(doc.VendorName, "Not specified"))

	if len(match.Text) > 100 {
		b.WriteString("\n**📄 Content Preview:**\n")
		b.WriteString(trimText(match.Text, overviewPreviewLimit))
		b.WriteString("\n")
	}

	b.WriteString("\n**✅ Analysis:**\nThis document has been successfully uploaded and verified in your VendorVault system. ")
	b.WriteString(classify(doc.Name))
	return b.String()
}

func classify(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "resume"):
		return "This appears to be a resume document, which is commonly used for vendor personnel verification and compliance purposes."
	case strings.Contains(lower, "syllabus"):
		return "This appears to be an educational syllabus document, which may be used for training or certification compliance."
	default:
		return "You can review, download, or manage this document through the VendorVault dashboard."
	}
}

func candidateList(matches []docrank.Match) string {
	total := len(matches)
	if len(matches) > candidateLimit {
		matches = matches[:candidateLimit]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "I found %d documents that might match your query:\n\n", total)
	for i, match := range matches {
		fmt.Fprintf(&b, "%d. **%s** - %s\n", i+1, match.Doc.Name, match.Doc.Status)
	}
	b.WriteString("\nCould you clarify which document you'd like to know more about?")
	return b.String()
}

func generalPreviews(matches []docrank.Match) string {
	if len(matches) > candidateLimit {
		matches = matches[:candidateLimit]
	}
	var b strings.Builder
	b.WriteString("Based on your uploaded documents, here's what I found:\n\n")
	for _, match := range matches {
		fmt.Fprintf(&b, "📄 **%s** (%s)\n%s\n\n", match.Doc.Name,
			orDefault(match.Doc.VendorName, "Unknown Vendor"),
			trimText(match.Text, generalPreviewLimit))
	}
	return strings.TrimRight(b.String(), "\n")
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func trimText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
