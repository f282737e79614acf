// File path: internal/docrank/extract.go
package docrank

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

var readableRuns = regexp.MustCompile(`[a-zA-Z\s]{10,}`)

// ExtractText derives searchable text for a document. Text files are
// base64-decoded directly; binary files get a metadata summary plus a
// best-effort preview of readable runs found in the decoded bytes. The
// result is never empty, so scoring never operates on a missing value.
func ExtractText(doc Document) string {
	if text := strings.TrimSpace(doc.TextContent); text != "" {
		return doc.TextContent
	}
	if strings.TrimSpace(doc.FileContent) == "" {
		return fmt.Sprintf("Document: %s (%s) - Status: %s - No content available", doc.Name, doc.FileType, doc.Status)
	}
	if isTextFile(doc) {
		if decoded, err := base64.StdEncoding.DecodeString(doc.FileContent); err == nil {
			return string(decoded)
		}
		return fmt.Sprintf("Document: %s - Unable to extract content", doc.Name)
	}

	var summary strings.Builder
	summary.WriteString("Document: " + doc.Name + "\n")
	summary.WriteString("Type: " + doc.FileType + "\n")
	summary.WriteString("Status: " + doc.Status + "\n")
	if !doc.CreatedAt.IsZero() {
		summary.WriteString("Uploaded: " + doc.CreatedAt.Format("Jan 2, 2006") + "\n")
	}
	if doc.VendorName != "" {
		summary.WriteString("Vendor: " + doc.VendorName + "\n")
	}
	if preview := binaryPreview(doc.FileContent); preview != "" {
		summary.WriteString("\nExtracted text preview: " + preview + "...")
	}
	return summary.String()
}

func isTextFile(doc Document) bool {
	return strings.Contains(strings.ToLower(doc.FileType), "text") ||
		strings.HasSuffix(strings.ToLower(doc.Name), ".txt")
}

// binaryPreview scans decoded bytes for runs of readable text. Compressed
// formats like PDF rarely yield anything useful.
func binaryPreview(content string) string {
	decoded, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return ""
	}
	runs := readableRuns.FindAllString(string(decoded), 3)
	if len(runs) == 0 {
		return ""
	}
	joined := strings.Join(runs, " ")
	if len(joined) > 200 {
		joined = joined[:200]
	}
	return joined
}
