// File path: internal/docrank/types.go
package docrank

import "time"

// Document is the normalized view of an uploaded file consumed by the
// relevance engine. It is constructed fresh per query by the caller and
// never retained between calls.
type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	FileType   string    `json:"file_type,omitempty"`
	Status     string    `json:"status,omitempty"`
	VendorName string    `json:"vendor_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	// FileContent carries the raw base64 payload when the storage layer
	// provides one. TextContent is the derived text; when empty the engine
	// derives it via ExtractText, which always yields a non-empty string.
	FileContent string `json:"file_content,omitempty"`
	TextContent string `json:"text_content,omitempty"`
}

// Match is a document that passed the inclusion filter, with its derived
// text and relevance score attached.
type Match struct {
	Doc   Document
	Text  string
	Score float64
}
