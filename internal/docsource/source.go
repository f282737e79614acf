// File path: internal/docsource/source.go
package docsource

import (
	"context"

	"github.com/vendorvault/assistant/internal/docrank"
)

// Source supplies the candidate document set for a chat turn. The chat
// handler falls back to it when a request carries no inline documents.
type Source interface {
	Documents(ctx context.Context) ([]docrank.Document, error)
}

// Static is a fixed in-memory document set, useful for tests and demos.
type Static []docrank.Document

func (s Static) Documents(context.Context) ([]docrank.Document, error) {
	out := make([]docrank.Document, len(s))
	copy(out, s)
	return out, nil
}
