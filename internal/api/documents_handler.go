// File path: internal/api/documents_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vendorvault/assistant/internal/common"
	"github.com/vendorvault/assistant/internal/docrank"
)

type documentSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	FileType   string `json:"file_type,omitempty"`
	Status     string `json:"status"`
	VendorName string `json:"vendor_name,omitempty"`
	CreatedAt  string `json:"created_at"`
}

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request) {
	if s.source == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"documents": []documentSummary{}, "count": 0})
		return
	}
	docs, err := s.source.Documents(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	summaries := make([]documentSummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, documentSummary{
			ID:         doc.ID,
			Name:       doc.Name,
			FileType:   doc.FileType,
			Status:     doc.Status,
			VendorName: doc.VendorName,
			CreatedAt:  doc.CreatedAt.Format("2006-01-02"),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"documents": summaries,
		"count":     len(summaries),
	})
}

func (s *Server) handleDocumentUpload(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	if s.store == nil {
		writeError(w, http.StatusNotImplemented, fmt.Errorf("document store not configured"))
		return
	}
	var docs []docrank.Document
	if err := json.NewDecoder(r.Body).Decode(&docs); err != nil {
		logger.Warn("api: document upload decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(docs) == 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("no documents provided"))
		return
	}
	if err := s.store.Append(r.Context(), docs); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: documents stored", "count", len(docs))
	writeJSON(w, http.StatusCreated, map[string]interface{}{"stored": len(docs)})
}
