// File path: internal/api/search_handler.go
package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/vendorvault/assistant/internal/common"
)

type searchResult struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Context  string  `json:"context"`
	Score    float64 `json:"score"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	query := r.URL.Query().Get("q")
	if query == "" {
		logger.Warn("api: search missing query parameter")
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing q parameter"))
		return
	}
	limit := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	logger.Info("api: search request", "query", query, "limit", limit)

	matches := s.registry.Search(query, limit)
	results := make([]searchResult, 0, len(matches))
	for _, match := range matches {
		results = append(results, searchResult{
			ID:       match.Entry.ID,
			Category: match.Entry.Category.String(),
			Context:  match.Entry.Context,
			Score:    match.Score,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
		"query":   query,
	})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	entries := common.LogEntries()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"logs":  entries,
		"count": len(entries),
	})
}
