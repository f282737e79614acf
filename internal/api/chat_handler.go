// File path: internal/api/chat_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vendorvault/assistant/internal/assistant"
	"github.com/vendorvault/assistant/internal/common"
	"github.com/vendorvault/assistant/internal/docrank"
)

type chatRequest struct {
	Message   string             `json:"message"`
	Topic     string             `json:"context,omitempty"`
	Role      string             `json:"userRole,omitempty"`
	Documents []docrank.Document `json:"documents,omitempty"`
}

type chatResponse struct {
	Response         string   `json:"response"`
	Sources          []string `json:"sources"`
	Confidence       float64  `json:"confidence"`
	Suggestions      []string `json:"suggestions"`
	Intent           string   `json:"intent"`
	IntentConfidence float64  `json:"intentConfidence"`
	DocumentsFound   int      `json:"documentsFound"`
	Thinking         string   `json:"thinking,omitempty"`
	Timestamp        string   `json:"timestamp"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: chat decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		logger.Warn("api: chat message missing")
		writeError(w, http.StatusBadRequest, fmt.Errorf("message required"))
		return
	}
	logger.Info("api: chat request received", "message_length", len(req.Message),
		"role", req.Role, "inline_documents", len(req.Documents))

	documents := req.Documents
	if len(documents) == 0 && s.source != nil {
		loaded, err := s.source.Documents(r.Context())
		if err != nil {
			// Documents only enrich the answer; a broken source should not
			// fail the whole chat turn.
			logger.Error("api: document source unavailable", "error", err)
		} else {
			documents = loaded
		}
	}

	result := s.composer.Respond(assistant.Request{
		Message:   req.Message,
		Topic:     req.Topic,
		Role:      req.Role,
		Documents: documents,
	})
	logger.Info("api: chat response composed", "intent", result.Intent,
		"confidence", result.Confidence, "documents_found", result.DocumentsFound)

	writeJSON(w, http.StatusOK, chatResponse{
		Response:         result.Answer,
		Sources:          result.Sources,
		Confidence:       result.Confidence,
		Suggestions:      result.Suggestions,
		Intent:           result.Intent,
		IntentConfidence: result.IntentConfidence,
		DocumentsFound:   result.DocumentsFound,
		Thinking:         result.Thinking,
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.composer.Reset()
	common.Logger().Info("api: conversation history cleared")
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (s *Server) handleCapabilities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":    "VendorVault AI Assistant",
		"status":  "ready",
		"history": s.composer.History(),
		"capabilities": []string{
			"knowledge_base_search",
			"intent_classification",
			"document_relevance",
			"response_composition",
		},
	})
}
