// File path: internal/api/server.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vendorvault/assistant/internal/assistant"
	"github.com/vendorvault/assistant/internal/common"
	"github.com/vendorvault/assistant/internal/docsource"
	"github.com/vendorvault/assistant/internal/kb"
)

type Server struct {
	router   chi.Router
	composer *assistant.Composer
	registry *kb.Registry
	source   docsource.Source
	store    *docsource.FileStore
	metrics  *metrics
}

// NewServer wires the composer, knowledge registry and document source into
// an HTTP API. The source may be nil, in which case chat requests must carry
// their documents inline.
func NewServer(composer *assistant.Composer, registry *kb.Registry, source docsource.Source) (*Server, error) {
	if composer == nil {
		return nil, fmt.Errorf("composer required")
	}
	if registry == nil {
		return nil, fmt.Errorf("knowledge registry required")
	}
	s := &Server{
		router:   chi.NewRouter(),
		composer: composer,
		registry: registry,
		source:   source,
		metrics:  newMetrics(),
	}
	if store, ok := source.(*docsource.FileStore); ok {
		s.store = store
	}
	s.routes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	logger.Info("api: configuring routes")
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.NewString()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)
			duration := time.Since(start)
			s.metrics.observe(r.Method, r.URL.Path, recorder.status, duration)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path,
				"status", recorder.status, "dur", duration, "request_id", requestID, "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Get("/metrics", s.metrics.handler())

	s.router.Get("/v1/assistant", s.handleCapabilities)
	s.router.Post("/v1/assistant/chat", s.handleChat)
	s.router.Post("/v1/assistant/reset", s.handleReset)
	s.router.Get("/v1/assistant/search", s.handleSearch)
	s.router.Get("/v1/documents", s.handleDocuments)
	s.router.Post("/v1/documents", s.handleDocumentUpload)
	s.router.Get("/v1/logs", s.handleLogs)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
