// File path: cmd/vvassist/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/vendorvault/assistant/internal/api"
	"github.com/vendorvault/assistant/internal/assistant"
	"github.com/vendorvault/assistant/internal/common"
	"github.com/vendorvault/assistant/internal/config"
	"github.com/vendorvault/assistant/internal/docrank"
	"github.com/vendorvault/assistant/internal/docsource"
	"github.com/vendorvault/assistant/internal/intent"
	"github.com/vendorvault/assistant/internal/kb"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn("vvassist: .env file not loaded", "error", err)
	} else {
		logger.Info("vvassist: environment loaded from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("vvassist: config load failed", "error", err)
		fmt.Println("config error:", err)
		os.Exit(1)
	}

	addr := flag.String("addr", cfg.Addr, "listen address")
	docsPath := flag.String("docs", cfg.DocsPath, "path to the document store file")
	knowledgePath := flag.String("knowledge", cfg.KnowledgePath, "path to a knowledge table override (empty for embedded)")
	intentsPath := flag.String("intents", cfg.IntentsPath, "path to an intent table override (empty for embedded)")
	flag.Parse()

	logger.Info("vvassist: startup initiated", "addr", *addr, "docs", *docsPath)

	registry, err := loadRegistry(*knowledgePath)
	if err != nil {
		logger.Error("vvassist: knowledge base load failed", "error", err)
		fmt.Println("knowledge base error:", err)
		os.Exit(1)
	}
	logger.Info("vvassist: knowledge base ready", "entries", registry.Len())

	classifier, err := loadClassifier(*intentsPath)
	if err != nil {
		logger.Error("vvassist: intent table load failed", "error", err)
		fmt.Println("intent table error:", err)
		os.Exit(1)
	}

	store, err := docsource.NewFileStore(*docsPath)
	if err != nil {
		logger.Error("vvassist: document store init failed", "error", err)
		fmt.Println("document store error:", err)
		os.Exit(1)
	}

	composer := assistant.New(registry, classifier, docrank.NewEngine(),
		assistant.WithHistoryLimit(cfg.HistoryLimit))

	server, err := api.NewServer(composer, registry, store)
	if err != nil {
		logger.Error("vvassist: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	httpServer := &http.Server{Addr: *addr, Handler: server}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("vvassist: listening", "addr", *addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Info("vvassist: shutdown signal received", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Error("vvassist: shutdown failed", "error", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("vvassist: server stopped", "error", err)
			fmt.Println("server error:", err)
			os.Exit(1)
		}
	}
}

func loadRegistry(path string) (*kb.Registry, error) {
	if strings.TrimSpace(path) == "" {
		return kb.Load()
	}
	return kb.LoadFile(path)
}

func loadClassifier(path string) (*intent.Classifier, error) {
	if strings.TrimSpace(path) == "" {
		return intent.Load()
	}
	return intent.LoadFile(path)
}
