package handler

import (
	"net/http"

	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/history"
	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/stream"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/config"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/logger"
)

// NewServer wires the gateway routes behind the shared middleware chain.
func NewServer(
	log logger.Interface,
	cfg config.AppConfig,
	historyUsecase history.Usecase,
	streamUsecase stream.Usecase,
) http.Handler {
	mux := http.NewServeMux()

	historyHandler := NewHistoryHandler(historyUsecase, log)
	streamHandler := NewStreamHandler(streamUsecase, log)
	healthHandler := NewHealthHandler()

	mux.HandleFunc("GET /api/historical", historyHandler.GetHistorical)
	mux.HandleFunc("GET /api/stream/{symbol}", streamHandler.Stream)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /stream-health", healthHandler.StreamHealth)

	var handler http.Handler = mux
	handler = corsMiddleware(cfg)(handler)
	handler = requestIDMiddleware(handler)

	return handler
}
