package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/ohlc"
	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/stream"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/logger"
)

// StreamHandler serves the live single-symbol tick stream over SSE.
type StreamHandler struct {
	usecase stream.Usecase
	logger  logger.Interface
}

// NewStreamHandler creates a new StreamHandler.
func NewStreamHandler(usecase stream.Usecase, log logger.Interface) *StreamHandler {
	return &StreamHandler{
		usecase: usecase,
		logger:  log,
	}
}

// Stream handles GET /api/stream/{symbol}.
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	rawSymbol := r.PathValue("symbol")
	if strings.TrimSpace(rawSymbol) == "" {
		writeError(w, http.StatusBadRequest, "Symbol parameter is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	sink := &sseSink{w: w, flusher: flusher}

	// r.Context() is cancelled when the peer disconnects, which is the
	// session's cancellation signal.
	if err := h.usecase.Run(r.Context(), rawSymbol, sink); err != nil {
		h.logger.ErrorContext(r.Context(), err,
			logger.Field{Key: "symbol", Value: rawSymbol})
	}
}

// sseSink writes stream events as server-sent events, flushing after each.
type sseSink struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

func (s *sseSink) Tick(tick ohlc.Tick) error {
	payload, err := json.Marshal(tick)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", payload); err != nil {
		return err
	}
	s.flusher.Flush()

	return nil
}

func (s *sseSink) Fail(event stream.ErrorEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, "event: error\ndata: %s\n\n", payload); err != nil {
		return err
	}
	s.flusher.Flush()

	return nil
}
