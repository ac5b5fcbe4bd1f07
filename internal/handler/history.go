package handler

import (
	"net/http"

	"github.com/Joseph25Rejo/quarks-inngest/internal/domain/history"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/errors"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/logger"
)

// HistoryHandler serves the cached multi-resolution historical bundle.
type HistoryHandler struct {
	usecase history.Usecase
	logger  logger.Interface
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(usecase history.Usecase, log logger.Interface) *HistoryHandler {
	return &HistoryHandler{
		usecase: usecase,
		logger:  log,
	}
}

// GetHistorical handles GET /api/historical?symbol=<ticker>.
func (h *HistoryHandler) GetHistorical(w http.ResponseWriter, r *http.Request) {
	rawSymbol := r.URL.Query().Get("symbol")

	bundle, err := h.usecase.GetHistorical(r.Context(), rawSymbol)
	if err != nil {
		if errors.CodeOf(err) == errors.SymbolInvalidError {
			writeError(w, http.StatusBadRequest, "Symbol parameter is required")
			return
		}

		h.logger.ErrorContext(r.Context(), err,
			logger.Field{Key: "symbol", Value: rawSymbol})
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, bundle)
}
