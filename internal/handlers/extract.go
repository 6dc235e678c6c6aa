package handlers

import (
	"net/http"

	"github.com/shopqa/storefront/internal/query"
	"go.uber.org/zap"
)

// maxSnapshotBytes bounds the markup accepted by /api/extract
const maxSnapshotBytes = 8 << 20

// ExtractHandler serves POST /api/extract with an HTML body
type ExtractHandler struct {
	extractor *query.Extractor
	logger    *zap.Logger
}

// NewExtractHandler creates a new extract handler
func NewExtractHandler(extractor *query.Extractor, logger *zap.Logger) *ExtractHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExtractHandler{extractor: extractor, logger: logger}
}

// ServeHTTP parses the posted markup and returns every extracted value
func (h *ExtractHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	snapshot, err := query.ParseReader(http.MaxBytesReader(w, r.Body, maxSnapshotBytes))
	if err != nil {
		h.logger.Warn("Rejected snapshot", zap.Error(err))
		sendErrorResponse(w, "Failed to read HTML body", http.StatusBadRequest)
		return
	}

	sendJSON(w, http.StatusOK, h.extractor.Summarize(snapshot))
}
