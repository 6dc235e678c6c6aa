package handlers

import (
	"net/http"
	"strings"

	"github.com/shopqa/storefront/internal/factories"
	"github.com/shopqa/storefront/internal/scenarios"
	"go.uber.org/zap"
)

// ScenarioHandler serves GET /api/scenarios?kind=&seed=
type ScenarioHandler struct {
	logger *zap.Logger
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler(logger *zap.Logger) *ScenarioHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScenarioHandler{logger: logger}
}

// ServeHTTP builds the requested scenario. A comma-separated kind list yields
// an array; unknown kinds are rejected with 400.
func (h *ScenarioHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	gen, err := generatorFor(r)
	if err != nil {
		sendErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	factory := scenarios.New(factories.New(gen), h.logger)

	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = string(scenarios.HappyPath)
	}

	if kinds := strings.Split(kind, ","); len(kinds) > 1 {
		list, err := factory.CreateDataDrivenStrict(kinds)
		if err != nil {
			sendErrorResponse(w, err.Error(), http.StatusBadRequest)
			return
		}
		sendJSON(w, http.StatusOK, list)
		return
	}

	sc, err := factory.CreateStrict(kind)
	if err != nil {
		sendErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.logger.Debug("Scenario generated", zap.String("kind", string(sc.Kind)))
	sendJSON(w, http.StatusOK, sc)
}
