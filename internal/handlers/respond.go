// Package handlers serves generated test data and query extraction over HTTP
// for tooling that does not link the Go packages.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shopqa/storefront/internal/datagen"
	"github.com/shopqa/storefront/internal/observability"
	"go.uber.org/zap"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// sendJSON writes v as a JSON response with the given status
func sendJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		observability.L().Error("Error encoding response", zap.Error(err))
	}
}

// sendErrorResponse sends a JSON error response
func sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	sendJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

// allowMethod rejects the request with 405 unless it uses one of methods
func allowMethod(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	return false
}

// generatorFor returns a generator seeded from the "seed" query parameter, or
// an unseeded one when the parameter is absent
func generatorFor(r *http.Request) (*datagen.Generator, error) {
	raw := r.URL.Query().Get("seed")
	if raw == "" {
		return datagen.New(), nil
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("seed must be an integer: %q", raw)
	}
	return datagen.NewSeeded(seed), nil
}

// intParam reads a non-negative integer query parameter
func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer: %q", name, raw)
	}
	return n, nil
}
