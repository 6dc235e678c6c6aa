package handlers

import (
	"net/http"

	"github.com/shopqa/storefront/internal/factories"
)

// maxUsers bounds a single /api/users request
const maxUsers = 500

// UsersHandler serves GET /api/users?count=&seed=
type UsersHandler struct{}

// NewUsersHandler creates a new users handler
func NewUsersHandler() *UsersHandler {
	return &UsersHandler{}
}

// ServeHTTP returns count valid users with distinct emails
func (h *UsersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	count, err := intParam(r, "count", 1)
	if err != nil {
		sendErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	if count > maxUsers {
		sendErrorResponse(w, "count exceeds the per-request limit", http.StatusBadRequest)
		return
	}

	gen, err := generatorFor(r)
	if err != nil {
		sendErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	users, err := factories.New(gen).MultipleUsers(count)
	if err != nil {
		sendErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sendJSON(w, http.StatusOK, users)
}
