package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopqa/storefront/internal/models"
	"github.com/shopqa/storefront/internal/repository"
	"github.com/shopqa/storefront/internal/services"
	"go.uber.org/zap"
)

// defaultAccountLimit is the page size of GET /api/accounts
const defaultAccountLimit = 50

// AccountsHandler serves the account ledger at /api/accounts
type AccountsHandler struct {
	accountService services.AccountService
	logger         *zap.Logger
}

// NewAccountsHandler creates a new accounts handler
func NewAccountsHandler(accountService services.AccountService, logger *zap.Logger) *AccountsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountsHandler{accountService: accountService, logger: logger}
}

// ServeHTTP lists accounts on GET and records a registered user on POST
func (h *AccountsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet, http.MethodPost) {
		return
	}

	if r.Method == http.MethodPost {
		h.record(w, r)
		return
	}

	limit, err := intParam(r, "limit", defaultAccountLimit)
	if err != nil || limit == 0 {
		sendErrorResponse(w, "limit must be a positive integer", http.StatusBadRequest)
		return
	}

	accounts, err := h.accountService.List(limit)
	if err != nil {
		h.logger.Error("Error listing accounts", zap.Error(err))
		sendErrorResponse(w, "Failed to list accounts", http.StatusInternalServerError)
		return
	}
	if accounts == nil {
		accounts = []*models.Account{}
	}

	sendJSON(w, http.StatusOK, accounts)
}

func (h *AccountsHandler) record(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		sendErrorResponse(w, "Invalid user JSON", http.StatusBadRequest)
		return
	}

	account, err := h.accountService.Record(user)
	switch {
	case err == nil:
		sendJSON(w, http.StatusCreated, account)
	case errors.Is(err, repository.ErrDuplicateEmail):
		sendErrorResponse(w, err.Error(), http.StatusConflict)
	case isValidationError(err):
		sendErrorResponse(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error("Error recording account", zap.Error(err))
		sendErrorResponse(w, "Failed to record account", http.StatusInternalServerError)
	}
}

func isValidationError(err error) bool {
	for _, target := range []error{
		models.ErrInvalidGender,
		models.ErrMissingName,
		models.ErrInvalidEmail,
		models.ErrPasswordTooShort,
		models.ErrPasswordMismatch,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
