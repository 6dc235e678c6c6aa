package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopqa/storefront/internal/models"
	"github.com/shopqa/storefront/internal/query"
	"github.com/shopqa/storefront/internal/repository"
)

func TestScenarioHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		target         string
		expectedStatus int
		expectedKind   string
	}{
		{
			name:           "default kind",
			method:         http.MethodGet,
			target:         "/api/scenarios",
			expectedStatus: http.StatusOK,
			expectedKind:   "happy_path",
		},
		{
			name:           "named kind",
			method:         http.MethodGet,
			target:         "/api/scenarios?kind=express_checkout&seed=3",
			expectedStatus: http.StatusOK,
			expectedKind:   "express_checkout",
		},
		{
			name:           "unknown kind is rejected",
			method:         http.MethodGet,
			target:         "/api/scenarios?kind=nope",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad seed",
			method:         http.MethodGet,
			target:         "/api/scenarios?seed=abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "method not allowed - POST",
			method:         http.MethodPost,
			target:         "/api/scenarios",
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewScenarioHandler(nil)
			req := httptest.NewRequest(tt.method, tt.target, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedKind != "" {
				var response map[string]any
				if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if response["kind"] != tt.expectedKind {
					t.Errorf("expected kind %q, got %v", tt.expectedKind, response["kind"])
				}
			}

			if tt.expectedStatus == http.StatusBadRequest {
				var response ErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
					t.Fatalf("failed to decode error response: %v", err)
				}
				if response.Message == "" {
					t.Error("expected error message")
				}
			}
		})
	}
}

func TestScenarioHandler_SeedIsReproducible(t *testing.T) {
	handler := NewScenarioHandler(nil)
	get := func() string {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/scenarios?kind=bulk_order&seed=42", nil))
		return w.Body.String()
	}

	first, second := get(), get()

	if first != second {
		t.Errorf("expected identical bodies for the same seed:\n%s\n%s", first, second)
	}
}

func TestScenarioHandler_KindList(t *testing.T) {
	handler := NewScenarioHandler(nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/scenarios?kind=guest_checkout,registration_errors", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var response []map[string]any
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(response))
	}
	if invalid, ok := response[1]["invalidUsers"].([]any); !ok || len(invalid) != 3 {
		t.Errorf("expected 3 invalid users, got %v", response[1]["invalidUsers"])
	}
}

func TestUsersHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedCount  int
	}{
		{"default count", "/api/users", http.StatusOK, 1},
		{"several users", "/api/users?count=5&seed=1", http.StatusOK, 5},
		{"zero users", "/api/users?count=0", http.StatusOK, 0},
		{"negative count", "/api/users?count=-1", http.StatusBadRequest, 0},
		{"count too large", "/api/users?count=100000", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			NewUsersHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var users []models.User
			if err := json.NewDecoder(w.Body).Decode(&users); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(users) != tt.expectedCount {
				t.Errorf("expected %d users, got %d", tt.expectedCount, len(users))
			}
			for _, u := range users {
				if err := u.Validate(); err != nil {
					t.Errorf("generated user is invalid: %v", err)
				}
			}
		})
	}
}

func TestExtractHandler_ServeHTTP(t *testing.T) {
	markup := `<html><body>
		<div class="header-links"><a href="/cart">Shopping cart (2)</a></div>
		<table class="cart">
			<tr><th>Product</th><th>Price</th></tr>
			<tr class="cart-item-row"><td class="product"><a href="/p">Book</a></td><td><span class="product-unit-price">10.00</span></td><td><input class="qty-input" value="2"></td></tr>
		</table>
		<span class="order-total">$20.00</span>
		</body></html>`

	handler := NewExtractHandler(query.NewExtractor(nil), nil)

	t.Run("summarizes the snapshot", func(t *testing.T) {
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/extract", strings.NewReader(markup)))

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		var sum query.Summary
		if err := json.NewDecoder(w.Body).Decode(&sum); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if sum.CartCount != 2 {
			t.Errorf("expected cart count 2, got %d", sum.CartCount)
		}
		if sum.CartRows != 1 {
			t.Errorf("expected 1 cart row, got %d", sum.CartRows)
		}
		if sum.Total == nil || *sum.Total != 20 {
			t.Errorf("expected total 20, got %v", sum.Total)
		}
		if sum.CalculatedTotal == nil || *sum.CalculatedTotal != 20 {
			t.Errorf("expected calculated total 20, got %v", sum.CalculatedTotal)
		}
	})

	t.Run("method not allowed - GET", func(t *testing.T) {
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/extract", nil))

		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected status 405, got %d", w.Code)
		}
	})
}

// MockAccountService is a mock implementation of services.AccountService for testing
type MockAccountService struct {
	RecordFunc func(models.User) (*models.Account, error)
	ListFunc   func(int) ([]*models.Account, error)
}

func (m *MockAccountService) Record(user models.User) (*models.Account, error) {
	if m.RecordFunc != nil {
		return m.RecordFunc(user)
	}
	return &models.Account{Email: user.Email}, nil
}

func (m *MockAccountService) Reusable() (*models.Account, error) {
	return nil, models.ErrAccountNotFound
}

func (m *MockAccountService) Credentials(email string) (models.User, error) {
	return models.User{}, models.ErrAccountNotFound
}

func (m *MockAccountService) MarkLogin(email string) error {
	return nil
}

func (m *MockAccountService) List(limit int) ([]*models.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(limit)
	}
	return nil, nil
}

func TestAccountsHandler_ServeHTTP(t *testing.T) {
	validUser := `{"gender":"Female","firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"Test123!","confirmPassword":"Test123!"}`

	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		recordError    error
		listError      error
		expectedStatus int
	}{
		{
			name:           "list accounts",
			method:         http.MethodGet,
			target:         "/api/accounts",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "zero limit",
			method:         http.MethodGet,
			target:         "/api/accounts?limit=0",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "list error",
			method:         http.MethodGet,
			target:         "/api/accounts",
			listError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "record account",
			method:         http.MethodPost,
			target:         "/api/accounts",
			body:           validUser,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "record invalid user",
			method:         http.MethodPost,
			target:         "/api/accounts",
			body:           validUser,
			recordError:    models.ErrInvalidEmail,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "record duplicate",
			method:         http.MethodPost,
			target:         "/api/accounts",
			body:           validUser,
			recordError:    repository.ErrDuplicateEmail,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "malformed body",
			method:         http.MethodPost,
			target:         "/api/accounts",
			body:           "{",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "method not allowed - DELETE",
			method:         http.MethodDelete,
			target:         "/api/accounts",
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockAccountService{
				RecordFunc: func(user models.User) (*models.Account, error) {
					if tt.recordError != nil {
						return nil, tt.recordError
					}
					return &models.Account{Email: user.Email}, nil
				},
				ListFunc: func(limit int) ([]*models.Account, error) {
					if limit != defaultAccountLimit {
						t.Errorf("expected limit %d, got %d", defaultAccountLimit, limit)
					}
					return nil, tt.listError
				},
			}
			handler := NewAccountsHandler(mockService, nil)

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.name == "list accounts" && strings.TrimSpace(w.Body.String()) != "[]" {
				t.Errorf("expected empty JSON array, got %s", w.Body.String())
			}
		})
	}
}
