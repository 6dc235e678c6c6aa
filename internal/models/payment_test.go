package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestLuhnValid(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{"4111111111111111", true},
		{"5555555555554444", true},
		{"378282246310005", true},
		{"4000000000000002", true},
		{"1234567890123456", false},
		{"4111-1111-1111-1111", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			if got := LuhnValid(tt.number); got != tt.want {
				t.Errorf("LuhnValid(%q) = %v, want %v", tt.number, got, tt.want)
			}
		})
	}
}

func TestCreditCard_IsExpired(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		year int
		want bool
	}{
		{"past year", 2020, true},
		{"current year", 2026, true},
		{"next year", 2027, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := &CreditCard{ExpiryYear: tt.year, ExpiryMonth: 12}
			if got := card.IsExpired(now); got != tt.want {
				t.Errorf("IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCreditCard_ExpiryMonthString(t *testing.T) {
	card := &CreditCard{ExpiryMonth: 3}
	if got := card.ExpiryMonthString(); got != "03" {
		t.Errorf("ExpiryMonthString() = %s, want 03", got)
	}
}

func TestCreditCard_MarshalJSON(t *testing.T) {
	card := &CreditCard{Number: "4111111111111111", HolderName: "Jane Doe", ExpiryMonth: 1, ExpiryYear: 2030, CVV: "737"}

	data, err := json.Marshal(card)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	body := string(data)
	for _, want := range []string{`"type":"credit_card"`, `"number":"4111111111111111"`, `"expiryYear":2030`} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %s in %s", want, body)
		}
	}
}

func TestAccount_RoundTripsUser(t *testing.T) {
	u := User{
		Gender:          GenderMale,
		FirstName:       "Alan",
		LastName:        "Turing",
		Email:           "alan.turing@example.com",
		Password:        "Test123!",
		ConfirmPassword: "Test123!",
	}

	account, err := NewAccount(u)
	if err != nil {
		t.Fatalf("NewAccount() unexpected error = %v", err)
	}
	if account.ID == "" {
		t.Error("Account ID should not be empty")
	}
	if account.HasLoggedIn() {
		t.Error("New account should not have logged in")
	}
	if got := account.User(); got != u {
		t.Errorf("User() = %+v, want %+v", got, u)
	}

	u.Email = "not-an-email"
	if _, err := NewAccount(u); err != ErrInvalidEmail {
		t.Errorf("NewAccount() error = %v, want %v", err, ErrInvalidEmail)
	}
}
