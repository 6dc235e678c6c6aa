package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no registered account matches a lookup
var ErrAccountNotFound = errors.New("account not found")

// Account is a user that has been registered against the shop and can be
// reused by later login tests
type Account struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Password     string     `json:"password"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Gender       Gender     `json:"gender"`
	RegisteredAt time.Time  `json:"registeredAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}

// NewAccount records a successfully registered user. The user must pass Validate.
func NewAccount(u User) (*Account, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	return &Account{
		ID:           uuid.New().String(),
		Email:        u.Email,
		Password:     u.Password,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Gender:       u.Gender,
		RegisteredAt: time.Now(),
	}, nil
}

// User converts the account back into login-ready user data
func (a *Account) User() User {
	return User{
		Gender:          a.Gender,
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		Email:           a.Email,
		Password:        a.Password,
		ConfirmPassword: a.Password,
	}
}

// HasLoggedIn returns true if the account was used by a login test
func (a *Account) HasLoggedIn() bool {
	return a.LastLoginAt != nil
}
