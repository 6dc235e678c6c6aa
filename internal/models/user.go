package models

import (
	"errors"
	"regexp"
	"strings"
)

// Gender is the value of the registration form's gender radio group
type Gender string

// Genders accepted by the registration form
const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// MinPasswordLength is the shortest password the shop accepts on registration
const MinPasswordLength = 6

// Registration errors
var (
	ErrMissingName      = errors.New("first and last name are required")
	ErrInvalidEmail     = errors.New("email address is malformed")
	ErrPasswordTooShort = errors.New("password is shorter than the minimum length")
	ErrPasswordMismatch = errors.New("password and confirmation do not match")
	ErrInvalidGender    = errors.New("gender must be Male or Female")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s passes the standard email format check
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// User holds the fields of the shop's registration form
type User struct {
	Gender          Gender `json:"gender"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// FullName returns "First Last"
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Validate returns the first registration rule the user violates, or nil
func (u User) Validate() error {
	if u.Gender != GenderMale && u.Gender != GenderFemale {
		return ErrInvalidGender
	}
	if u.FirstName == "" || u.LastName == "" {
		return ErrMissingName
	}
	if !IsValidEmail(u.Email) {
		return ErrInvalidEmail
	}
	if len(u.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if u.Password != u.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}
