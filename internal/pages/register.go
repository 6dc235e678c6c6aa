package pages

import (
	"strings"

	"github.com/shopqa/storefront/internal/models"
)

const (
	genderMale           = "#gender-male"
	genderFemale         = "#gender-female"
	firstNameField       = "#FirstName"
	lastNameField        = "#LastName"
	emailField           = "#Email"
	passwordField        = "#Password"
	confirmPasswordField = "#ConfirmPassword"
	registerButton       = "#register-button"
	resultMessage        = ".result"
	fieldErrors          = ".field-validation-error, .validation-summary-errors li"
)

// Registration outcomes as the shop words them
const (
	RegistrationCompletedText = "Your registration completed"
	EmailExistsText           = "The specified email already exists"
)

// RegisterPage is the account registration form
type RegisterPage struct {
	*Base
}

// NewRegisterPage creates the registration page object
func NewRegisterPage(base *Base) *RegisterPage {
	return &RegisterPage{Base: base}
}

// Open navigates to the registration form
func (p *RegisterPage) Open() error {
	return p.Navigate("/register")
}

// Register fills the form with u and submits it. Empty fields are cleared
// rather than skipped.
func (p *RegisterPage) Register(u models.User) error {
	gender := genderFemale
	if u.Gender == models.GenderMale {
		gender = genderMale
	}
	if err := p.Click(gender); err != nil {
		return err
	}

	fields := []struct{ selector, value string }{
		{firstNameField, u.FirstName},
		{lastNameField, u.LastName},
		{emailField, u.Email},
		{passwordField, u.Password},
		{confirmPasswordField, u.ConfirmPassword},
	}
	for _, f := range fields {
		if err := p.Fill(f.selector, f.value); err != nil {
			return err
		}
	}

	return p.Click(registerButton)
}

// Completed reports whether the registration success message is shown
func (p *RegisterPage) Completed() (bool, error) {
	ok, err := p.Exists(resultMessage)
	if err != nil || !ok {
		return false, err
	}
	text, err := p.Text(resultMessage)
	if err != nil {
		return false, err
	}
	return strings.Contains(text, RegistrationCompletedText), nil
}

// ValidationErrors returns the visible validation messages
func (p *RegisterPage) ValidationErrors() ([]string, error) {
	texts, err := p.page.Locator(fieldErrors).AllInnerTexts()
	if err != nil {
		return nil, err
	}
	var errs []string
	for _, t := range texts {
		if t = strings.TrimSpace(t); t != "" {
			errs = append(errs, t)
		}
	}
	return errs, nil
}

// EmailTaken reports whether the registration was rejected as a duplicate email
func (p *RegisterPage) EmailTaken() (bool, error) {
	errs, err := p.ValidationErrors()
	if err != nil {
		return false, err
	}
	for _, e := range errs {
		if contains(e, EmailExistsText) {
			return true, nil
		}
	}
	return false, nil
}
