package pages

import "strings"

const (
	loginButton        = "input[value='Log in']"
	rememberMeCheckbox = "#RememberMe"
	loginErrors        = ".validation-summary-errors, .field-validation-error, .message-error"
)

// LoginPage is the customer login form
type LoginPage struct {
	*Base
}

// NewLoginPage creates the login page object
func NewLoginPage(base *Base) *LoginPage {
	return &LoginPage{Base: base}
}

// Open navigates to the login form
func (p *LoginPage) Open() error {
	return p.Navigate("/login")
}

// Login submits the credentials. The remember-me box is ticked only when it exists.
func (p *LoginPage) Login(email, password string, rememberMe bool) error {
	if err := p.Fill(emailField, email); err != nil {
		return err
	}
	if err := p.Fill(passwordField, password); err != nil {
		return err
	}
	if rememberMe {
		if ok, err := p.Exists(rememberMeCheckbox); err == nil && ok {
			if err := p.page.Locator(rememberMeCheckbox).Check(); err != nil {
				return err
			}
		}
	}
	return p.Click(loginButton)
}

// Failed reports whether the page shows a login error or is still the login form
func (p *LoginPage) Failed() (bool, error) {
	hasError, err := p.Exists(loginErrors)
	if err != nil {
		return false, err
	}
	return hasError || strings.Contains(p.URL(), "/login"), nil
}
