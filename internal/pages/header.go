package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/shopqa/storefront/internal/query"
)

// Header selectors shared by every page of the shop
const (
	registerLink = ".ico-register"
	loginLink    = ".ico-login, a[href='/login']"
	logoutLink   = ".ico-logout"
	cartLink     = ".header-links a[href='/cart'], #topcartlink, .ico-cart"
	accountLink  = ".ico-account"
	searchBox    = "#small-searchterms"
	searchButton = "input[value='Search']"

	searchResultsURL = "**/search**"
)

// Header is the site header component
type Header struct {
	*Base
	extractor *query.Extractor
}

// NewHeader creates the header component over base
func NewHeader(base *Base, extractor *query.Extractor) *Header {
	if extractor == nil {
		extractor = query.NewExtractor(base.logger.Named("query"))
	}
	return &Header{Base: base, extractor: extractor}
}

// CartCount reads the cart item count shown in the header, 0 when it cannot be found
func (h *Header) CartCount() (int, error) {
	s, err := h.Snapshot()
	if err != nil {
		return 0, err
	}
	return h.extractor.ExtractCount(s), nil
}

// IsLoggedIn reports whether the header offers a logout link
func (h *Header) IsLoggedIn() (bool, error) {
	return h.Exists(logoutLink)
}

// LoggedInAs returns the account email shown in the header
func (h *Header) LoggedInAs() (string, error) {
	return h.Text(accountLink)
}

// Logout clicks the logout link
func (h *Header) Logout() error {
	return h.Click(logoutLink)
}

// Search submits term through the header search box and waits for the results page
func (h *Header) Search(term string) error {
	if err := h.Fill(searchBox, term); err != nil {
		return err
	}
	if err := h.Click(searchButton); err != nil {
		return err
	}
	if err := h.page.WaitForURL(searchResultsURL, playwright.PageWaitForURLOptions{Timeout: h.millis()}); err != nil {
		return fmt.Errorf("search results did not load: %w", err)
	}
	return nil
}

// GoToCart follows the header cart link
func (h *Header) GoToCart() error {
	return h.Click(cartLink)
}

// GoToRegister follows the header register link
func (h *Header) GoToRegister() error {
	return h.Click(registerLink)
}

// GoToLogin follows the header login link
func (h *Header) GoToLogin() error {
	return h.Click(loginLink)
}
