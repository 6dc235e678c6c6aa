package pages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopqa/storefront/internal/query"
)

const (
	removeCheckboxes  = ".remove-from-cart input[type='checkbox'], input[name*='removefromcart']"
	updateCartButton  = "input[value='Update shopping cart'], .update-cart-button"
	checkoutButton    = "#checkout, .checkout-button"
	termsCheckbox     = "#termsofservice, .terms-of-service"
	cartQuantityField = "tr.cart-item-row .qty-input, .cart tr input[name*='itemquantity']"
)

// CartPage is the shopping cart
type CartPage struct {
	*Base
	extractor *query.Extractor
}

// NewCartPage creates the cart page object
func NewCartPage(base *Base, extractor *query.Extractor) *CartPage {
	if extractor == nil {
		extractor = query.NewExtractor(base.logger.Named("query"))
	}
	return &CartPage{Base: base, extractor: extractor}
}

// Open navigates to the cart
func (p *CartPage) Open() error {
	return p.Navigate("/cart")
}

// Summary reads every cart value from the current markup
func (p *CartPage) Summary() (query.Summary, error) {
	s, err := p.Snapshot()
	if err != nil {
		return query.Summary{}, err
	}
	return p.extractor.Summarize(s), nil
}

// Lines returns the product rows of the cart
func (p *CartPage) Lines() ([]query.CartLine, error) {
	s, err := p.Snapshot()
	if err != nil {
		return nil, err
	}
	return query.CartLines(s), nil
}

// ItemRows counts the product rows, excluding header rows
func (p *CartPage) ItemRows() (int, error) {
	s, err := p.Snapshot()
	if err != nil {
		return 0, err
	}
	return query.CartRowCount(s), nil
}

// IsEmpty reports whether the empty cart message is shown
func (p *CartPage) IsEmpty() (bool, error) {
	s, err := p.Snapshot()
	if err != nil {
		return false, err
	}
	return query.IsEmptyCart(s), nil
}

// Contains reports whether a product row names productName
func (p *CartPage) Contains(productName string) (bool, error) {
	lines, err := p.Lines()
	if err != nil {
		return false, err
	}
	for _, l := range lines {
		if contains(l.Name, productName) {
			return true, nil
		}
	}
	return false, nil
}

// UpdateQuantity sets the quantity of the row at index and submits the cart
func (p *CartPage) UpdateQuantity(index, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("quantity must not be negative, got %d", quantity)
	}
	fields := p.page.Locator(cartQuantityField)
	n, err := fields.Count()
	if err != nil {
		return err
	}
	if index < 0 || index >= n {
		return fmt.Errorf("%w: quantity field %d of %d", ErrNotFound, index, n)
	}
	if err := fields.Nth(index).Fill(strconv.Itoa(quantity)); err != nil {
		return fmt.Errorf("failed to set quantity: %w", err)
	}
	return p.Click(updateCartButton)
}

// RemoveAll ticks every remove box and submits the cart. An empty cart is left as is.
func (p *CartPage) RemoveAll() error {
	boxes := p.page.Locator(removeCheckboxes)
	n, err := boxes.Count()
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		if err := boxes.Nth(i).Check(); err != nil {
			return fmt.Errorf("failed to tick remove box %d: %w", i, err)
		}
	}
	return p.Click(updateCartButton)
}

// Checkout accepts the terms of service and proceeds to checkout
func (p *CartPage) Checkout() error {
	if ok, err := p.Exists(termsCheckbox); err == nil && ok {
		if err := p.page.Locator(termsCheckbox).First().Check(); err != nil {
			return err
		}
	}
	return p.Click(checkoutButton)
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
