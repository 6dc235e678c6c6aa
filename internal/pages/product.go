package pages

import (
	"fmt"
	"strconv"

	"github.com/playwright-community/playwright-go"
	"github.com/shopqa/storefront/internal/query"
)

const (
	productTitle         = ".product-name"
	addToCartButton      = "input[id^='add-to-cart-button'], input[value='Add to cart']"
	productQuantityField = "input[id*='EnteredQuantity'], .qty-input"
	barNotification      = ".bar-notification"
	addToCartURLPattern  = "**/addproducttocart/**"
)

// AddedToCartText is the notification shown after a product is added
const AddedToCartText = "The product has been added to your shopping cart"

// ProductPage is a product detail page
type ProductPage struct {
	*Base
	extractor *query.Extractor
}

// NewProductPage creates the product page object
func NewProductPage(base *Base, extractor *query.Extractor) *ProductPage {
	if extractor == nil {
		extractor = query.NewExtractor(base.logger.Named("query"))
	}
	return &ProductPage{Base: base, extractor: extractor}
}

// Open navigates to the product at path, e.g. "/computing-and-internet"
func (p *ProductPage) Open(path string) error {
	return p.Navigate(path)
}

// Name returns the product title
func (p *ProductPage) Name() (string, error) {
	return p.Text(productTitle)
}

// Price returns the displayed product price
func (p *ProductPage) Price() (float64, bool, error) {
	s, err := p.Snapshot()
	if err != nil {
		return 0, false, err
	}
	v, ok := p.extractor.ExtractPrice(s)
	return v, ok, nil
}

// AddToCart sets the quantity when above 1, clicks add to cart and waits for
// the shop's add-to-cart request to complete
func (p *ProductPage) AddToCart(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if quantity > 1 {
		if err := p.Fill(productQuantityField, strconv.Itoa(quantity)); err != nil {
			return err
		}
	}

	resp, err := p.page.ExpectResponse(addToCartURLPattern, func() error {
		return p.Click(addToCartButton)
	}, playwright.PageExpectResponseOptions{Timeout: p.requestMillis()})
	if err != nil {
		return fmt.Errorf("add to cart request did not complete: %w", err)
	}
	if !resp.Ok() {
		return fmt.Errorf("add to cart returned status %d", resp.Status())
	}

	p.logger.Debug("Added product to cart")
	return nil
}

// AddedNotification reports whether the add-to-cart notification is showing
func (p *ProductPage) AddedNotification() (bool, error) {
	text, err := p.Text(barNotification)
	if err != nil {
		return false, err
	}
	return text != "" && contains(text, AddedToCartText), nil
}
