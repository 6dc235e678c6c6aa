package models

import (
	"errors"
	"fmt"
)

// ShippingMethod is one of the shop's shipping options
type ShippingMethod string

// Shipping methods, spelled as the checkout shows them
const (
	ShippingGround     ShippingMethod = "Ground"
	ShippingNextDayAir ShippingMethod = "Next Day Air"
	Shipping2ndDayAir  ShippingMethod = "2nd Day Air"
)

// ShippingMethods lists every shipping option in display order
var ShippingMethods = []ShippingMethod{ShippingGround, ShippingNextDayAir, Shipping2ndDayAir}

// Valid reports whether m is a known shipping method
func (m ShippingMethod) Valid() bool {
	for _, known := range ShippingMethods {
		if m == known {
			return true
		}
	}
	return false
}

// Order errors
var (
	ErrInvalidShippingMethod = errors.New("unknown shipping method")
	ErrMissingPaymentMethod  = errors.New("order has no payment method")
	ErrInvalidQuantity       = errors.New("line item quantity must be positive")
	ErrGuestWithAccount      = errors.New("guest order cannot carry a registered user")
)

// LineItem is one product line of a bulk order
type LineItem struct {
	ProductID   int    `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// Order is the data a checkout flow submits
type Order struct {
	BillingAddress  Address        `json:"billingAddress"`
	ShippingAddress Address        `json:"shippingAddress"`
	PaymentMethod   PaymentMethod  `json:"paymentMethod"`
	ShippingMethod  ShippingMethod `json:"shippingMethod"`
	Notes           string         `json:"orderNotes"`
	IsGuest         bool           `json:"isGuest,omitempty"`
	CreateAccount   bool           `json:"createAccount,omitempty"`
	ExpressCheckout bool           `json:"expressCheckout,omitempty"`
	User            *User          `json:"user,omitempty"`
	Items           []LineItem     `json:"items,omitempty"`
}

// Validate checks the order's structural rules. Payment validity (expiry,
// checksum) is left to the shop so negative tests can submit bad cards.
func (o *Order) Validate() error {
	if o.PaymentMethod == nil {
		return ErrMissingPaymentMethod
	}
	if !o.ShippingMethod.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidShippingMethod, o.ShippingMethod)
	}
	if o.IsGuest && o.User != nil {
		return ErrGuestWithAccount
	}
	for i, item := range o.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d has quantity %d", ErrInvalidQuantity, i, item.Quantity)
		}
	}
	return nil
}

// TotalQuantity sums the quantities of all line items
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// UsesPayPal returns true if the order pays through PayPal
func (o *Order) UsesPayPal() bool {
	return o.PaymentMethod != nil && o.PaymentMethod.Kind() == PaymentKindPayPal
}
