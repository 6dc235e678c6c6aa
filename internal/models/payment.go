package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// PaymentKind discriminates the payment method variants
type PaymentKind string

// Payment kinds, spelled the way the checkout records them
const (
	PaymentKindCreditCard PaymentKind = "credit_card"
	PaymentKindPayPal     PaymentKind = "paypal"
)

// PaymentMethod is either a *CreditCard or a *PayPal
type PaymentMethod interface {
	Kind() PaymentKind
	isPaymentMethod()
}

// CreditCard is a card payment entered on the checkout payment-info step
type CreditCard struct {
	Number      string `json:"number"`
	HolderName  string `json:"holderName"`
	ExpiryMonth int    `json:"expiryMonth"`
	ExpiryYear  int    `json:"expiryYear"`
	CVV         string `json:"cvv"`
}

// Kind implements PaymentMethod
func (*CreditCard) Kind() PaymentKind { return PaymentKindCreditCard }

func (*CreditCard) isPaymentMethod() {}

// IsExpired reports whether the card's expiry year is not after now's year
func (c *CreditCard) IsExpired(now time.Time) bool {
	return c.ExpiryYear <= now.Year()
}

// ExpiryMonthString returns the month zero-padded to two digits, as the form's select expects
func (c *CreditCard) ExpiryMonthString() string {
	return fmt.Sprintf("%02d", c.ExpiryMonth)
}

// LuhnValid reports whether the card number passes the Luhn checksum
func (c *CreditCard) LuhnValid() bool {
	return LuhnValid(c.Number)
}

// MarshalJSON adds the "type" discriminator
func (c *CreditCard) MarshalJSON() ([]byte, error) {
	type plain CreditCard
	return json.Marshal(struct {
		Type PaymentKind `json:"type"`
		*plain
	}{PaymentKindCreditCard, (*plain)(c)})
}

// PayPal is a PayPal login used for express checkout
type PayPal struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Kind implements PaymentMethod
func (*PayPal) Kind() PaymentKind { return PaymentKindPayPal }

func (*PayPal) isPaymentMethod() {}

// MarshalJSON adds the "type" discriminator
func (p *PayPal) MarshalJSON() ([]byte, error) {
	type plain PayPal
	return json.Marshal(struct {
		Type PaymentKind `json:"type"`
		*plain
	}{PaymentKindPayPal, (*plain)(p)})
}

// LuhnValid reports whether number is a digit string with a valid Luhn checksum
func LuhnValid(number string) bool {
	if len(number) < 2 {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		ch := number[i]
		if ch < '0' || ch > '9' {
			return false
		}
		d := int(ch - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
