package factories

import (
	"github.com/shopqa/storefront/internal/datagen"
	"github.com/shopqa/storefront/internal/models"
)

// ValidCreditCard returns an allow-listed card expiring after the current year
func (f *Factory) ValidCreditCard() *models.CreditCard {
	month, year := f.gen.ExpiryDate()
	return &models.CreditCard{
		Number:      f.gen.CardNumber(),
		HolderName:  f.gen.FullName(),
		ExpiryMonth: month,
		ExpiryYear:  year,
		CVV:         f.gen.CVV(),
	}
}

// ExpiredCreditCard returns a valid card whose expiry year is one to five years in the past
func (f *Factory) ExpiredCreditCard() *models.CreditCard {
	card := f.ValidCreditCard()
	// constant bounds, so IntBetween cannot fail
	yearsAgo, _ := f.gen.IntBetween(1, 5)
	card.ExpiryMonth = 1
	card.ExpiryYear = f.gen.Now().Year() - yearsAgo
	return card
}

// InvalidCreditCard returns a valid card whose number fails the Luhn check
func (f *Factory) InvalidCreditCard() *models.CreditCard {
	card := f.ValidCreditCard()
	card.Number = datagen.InvalidCardNumber
	return card
}

// PayPalPayment returns PayPal credentials
func (f *Factory) PayPalPayment() *models.PayPal {
	return &models.PayPal{
		Email:    f.gen.Email(),
		Password: f.gen.Password(),
	}
}

// MultiplePaymentMethods returns one card and one PayPal payment
func (f *Factory) MultiplePaymentMethods() []models.PaymentMethod {
	return []models.PaymentMethod{f.ValidCreditCard(), f.PayPalPayment()}
}
