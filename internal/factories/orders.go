package factories

import (
	"fmt"

	"github.com/shopqa/storefront/internal/datagen"
	"github.com/shopqa/storefront/internal/models"
)

// SimpleOrder returns a card-paid order with independent billing and shipping addresses
func (f *Factory) SimpleOrder() *models.Order {
	return &models.Order{
		BillingAddress:  f.USAddress(),
		ShippingAddress: f.USAddress(),
		PaymentMethod:   f.ValidCreditCard(),
		ShippingMethod:  datagen.Pick(f.gen, models.ShippingMethods),
		Notes:           f.gen.Sentence(),
	}
}

// GuestOrder returns an order placed without an account
func (f *Factory) GuestOrder() *models.Order {
	o := f.SimpleOrder()
	o.IsGuest = true
	o.CreateAccount = false
	return o
}

// RegisteredUserOrder returns an order placed by a freshly generated user
func (f *Factory) RegisteredUserOrder() *models.Order {
	o := f.SimpleOrder()
	u := f.ValidUser()
	o.IsGuest = false
	o.User = &u
	return o
}

// ExpressCheckoutOrder returns an order paid through PayPal express checkout
func (f *Factory) ExpressCheckoutOrder() *models.Order {
	o := f.SimpleOrder()
	o.ExpressCheckout = true
	o.PaymentMethod = f.PayPalPayment()
	return o
}

// BulkOrder returns an order with itemCount line items of one to three units each
func (f *Factory) BulkOrder(itemCount int) (*models.Order, error) {
	if itemCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, itemCount)
	}

	o := f.SimpleOrder()
	o.Items = make([]models.LineItem, itemCount)
	for i := range o.Items {
		qty, err := f.gen.IntBetween(1, 3)
		if err != nil {
			return nil, err
		}
		o.Items[i] = models.LineItem{
			ProductID:   i + 1,
			ProductName: fmt.Sprintf("Test Product %d", i+1),
			Quantity:    qty,
		}
	}
	return o, nil
}
