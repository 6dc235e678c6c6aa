package factories

import "github.com/shopqa/storefront/internal/models"

// Countries offered by the checkout's country select
const (
	CountryUnitedStates = "United States"
	CountryCanada       = "Canada"
)

// BillingShipping pairs the two addresses of a checkout
type BillingShipping struct {
	Billing  models.Address `json:"billing"`
	Shipping models.Address `json:"shipping"`
}

// USAddress returns a complete United States address
func (f *Factory) USAddress() models.Address {
	first := f.gen.FirstName()
	last := f.gen.LastName()
	return models.Address{
		FirstName:   first,
		LastName:    last,
		Email:       f.gen.EmailFor(first, last),
		Company:     f.gen.Company(),
		Country:     CountryUnitedStates,
		State:       f.gen.State(),
		City:        f.gen.City(),
		Address1:    f.gen.StreetAddress(),
		Address2:    f.gen.SecondaryAddress(),
		ZipCode:     f.gen.ZipCode(),
		PhoneNumber: f.gen.PhoneNumber(),
	}
}

// InternationalAddress returns a complete address outside the United States
func (f *Factory) InternationalAddress() models.Address {
	a := f.USAddress()
	a.Country = CountryCanada
	return a
}

// IncompleteAddress returns an address missing its street line and city
func (f *Factory) IncompleteAddress() models.Address {
	a := f.USAddress()
	a.Address1 = ""
	a.City = ""
	return a
}

// MatchingBillingAndShipping returns identical billing and shipping addresses
func (f *Factory) MatchingBillingAndShipping() BillingShipping {
	a := f.USAddress()
	return BillingShipping{Billing: a, Shipping: a}
}

// DifferentBillingAndShipping returns two independently generated addresses
func (f *Factory) DifferentBillingAndShipping() BillingShipping {
	return BillingShipping{Billing: f.USAddress(), Shipping: f.USAddress()}
}
