package models

import (
	"errors"
	"regexp"
)

// Address errors
var (
	ErrIncompleteAddress = errors.New("address line and city are required")
	ErrInvalidZipCode    = errors.New("zip code must be NNNNN or NNNNN-NNNN")
)

var zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// IsValidZipCode reports whether zip is a US 5-digit or ZIP+4 code
func IsValidZipCode(zip string) bool {
	return zipPattern.MatchString(zip)
}

// Address is a billing or shipping address as entered at checkout
type Address struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	Country     string `json:"country"`
	State       string `json:"state"`
	City        string `json:"city"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	ZipCode     string `json:"zipCode"`
	PhoneNumber string `json:"phoneNumber"`
}

// Validate checks the fields the checkout form requires
func (a Address) Validate() error {
	if a.Address1 == "" || a.City == "" {
		return ErrIncompleteAddress
	}
	if !IsValidZipCode(a.ZipCode) {
		return ErrInvalidZipCode
	}
	return nil
}
