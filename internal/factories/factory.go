// Package factories composes generated values into complete domain records.
// Invalid variants start from a valid record and break exactly one rule, so a
// negative test knows which validation message it should see.
package factories

import (
	"errors"

	"github.com/shopqa/storefront/internal/datagen"
)

// Factory errors
var (
	ErrNegativeCount   = errors.New("count must not be negative")
	ErrDuplicateEmails = errors.New("could not generate enough distinct emails")
)

// Factory builds users, addresses, payments and orders from one generator
type Factory struct {
	gen *datagen.Generator
}

// New creates a factory drawing every value from gen
func New(gen *datagen.Generator) *Factory {
	return &Factory{gen: gen}
}

// Generator returns the factory's generator
func (f *Factory) Generator() *datagen.Generator {
	return f.gen
}
