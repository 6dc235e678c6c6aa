// Package scenarios assembles factory output into named test situations.
package scenarios

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopqa/storefront/internal/factories"
	"github.com/shopqa/storefront/internal/models"
	"go.uber.org/zap"
)

// Kind names a scenario
type Kind string

// Known scenario kinds
const (
	HappyPath          Kind = "happy_path"
	GuestCheckout      Kind = "guest_checkout"
	InvalidPayment     Kind = "invalid_payment"
	RegistrationErrors Kind = "registration_errors"
	ExpressCheckout    Kind = "express_checkout"
	BulkOrder          Kind = "bulk_order"
)

// Kinds lists every known scenario kind
var Kinds = []Kind{HappyPath, GuestCheckout, InvalidPayment, RegistrationErrors, ExpressCheckout, BulkOrder}

// ErrUnknownKind is returned by the strict constructors for kinds not in Kinds
var ErrUnknownKind = errors.New("unknown scenario kind")

// BulkOrderItems is the line item count of the bulk_order scenario
const BulkOrderItems = 5

// Dimension names the registration rule an invalid user breaks
type Dimension string

// Registration rules exercised by registration_errors
const (
	DimensionEmail                Dimension = "email"
	DimensionPasswordLength       Dimension = "password_length"
	DimensionPasswordConfirmation Dimension = "password_confirmation"
)

// ParseKind returns the Kind named by s, or ErrUnknownKind
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// InvalidUser is a user that breaks exactly one registration rule
type InvalidUser struct {
	User      models.User `json:"user"`
	Dimension Dimension   `json:"dimension"`
	// Expect is the error models.User.Validate returns for this user
	Expect error `json:"-"`
}

// Scenario is a bundle of entities for one test situation. Which fields are
// set depends on Kind.
type Scenario struct {
	Kind         Kind          `json:"kind"`
	Description  string        `json:"scenario"`
	User         *models.User  `json:"user,omitempty"`
	Order        *models.Order `json:"order,omitempty"`
	ValidUser    *models.User  `json:"validUser,omitempty"`
	InvalidUsers []InvalidUser `json:"invalidUsers,omitempty"`
}

// Factory builds scenarios
type Factory struct {
	entities *factories.Factory
	logger   *zap.Logger
}

// New creates a scenario factory. A nil logger disables logging.
func New(entities *factories.Factory, logger *zap.Logger) *Factory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Factory{entities: entities, logger: logger}
}

// Create builds the scenario named by kind. Unknown kinds fall back to
// happy_path and log a warning; use CreateStrict to reject them instead.
func (s *Factory) Create(kind string) Scenario {
	k, err := ParseKind(kind)
	if err != nil {
		s.logger.Warn("unknown scenario kind, using happy_path", zap.String("kind", kind))
		k = HappyPath
	}
	return s.build(k)
}

// CreateStrict builds the scenario named by kind or returns ErrUnknownKind
func (s *Factory) CreateStrict(kind string) (Scenario, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return Scenario{}, err
	}
	return s.build(k), nil
}

// CreateDataDriven builds one scenario per kind with Create's fallback rules
func (s *Factory) CreateDataDriven(kinds []string) []Scenario {
	out := make([]Scenario, len(kinds))
	for i, kind := range kinds {
		out[i] = s.Create(kind)
	}
	return out
}

// CreateDataDrivenStrict builds one scenario per kind, failing on the first unknown kind
func (s *Factory) CreateDataDrivenStrict(kinds []string) ([]Scenario, error) {
	out := make([]Scenario, len(kinds))
	for i, kind := range kinds {
		sc, err := s.CreateStrict(kind)
		if err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i, err)
		}
		out[i] = sc
	}
	return out, nil
}

func (s *Factory) build(k Kind) Scenario {
	f := s.entities
	sc := Scenario{Kind: k}

	switch k {
	case GuestCheckout:
		sc.Description = "Guest user checkout without registration"
		sc.Order = f.GuestOrder()
	case InvalidPayment:
		sc.Description = "Checkout with invalid payment method"
		sc.User = ptr(f.ValidUser())
		sc.Order = f.SimpleOrder()
		sc.Order.PaymentMethod = f.InvalidCreditCard()
	case RegistrationErrors:
		sc.Description = "Test various registration validation errors"
		sc.ValidUser = ptr(f.ValidUser())
		sc.InvalidUsers = []InvalidUser{
			{User: f.UserWithInvalidEmail(), Dimension: DimensionEmail, Expect: models.ErrInvalidEmail},
			{User: f.UserWithShortPassword(), Dimension: DimensionPasswordLength, Expect: models.ErrPasswordTooShort},
			{User: f.UserWithMismatchedPasswords(), Dimension: DimensionPasswordConfirmation, Expect: models.ErrPasswordMismatch},
		}
	case ExpressCheckout:
		sc.Description = "Express checkout paying with PayPal"
		sc.User = ptr(f.ValidUser())
		sc.Order = f.ExpressCheckoutOrder()
	case BulkOrder:
		sc.Description = "Registered user ordering several products at once"
		sc.User = ptr(f.ValidUser())
		// BulkOrderItems is a positive constant, so BulkOrder cannot fail
		sc.Order, _ = f.BulkOrder(BulkOrderItems)
	default:
		sc.Description = "Complete successful purchase flow"
		sc.User = ptr(f.ValidUser())
		sc.Order = f.SimpleOrder()
	}

	s.logger.Debug("scenario built", zap.String("kind", string(k)))
	return sc
}

func ptr[T any](v T) *T { return &v }
