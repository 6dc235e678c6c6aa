package factories

import (
	"fmt"

	"github.com/shopqa/storefront/internal/datagen"
	"github.com/shopqa/storefront/internal/models"
)

// InvalidEmails are malformed addresses the registration form must reject
var InvalidEmails = []string{
	"invalid-email",
	"test@",
	"test.com",
	"@test.com",
	"test@@test.com",
	"test space@test.com",
}

// MismatchedConfirmation is the confirmation used by UserWithMismatchedPasswords
const MismatchedConfirmation = "DifferentPassword123!"

// ShortPassword is below models.MinPasswordLength
const ShortPassword = "123"

// ValidUser returns a user that passes every registration rule
func (f *Factory) ValidUser() models.User {
	first := f.gen.FirstName()
	last := f.gen.LastName()
	return models.User{
		Gender:          f.gen.Gender(),
		FirstName:       first,
		LastName:        last,
		Email:           f.gen.EmailFor(first, last),
		Password:        datagen.DefaultPassword,
		ConfirmPassword: datagen.DefaultPassword,
	}
}

// UserWithInvalidEmail returns a valid user whose email is malformed
func (f *Factory) UserWithInvalidEmail() models.User {
	u := f.ValidUser()
	u.Email = datagen.Pick(f.gen, InvalidEmails)
	return u
}

// UserWithShortPassword returns a valid user whose password and confirmation are too short
func (f *Factory) UserWithShortPassword() models.User {
	u := f.ValidUser()
	u.Password = ShortPassword
	u.ConfirmPassword = ShortPassword
	return u
}

// UserWithMismatchedPasswords returns a valid user whose confirmation differs from the password
func (f *Factory) UserWithMismatchedPasswords() models.User {
	u := f.ValidUser()
	u.ConfirmPassword = MismatchedConfirmation
	return u
}

// MultipleUsers returns n valid users with pairwise distinct emails
func (f *Factory) MultipleUsers(n int) ([]models.User, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}

	users := make([]models.User, 0, n)
	seen := make(map[string]bool, n)
	for attempts := 0; len(users) < n; attempts++ {
		if attempts > 10*n+10 {
			return nil, fmt.Errorf("%w: got %d of %d", ErrDuplicateEmails, len(users), n)
		}
		u := f.ValidUser()
		if seen[u.Email] {
			continue
		}
		seen[u.Email] = true
		users = append(users, u)
	}
	return users, nil
}
