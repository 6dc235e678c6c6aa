package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopqa/storefront/internal/models"
	"go.uber.org/zap"
)

// AccountRepository defines the interface for account persistence
type AccountRepository interface {
	CreateAccount(account *models.Account) error
	GetAccountByEmail(email string) (*models.Account, error)
	ListAccounts(limit int) ([]*models.Account, error)
	MarkLogin(email string, at time.Time) error
}

// AccountService records users registered against the shop so login tests can reuse them
type AccountService interface {
	Record(user models.User) (*models.Account, error)
	Reusable() (*models.Account, error)
	Credentials(email string) (models.User, error)
	MarkLogin(email string) error
	List(limit int) ([]*models.Account, error)
}

// AccountServiceImpl implements AccountService
type AccountServiceImpl struct {
	accountRepo AccountRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewAccountService creates a new account service. A nil logger disables logging.
func NewAccountService(accountRepo AccountRepository, logger *zap.Logger) AccountService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountServiceImpl{
		accountRepo: accountRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Record validates the user and stores it as a registered account
func (s *AccountServiceImpl) Record(user models.User) (*models.Account, error) {
	account, err := models.NewAccount(user)
	if err != nil {
		return nil, fmt.Errorf("invalid account: %w", err)
	}
	account.RegisteredAt = s.now()

	if err := s.accountRepo.CreateAccount(account); err != nil {
		return nil, fmt.Errorf("failed to record account: %w", err)
	}

	s.logger.Info("Recorded registered account", zap.String("email", account.Email))
	return account, nil
}

// Reusable returns the most recently registered account
func (s *AccountServiceImpl) Reusable() (*models.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(1)
	if err != nil {
		return nil, fmt.Errorf("failed to find reusable account: %w", err)
	}
	if len(accounts) == 0 {
		return nil, models.ErrAccountNotFound
	}
	return accounts[0], nil
}

// Credentials returns login-ready user data for a recorded account
func (s *AccountServiceImpl) Credentials(email string) (models.User, error) {
	account, err := s.accountRepo.GetAccountByEmail(email)
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("failed to get account: %w", err)
	}
	return account.User(), nil
}

// MarkLogin stamps the account as used by a successful login
func (s *AccountServiceImpl) MarkLogin(email string) error {
	if err := s.accountRepo.MarkLogin(email, s.now()); err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			return err
		}
		return fmt.Errorf("failed to mark login: %w", err)
	}
	return nil
}

// List returns up to limit recorded accounts, newest first
func (s *AccountServiceImpl) List(limit int) ([]*models.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
