package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopqa/storefront/internal/database"
	"github.com/shopqa/storefront/internal/models"
)

// ErrDuplicateEmail is returned when an account with the same email is already recorded
var ErrDuplicateEmail = errors.New("account email already recorded")

// uniqueViolation is the PostgreSQL error code for a unique constraint failure
const uniqueViolation = "23505"

// AccountRepository handles database operations for registered accounts
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a repository on the connection opened by database.Connect
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		db: database.DB,
	}
}

// NewAccountRepositoryWithDB creates a new account repository with a specific database connection
func NewAccountRepositoryWithDB(db *sql.DB) *AccountRepository {
	return &AccountRepository{
		db: db,
	}
}

const accountColumns = `id, email, password, first_name, last_name, gender, registered_at, last_login_at`

// CreateAccount records a registered account
func (r *AccountRepository) CreateAccount(account *models.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if account.RegisteredAt.IsZero() {
		account.RegisteredAt = time.Now()
	}
	// Postgres TIMESTAMP keeps microseconds
	account.RegisteredAt = account.RegisteredAt.UTC().Truncate(time.Microsecond)

	_, err := r.db.Exec(query,
		account.ID,
		account.Email,
		account.Password,
		account.FirstName,
		account.LastName,
		string(account.Gender),
		account.RegisteredAt,
		account.LastLoginAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", ErrDuplicateEmail, account.Email)
	}
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// GetAccountByEmail retrieves an account by its email
func (r *AccountRepository) GetAccountByEmail(email string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`

	account, err := scanAccount(r.db.QueryRow(query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}

// ListAccounts returns up to limit accounts, most recently registered first
func (r *AccountRepository) ListAccounts(limit int) ([]*models.Account, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY registered_at DESC, email LIMIT $1`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return accounts, nil
}

// MarkLogin stamps the account as used by a login at the given time
func (r *AccountRepository) MarkLogin(email string, at time.Time) error {
	query := `UPDATE accounts SET last_login_at = $1 WHERE email = $2`

	result, err := r.db.Exec(query, at.UTC().Truncate(time.Microsecond), email)
	if err != nil {
		return fmt.Errorf("failed to mark login: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrAccountNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*models.Account, error) {
	var (
		account   models.Account
		gender    string
		lastLogin sql.NullTime
	)
	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.Password,
		&account.FirstName,
		&account.LastName,
		&gender,
		&account.RegisteredAt,
		&lastLogin,
	)
	if err != nil {
		return nil, err
	}

	account.Gender = models.Gender(gender)
	if lastLogin.Valid {
		t := lastLogin.Time
		account.LastLoginAt = &t
	}
	return &account, nil
}
