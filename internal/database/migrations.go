package database

import (
	"database/sql"
	"fmt"

	"github.com/shopqa/storefront/internal/observability"
)

// Schema creates the account ledger tables
const Schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id UUID PRIMARY KEY,
	email VARCHAR(255) UNIQUE NOT NULL,
	password VARCHAR(255) NOT NULL,
	first_name VARCHAR(255) NOT NULL,
	last_name VARCHAR(255) NOT NULL,
	gender VARCHAR(16) NOT NULL,
	registered_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	last_login_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_accounts_registered_at ON accounts(registered_at);
`

// RunMigrations creates the ledger tables on the connection opened by Connect
func RunMigrations() error {
	if DB == nil {
		return fmt.Errorf("database connection not initialized")
	}
	if err := Migrate(DB); err != nil {
		return err
	}

	observability.L().Info("Database migrations completed successfully")
	return nil
}

// Migrate applies Schema to db
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create accounts table: %w", err)
	}
	return nil
}
