// Package accounts provides the PostgreSQL-backed account repository.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/dbx"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
)

const emailConstraint = "accounts_email_uidx"

const selectColumns = `id, email, display_name, account_secret_hash, master_secret_hash,
		recovery_token, recovery_token_expires_at, active, last_access_at, created_at`

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts an active account and fills in its ID and CreatedAt.
// A second account with the same email (case-insensitive) yields
// common.ErrEmailTaken.
func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	query := `
		INSERT INTO accounts (email, display_name, account_secret_hash, master_secret_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, active, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		account.Email, account.DisplayName, account.AccountSecretHash, account.MasterSecretHash,
	).Scan(&account.ID, &account.Active, &account.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err, emailConstraint) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return account, nil
}

// GetByEmail looks up an active account by its normalized email.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT ` + selectColumns + ` FROM accounts WHERE lower(email) = $1 AND active`
	return r.getOne(ctx, query, email)
}

// GetByID looks up an active account by ID.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query := `SELECT ` + selectColumns + ` FROM accounts WHERE id = $1 AND active`
	return r.getOne(ctx, query, id)
}

// GetByRecoveryToken looks up the active account holding token. Expiry is
// checked by the caller.
func (r *PostgresRepository) GetByRecoveryToken(ctx context.Context, token string) (*models.Account, error) {
	query := `SELECT ` + selectColumns + ` FROM accounts WHERE recovery_token = $1 AND active`
	return r.getOne(ctx, query, token)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.Account, error) {
	a := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&a.ID, &a.Email, &a.DisplayName, &a.AccountSecretHash, &a.MasterSecretHash,
		&a.RecoveryToken, &a.RecoveryTokenExpiresAt, &a.Active, &a.LastAccessAt, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || dbx.IsInvalidTextRepresentation(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

// UpdateAccountSecret replaces the login password hash. Any outstanding
// recovery token is consumed at the same time.
func (r *PostgresRepository) UpdateAccountSecret(ctx context.Context, id string, hash string) error {
	query := `
		UPDATE accounts
		SET account_secret_hash = $2, recovery_token = NULL, recovery_token_expires_at = NULL
		WHERE id = $1 AND active
	`
	return r.execOne(ctx, query, id, hash)
}

// ConsumeRecoveryToken replaces the login password hash of the active
// account holding token, provided it has not expired at now, and clears the
// token in the same statement. It returns the account ID.
func (r *PostgresRepository) ConsumeRecoveryToken(ctx context.Context, token string, hash string, now time.Time) (string, error) {
	query := `
		UPDATE accounts
		SET account_secret_hash = $2, recovery_token = NULL, recovery_token_expires_at = NULL
		WHERE recovery_token = $1 AND recovery_token_expires_at > $3 AND active
		RETURNING id
	`
	var id string
	if err := r.db.QueryRowContext(ctx, query, token, hash, now).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

// UpdateMasterSecret replaces the master password hash.
func (r *PostgresRepository) UpdateMasterSecret(ctx context.Context, id string, hash string) error {
	query := `UPDATE accounts SET master_secret_hash = $2 WHERE id = $1 AND active`
	return r.execOne(ctx, query, id, hash)
}

// SetRecoveryToken stores a recovery token, replacing any previous one.
func (r *PostgresRepository) SetRecoveryToken(ctx context.Context, id string, token string, expiresAt time.Time) error {
	query := `
		UPDATE accounts
		SET recovery_token = $2, recovery_token_expires_at = $3
		WHERE id = $1 AND active
	`
	return r.execOne(ctx, query, id, token, expiresAt)
}

// ClearRecoveryToken removes the recovery token, used or expired.
func (r *PostgresRepository) ClearRecoveryToken(ctx context.Context, id string) error {
	query := `
		UPDATE accounts
		SET recovery_token = NULL, recovery_token_expires_at = NULL
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Touch records an authenticated request at the given time.
func (r *PostgresRepository) Touch(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE accounts SET last_access_at = $2 WHERE id = $1 AND active`
	return r.execOne(ctx, query, id, at)
}

func (r *PostgresRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if dbx.IsInvalidTextRepresentation(err) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
