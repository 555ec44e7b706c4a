// Package credentials provides the PostgreSQL-backed credential repository.
package credentials

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/dbx"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
)

const titleConstraint = "credentials_owner_title_uidx"

const selectColumns = `id, owner_id, title, login_name, login_email, url, notes,
		cipher_text, history, is_favorite, category, created_at, modified_at`

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts c. A title clash within the owner, detected by the unique
// index, is reported as common.ErrDuplicateTitle.
func (r *PostgresRepository) Create(ctx context.Context, c *models.Credential) error {
	history, err := marshalHistory(c.History)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO credentials (id, owner_id, title, login_name, login_email, url, notes,
			cipher_text, history, is_favorite, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = r.db.ExecContext(ctx, query,
		c.ID, c.OwnerID, c.Title, c.LoginName, c.LoginEmail, c.URL, c.Notes,
		c.CipherText, history, c.IsFavorite, c.Category, c.CreatedAt,
	)
	if err != nil {
		if dbx.IsUniqueViolation(err, titleConstraint) {
			return common.ErrDuplicateTitle
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get returns the credential id owned by ownerID.
func (r *PostgresRepository) Get(ctx context.Context, ownerID, id string) (*models.Credential, error) {
	query := `SELECT ` + selectColumns + ` FROM credentials WHERE id = $1 AND owner_id = $2`
	return r.getOne(ctx, query, id, ownerID)
}

// GetForUpdate is Get with a row lock; it must run inside a transaction.
func (r *PostgresRepository) GetForUpdate(ctx context.Context, ownerID, id string) (*models.Credential, error) {
	query := `SELECT ` + selectColumns + ` FROM credentials WHERE id = $1 AND owner_id = $2 FOR UPDATE`
	return r.getOne(ctx, query, id, ownerID)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, args ...any) (*models.Credential, error) {
	c, err := scanCredential(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || dbx.IsInvalidTextRepresentation(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

// TitleExists reports whether ownerID already has a credential titled
// title, compared case-insensitively, other than excludeID.
func (r *PostgresRepository) TitleExists(ctx context.Context, ownerID, title, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM credentials
			WHERE owner_id = $1 AND lower(title) = lower($2) AND id::text <> $3
		)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, ownerID, title, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// Update writes every mutable column of c, matching on id and owner.
func (r *PostgresRepository) Update(ctx context.Context, c *models.Credential) error {
	history, err := marshalHistory(c.History)
	if err != nil {
		return err
	}

	query := `
		UPDATE credentials
		SET title = $3, login_name = $4, login_email = $5, url = $6, notes = $7,
			cipher_text = $8, history = $9, is_favorite = $10, category = $11, modified_at = $12
		WHERE id = $1 AND owner_id = $2
	`
	res, err := r.db.ExecContext(ctx, query,
		c.ID, c.OwnerID, c.Title, c.LoginName, c.LoginEmail, c.URL, c.Notes,
		c.CipherText, history, c.IsFavorite, c.Category, c.ModifiedAt,
	)
	if err != nil {
		if dbx.IsUniqueViolation(err, titleConstraint) {
			return common.ErrDuplicateTitle
		}
		if dbx.IsInvalidTextRepresentation(err) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

// Delete removes the credential id owned by ownerID.
func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id string) error {
	query := `DELETE FROM credentials WHERE id = $1 AND owner_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		if dbx.IsInvalidTextRepresentation(err) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

// List returns ownerID's credentials ordered by favourite first, then title.
func (r *PostgresRepository) List(ctx context.Context, ownerID string, filter models.CredentialFilter) ([]*models.Credential, error) {
	var sb strings.Builder
	args := []any{ownerID}

	sb.WriteString(`SELECT ` + selectColumns + ` FROM credentials WHERE owner_id = $1`)

	if filter.Category != nil {
		args = append(args, *filter.Category)
		fmt.Fprintf(&sb, " AND category = $%d", len(args))
	}
	if filter.FavoriteOnly {
		sb.WriteString(" AND is_favorite")
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		args = append(args, "%"+escapeLike(s)+"%")
		n := len(args)
		fmt.Fprintf(&sb, " AND (title ILIKE $%d OR url ILIKE $%d OR login_name ILIKE $%d OR login_email ILIKE $%d)", n, n, n, n)
	}
	sb.WriteString(" ORDER BY is_favorite DESC, lower(title)")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select credentials: %w", err)
	}
	defer rows.Close()

	var result []*models.Credential
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCredential(s scanner) (*models.Credential, error) {
	c := &models.Credential{}
	var history []byte
	if err := s.Scan(
		&c.ID, &c.OwnerID, &c.Title, &c.LoginName, &c.LoginEmail, &c.URL, &c.Notes,
		&c.CipherText, &history, &c.IsFavorite, &c.Category, &c.CreatedAt, &c.ModifiedAt,
	); err != nil {
		return nil, err
	}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &c.History); err != nil {
			return nil, fmt.Errorf("decode history: %w", err)
		}
	}
	return c, nil
}

func marshalHistory(h models.History) ([]byte, error) {
	if h == nil {
		h = models.History{}
	}
	b, err := json.Marshal(h)
	if err != nil {
		return nil, fmt.Errorf("encode history: %w", err)
	}
	return b, nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
