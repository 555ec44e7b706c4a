package accounts

import (
	"context"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/server/models"
)

// Repository persists accounts. Every lookup ignores inactive accounts and
// reports them as common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByRecoveryToken(ctx context.Context, token string) (*models.Account, error)
	UpdateAccountSecret(ctx context.Context, id string, hash string) error
	ConsumeRecoveryToken(ctx context.Context, token string, hash string, now time.Time) (string, error)
	UpdateMasterSecret(ctx context.Context, id string, hash string) error
	SetRecoveryToken(ctx context.Context, id string, token string, expiresAt time.Time) error
	ClearRecoveryToken(ctx context.Context, id string) error
	Touch(ctx context.Context, id string, at time.Time) error
}
