package credentials

import (
	"context"

	"github.com/dmitrijs2005/passkeeper/internal/server/models"
)

// Repository persists credentials. Every read and write is scoped to the
// owning account; a record of another owner behaves exactly like a missing
// one.
type Repository interface {
	Create(ctx context.Context, c *models.Credential) error
	Get(ctx context.Context, ownerID, id string) (*models.Credential, error)
	GetForUpdate(ctx context.Context, ownerID, id string) (*models.Credential, error)
	TitleExists(ctx context.Context, ownerID, title, excludeID string) (bool, error)
	Update(ctx context.Context, c *models.Credential) error
	Delete(ctx context.Context, ownerID, id string) error
	List(ctx context.Context, ownerID string, filter models.CredentialFilter) ([]*models.Credential, error)
}
