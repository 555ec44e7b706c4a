package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/dbx"
	"github.com/dmitrijs2005/passkeeper/internal/logging"
	"github.com/dmitrijs2005/passkeeper/internal/passgen"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// NewCredential is the input of CredentialService.Create. Either Secret or
// Generate must be given; Secret wins when both are.
type NewCredential struct {
	Title      string
	Secret     string
	Generate   *passgen.Options
	LoginName  *string
	LoginEmail *string
	URL        *string
	Notes      *string
	IsFavorite bool
	Category   string
}

// CredentialService manages the lifecycle of stored credentials. Secrets
// are encrypted before they reach the repository and only leave the
// service through Reveal.
type CredentialService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cipher      SecretCipher
	generator   PasswordGenerator
	logger      logging.Logger
	now         func() time.Time
}

func NewCredentialService(db *sql.DB, m repomanager.RepositoryManager, cipher SecretCipher,
	generator PasswordGenerator, logger logging.Logger) *CredentialService {
	return &CredentialService{
		db:          db,
		repomanager: m,
		cipher:      cipher,
		generator:   generator,
		logger:      logger.With("module", "credentials"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new credential for ownerID. The title must be unique for
// the owner, ignoring case; a clash yields common.ErrDuplicateTitle.
func (s *CredentialService) Create(ctx context.Context, ownerID string, in NewCredential) (*models.CredentialView, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}

	category, err := models.ParseCategory(in.Category)
	if err != nil {
		return nil, err
	}

	secret := in.Secret
	if secret == "" {
		if in.Generate == nil {
			return nil, fmt.Errorf("%w: secret is required", common.ErrValidation)
		}
		if secret, err = s.generator.Generate(*in.Generate); err != nil {
			return nil, err
		}
	}

	repo := s.repomanager.Credentials(s.db)

	exists, err := repo.TitleExists(ctx, ownerID, title, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrDuplicateTitle
	}

	cipherText, err := s.cipher.Encrypt(secret)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	c := &models.Credential{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		Title:      title,
		LoginName:  nonEmpty(in.LoginName),
		LoginEmail: nonEmpty(in.LoginEmail),
		URL:        nonEmpty(in.URL),
		Notes:      nonEmpty(in.Notes),
		CipherText: cipherText,
		History:    models.History{},
		IsFavorite: in.IsFavorite,
		Category:   category,
		CreatedAt:  s.now(),
	}

	if err := repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "credential created", "owner_id", ownerID, "credential_id", c.ID)
	return c.View(), nil
}

// Update applies patch to the credential id of ownerID under a row lock.
// A new secret moves the current cipher text into the bounded history.
// ModifiedAt changes only when some other field does.
func (s *CredentialService) Update(ctx context.Context, ownerID, id string, patch models.CredentialPatch) (*models.CredentialView, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return dbx.InTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*models.CredentialView, error) {
		repo := s.repomanager.Credentials(tx)

		c, err := repo.GetForUpdate(ctx, ownerID, id)
		if err != nil {
			return nil, err
		}

		now := s.now()
		changed, err := s.applyPatch(ctx, repo, c, patch, now)
		if err != nil {
			return nil, err
		}
		if !changed {
			return c.View(), nil
		}

		c.ModifiedAt = &now
		if err := repo.Update(ctx, c); err != nil {
			return nil, err
		}

		s.logger.Info(ctx, "credential updated", "owner_id", ownerID, "credential_id", id,
			"secret_rotated", patch.Secret.Present())
		return c.View(), nil
	})
}

type titleChecker interface {
	TitleExists(ctx context.Context, ownerID, title, excludeID string) (bool, error)
}

func (s *CredentialService) applyPatch(ctx context.Context, repo titleChecker, c *models.Credential,
	patch models.CredentialPatch, now time.Time) (bool, error) {
	changed := false

	if patch.Title.Present() {
		v := patch.Title.Value()
		if v == nil || strings.TrimSpace(*v) == "" {
			return false, fmt.Errorf("%w: title is required", common.ErrValidation)
		}
		title := strings.TrimSpace(*v)
		if title != c.Title {
			if !strings.EqualFold(title, c.Title) {
				exists, err := repo.TitleExists(ctx, c.OwnerID, title, c.ID)
				if err != nil {
					return false, err
				}
				if exists {
					return false, common.ErrDuplicateTitle
				}
			}
			c.Title = title
			changed = true
		}
	}

	for _, f := range []struct {
		patch models.Patch[string]
		field **string
	}{
		{patch.LoginName, &c.LoginName},
		{patch.LoginEmail, &c.LoginEmail},
		{patch.URL, &c.URL},
		{patch.Notes, &c.Notes},
	} {
		next := models.StringPatch(f.patch).Apply(*f.field)
		if !equalPtr(next, *f.field) {
			*f.field = next
			changed = true
		}
	}

	if patch.IsFavorite.Present() {
		fav := false
		if v := patch.IsFavorite.Value(); v != nil {
			fav = *v
		}
		if fav != c.IsFavorite {
			c.IsFavorite = fav
			changed = true
		}
	}

	if patch.Category.Present() {
		category := models.DefaultCategory
		if v := patch.Category.Value(); v != nil {
			parsed, err := models.ParseCategory(string(*v))
			if err != nil {
				return false, err
			}
			category = parsed
		}
		if category != c.Category {
			c.Category = category
			changed = true
		}
	}

	if patch.Secret.Present() {
		v := patch.Secret.Value()
		if v == nil || *v == "" {
			return false, fmt.Errorf("%w: secret cannot be cleared", common.ErrValidation)
		}
		cipherText, err := s.cipher.Encrypt(*v)
		if err != nil {
			return false, fmt.Errorf("encrypt: %w", err)
		}
		c.History = c.History.Push(models.HistoryEntry{CipherText: c.CipherText, ChangedAt: now})
		c.CipherText = cipherText
		changed = true
	}

	return changed, nil
}

// Reveal decrypts and returns the current secret of the credential. The
// caller must already have verified the owner's master password.
func (s *CredentialService) Reveal(ctx context.Context, ownerID, id string) (string, error) {
	if err := checkID(id); err != nil {
		return "", err
	}
	c, err := s.repomanager.Credentials(s.db).Get(ctx, ownerID, id)
	if err != nil {
		return "", err
	}

	plaintext, err := s.cipher.Decrypt(c.CipherText)
	if err != nil {
		s.logger.Error(ctx, "credential decrypt failed", "owner_id", ownerID, "credential_id", id)
		return "", common.ErrDecryption
	}

	s.logger.Info(ctx, "credential revealed", "owner_id", ownerID, "credential_id", id)
	return plaintext, nil
}

// Delete removes the credential. Another owner's record is reported as
// common.ErrorNotFound.
func (s *CredentialService) Delete(ctx context.Context, ownerID, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := s.repomanager.Credentials(s.db).Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "credential deleted", "owner_id", ownerID, "credential_id", id)
	return nil
}

// Get returns the redacted credential.
func (s *CredentialService) Get(ctx context.Context, ownerID, id string) (*models.CredentialView, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	c, err := s.repomanager.Credentials(s.db).Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return c.View(), nil
}

// List returns the owner's redacted credentials matching filter.
func (s *CredentialService) List(ctx context.Context, ownerID string, filter models.CredentialFilter) ([]*models.CredentialView, error) {
	list, err := s.repomanager.Credentials(s.db).List(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	views := make([]*models.CredentialView, 0, len(list))
	for _, c := range list {
		views = append(views, c.View())
	}
	return views, nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// checkID rejects ids that cannot name any credential. They are reported
// like a missing record.
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}
	return nil
}
