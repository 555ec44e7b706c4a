package services

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/dbx"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/credentials"
	"github.com/google/uuid"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeRepoManager struct {
	accounts    *fakeAccountsRepo
	credentials *fakeCredentialsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		accounts:    &fakeAccountsRepo{byID: map[string]*models.Account{}},
		credentials: &fakeCredentialsRepo{byID: map[string]*models.Credential{}},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Accounts(dbx.DBTX) accounts.Repository        { return m.accounts }
func (m *fakeRepoManager) Credentials(dbx.DBTX) credentials.Repository  { return m.credentials }

// fakeAccountsRepo stores accounts in memory.
type fakeAccountsRepo struct {
	mu           sync.Mutex
	byID         map[string]*models.Account
	touched      []string
	emailLookups int
	err          error
	consumeErr   error
}

func (f *fakeAccountsRepo) Create(_ context.Context, a *models.Account) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, ex := range f.byID {
		if ex.Email == a.Email {
			return nil, common.ErrEmailTaken
		}
	}
	cp := *a
	cp.ID = uuid.NewString()
	cp.Active = true
	cp.CreatedAt = time.Now()
	f.byID[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeAccountsRepo) find(match func(*models.Account) bool) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.byID {
		if a.Active && match(a) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeAccountsRepo) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	f.mu.Lock()
	f.emailLookups++
	f.mu.Unlock()
	return f.find(func(a *models.Account) bool { return a.Email == email })
}

func (f *fakeAccountsRepo) GetByID(_ context.Context, id string) (*models.Account, error) {
	return f.find(func(a *models.Account) bool { return a.ID == id })
}

func (f *fakeAccountsRepo) GetByRecoveryToken(_ context.Context, token string) (*models.Account, error) {
	return f.find(func(a *models.Account) bool { return a.RecoveryToken != nil && *a.RecoveryToken == token })
}

func (f *fakeAccountsRepo) update(id string, fn func(*models.Account)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	a, ok := f.byID[id]
	if !ok || !a.Active {
		return common.ErrorNotFound
	}
	fn(a)
	return nil
}

func (f *fakeAccountsRepo) UpdateAccountSecret(_ context.Context, id, hash string) error {
	return f.update(id, func(a *models.Account) {
		a.AccountSecretHash = hash
		a.RecoveryToken = nil
		a.RecoveryTokenExpiresAt = nil
	})
}

func (f *fakeAccountsRepo) ConsumeRecoveryToken(_ context.Context, token, hash string, now time.Time) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	if f.consumeErr != nil {
		return "", f.consumeErr
	}
	for _, a := range f.byID {
		if a.Active && a.RecoveryTokenValid(token, now) {
			a.AccountSecretHash = hash
			a.RecoveryToken = nil
			a.RecoveryTokenExpiresAt = nil
			return a.ID, nil
		}
	}
	return "", common.ErrorNotFound
}

func (f *fakeAccountsRepo) UpdateMasterSecret(_ context.Context, id, hash string) error {
	return f.update(id, func(a *models.Account) { a.MasterSecretHash = hash })
}

func (f *fakeAccountsRepo) SetRecoveryToken(_ context.Context, id, token string, expiresAt time.Time) error {
	return f.update(id, func(a *models.Account) {
		a.RecoveryToken = &token
		a.RecoveryTokenExpiresAt = &expiresAt
	})
}

func (f *fakeAccountsRepo) ClearRecoveryToken(_ context.Context, id string) error {
	return f.update(id, func(a *models.Account) {
		a.RecoveryToken = nil
		a.RecoveryTokenExpiresAt = nil
	})
}

func (f *fakeAccountsRepo) Touch(_ context.Context, id string, at time.Time) error {
	return f.update(id, func(a *models.Account) {
		a.LastAccessAt = &at
		f.touched = append(f.touched, id)
	})
}

// fakeCredentialsRepo stores credentials in memory and enforces the
// per-owner case-insensitive title uniqueness of the real index.
type fakeCredentialsRepo struct {
	mu      sync.Mutex
	byID    map[string]*models.Credential
	updates int
	err     error
}

func (f *fakeCredentialsRepo) titleTaken(ownerID, title, excludeID string) bool {
	for _, c := range f.byID {
		if c.OwnerID == ownerID && c.ID != excludeID && strings.EqualFold(c.Title, title) {
			return true
		}
	}
	return false
}

func (f *fakeCredentialsRepo) Create(_ context.Context, c *models.Credential) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.titleTaken(c.OwnerID, c.Title, "") {
		return common.ErrDuplicateTitle
	}
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeCredentialsRepo) Get(_ context.Context, ownerID, id string) (*models.Credential, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.byID[id]
	if !ok || c.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}
	cp := *c
	cp.History = append(models.History(nil), c.History...)
	return &cp, nil
}

func (f *fakeCredentialsRepo) GetForUpdate(ctx context.Context, ownerID, id string) (*models.Credential, error) {
	return f.Get(ctx, ownerID, id)
}

func (f *fakeCredentialsRepo) TitleExists(_ context.Context, ownerID, title, excludeID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	return f.titleTaken(ownerID, title, excludeID), nil
}

func (f *fakeCredentialsRepo) Update(_ context.Context, c *models.Credential) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	ex, ok := f.byID[c.ID]
	if !ok || ex.OwnerID != c.OwnerID {
		return common.ErrorNotFound
	}
	if f.titleTaken(c.OwnerID, c.Title, c.ID) {
		return common.ErrDuplicateTitle
	}
	cp := *c
	f.byID[c.ID] = &cp
	f.updates++
	return nil
}

func (f *fakeCredentialsRepo) Delete(_ context.Context, ownerID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok || c.OwnerID != ownerID {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeCredentialsRepo) List(_ context.Context, ownerID string, filter models.CredentialFilter) ([]*models.Credential, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Credential
	for _, c := range f.byID {
		if c.OwnerID != ownerID {
			continue
		}
		if filter.Category != nil && c.Category != *filter.Category {
			continue
		}
		if filter.FavoriteOnly && !c.IsFavorite {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(c.Title), strings.ToLower(filter.Search)) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title) })
	return out, nil
}
