package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/server/auth"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/dmitrijs2005/passkeeper/internal/server/services"
)

const (
	validToken   = "valid-token"
	testAccount  = "acc-1"
	testMaster   = "master-pw"
	testPassword = "account-pw"
)

type fakeAccounts struct {
	loggedOut   []string
	recoveryFor []string
	registered  []string
	registerErr error
}

func (f *fakeAccounts) Register(_ context.Context, r services.Registration) (*models.Account, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.registered = append(f.registered, r.Email)
	if r.Email == "taken@example.com" {
		return nil, common.ErrEmailTaken
	}
	return &models.Account{ID: testAccount, Email: r.Email}, nil
}

func (f *fakeAccounts) Login(_ context.Context, email, password string) (string, error) {
	if password != testPassword {
		return "", common.ErrorUnauthorized
	}
	return validToken, nil
}

func (f *fakeAccounts) VerifyMaster(_ context.Context, accountID, master string) error {
	if accountID != testAccount || master != testMaster {
		return common.ErrorUnauthorized
	}
	return nil
}

func (f *fakeAccounts) ChangePassword(_ context.Context, _, current, _ string) error {
	if current != testPassword {
		return common.ErrorUnauthorized
	}
	return nil
}

func (f *fakeAccounts) ChangeMasterPassword(_ context.Context, _, current, _ string) error {
	if current != testMaster {
		return common.ErrorUnauthorized
	}
	return nil
}

func (f *fakeAccounts) RequestRecovery(_ context.Context, email string) error {
	f.recoveryFor = append(f.recoveryFor, email)
	return nil
}

func (f *fakeAccounts) ResetPassword(_ context.Context, token, _ string) error {
	if token != "recovery" {
		return common.ErrInvalidToken
	}
	return nil
}

func (f *fakeAccounts) Authenticate(_ context.Context, token string) (*auth.Session, error) {
	switch token {
	case validToken:
		return &auth.Session{AccountID: testAccount, TokenID: "jti", ExpiresAt: time.Now().Add(time.Hour)}, nil
	case "expired":
		return nil, common.ErrTokenExpired
	default:
		return nil, common.ErrInvalidToken
	}
}

func (f *fakeAccounts) Logout(_ context.Context, token string) error {
	f.loggedOut = append(f.loggedOut, token)
	return nil
}

type fakeCredentials struct {
	items     map[string]*models.Credential
	revealed  int
	lastPatch models.CredentialPatch
}

func newFakeCredentials() *fakeCredentials {
	return &fakeCredentials{items: map[string]*models.Credential{}}
}

func (f *fakeCredentials) Create(_ context.Context, owner string, in services.NewCredential) (*models.CredentialView, error) {
	for _, c := range f.items {
		if c.OwnerID == owner && c.Title == in.Title {
			return nil, common.ErrDuplicateTitle
		}
	}
	c := &models.Credential{ID: "c" + in.Title, OwnerID: owner, Title: in.Title, CipherText: "enc:" + in.Secret, Category: models.DefaultCategory}
	f.items[c.ID] = c
	return c.View(), nil
}

func (f *fakeCredentials) find(owner, id string) (*models.Credential, error) {
	c, ok := f.items[id]
	if !ok || c.OwnerID != owner {
		return nil, common.ErrorNotFound
	}
	return c, nil
}

func (f *fakeCredentials) Update(_ context.Context, owner, id string, patch models.CredentialPatch) (*models.CredentialView, error) {
	c, err := f.find(owner, id)
	if err != nil {
		return nil, err
	}
	f.lastPatch = patch
	c.Notes = models.StringPatch(patch.Notes).Apply(c.Notes)
	if v := patch.Secret.Value(); v != nil {
		c.History = c.History.Push(models.HistoryEntry{CipherText: c.CipherText})
		c.CipherText = "enc:" + *v
	}
	return c.View(), nil
}

func (f *fakeCredentials) Reveal(_ context.Context, owner, id string) (string, error) {
	c, err := f.find(owner, id)
	if err != nil {
		return "", err
	}
	f.revealed++
	return c.CipherText[len("enc:"):], nil
}

func (f *fakeCredentials) Delete(_ context.Context, owner, id string) error {
	if _, err := f.find(owner, id); err != nil {
		return err
	}
	delete(f.items, id)
	return nil
}

func (f *fakeCredentials) Get(_ context.Context, owner, id string) (*models.CredentialView, error) {
	c, err := f.find(owner, id)
	if err != nil {
		return nil, err
	}
	return c.View(), nil
}

func (f *fakeCredentials) List(_ context.Context, owner string, filter models.CredentialFilter) ([]*models.CredentialView, error) {
	var out []*models.CredentialView
	for _, c := range f.items {
		if c.OwnerID != owner {
			continue
		}
		if filter.Category != nil && c.Category != *filter.Category {
			continue
		}
		out = append(out, c.View())
	}
	return out, nil
}

type fakeBackups struct {
	err error
}

func (f *fakeBackups) Export(_ context.Context, owner string) (*services.Backup, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &services.Backup{Key: "backups/" + owner + "/x.json", DownloadURL: "https://s3.local/x", Count: 1}, nil
}
