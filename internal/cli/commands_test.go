package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	pb "github.com/dmitrijs2005/passkeeper/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestRegister(t *testing.T) {
	stubPasswords(t, "pw-1", "pw-1", "master-1", "master-1")
	fake := &fakeVault{}

	out, err := run(t, fake, "register", "-e", "me@example.com", "--name", "Me")
	require.NoError(t, err)
	assert.Equal(t, "Registration accepted. Log in with your email and password.\n", out)
	require.NotNil(t, fake.register)
	assert.Equal(t, "me@example.com", fake.register.Email)
	assert.Equal(t, "Me", fake.register.DisplayName)
	assert.Equal(t, "pw-1", fake.register.Password)
	assert.Equal(t, "master-1", fake.register.MasterPassword)
}

func TestRegister_RequiresEmail(t *testing.T) {
	_, err := run(t, &fakeVault{}, "register")
	require.Error(t, err)
}

func TestLogin_PrintsToken(t *testing.T) {
	stubPasswords(t, "pw-1")
	fake := &fakeVault{}

	out, err := run(t, fake, "login", "-e", "me@example.com")
	require.NoError(t, err)
	assert.Equal(t, "session-token\n", out)
	assert.Equal(t, "pw-1", fake.login.Password)
}

func TestLogin_Unauthorized(t *testing.T) {
	stubPasswords(t, "wrong")
	fake := &fakeVault{err: status.Error(codes.Unauthenticated, "unauthorized")}

	_, err := run(t, fake, "login", "-e", "me@example.com")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticatedCommands_RequireToken(t *testing.T) {
	for _, args := range [][]string{
		{"logout"},
		{"list"},
		{"show", "cred-1"},
		{"delete", "cred-1"},
		{"export"},
	} {
		t.Run(args[0], func(t *testing.T) {
			_, err := run(t, &fakeVault{}, args...)
			require.ErrorIs(t, err, ErrNotLoggedIn)
		})
	}
}

func TestLogout_SendsToken(t *testing.T) {
	fake := &fakeVault{}

	out, err := run(t, fake, "logout", "--token", "tok")
	require.NoError(t, err)
	assert.Equal(t, "Logged out\n", out)
	assert.Equal(t, 1, fake.logouts)
	assert.Equal(t, "tok", fake.token)
}

func TestRecoverAndReset(t *testing.T) {
	fake := &fakeVault{}

	out, err := run(t, fake, "recover", "-e", "me@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "recovery token")
	assert.Equal(t, "me@example.com", fake.recovery.Email)

	stubPasswords(t, "new-pw", "new-pw")
	out, err = run(t, fake, "reset", "rec-token")
	require.NoError(t, err)
	assert.Equal(t, "Password reset\n", out)
	assert.Equal(t, "rec-token", fake.reset.Token)
	assert.Equal(t, "new-pw", fake.reset.NewPassword)
}

func TestPasswd(t *testing.T) {
	fake := &fakeVault{}

	stubPasswords(t, "old", "new", "new")
	_, err := run(t, fake, "passwd", "-t", "tok")
	require.NoError(t, err)
	require.NotNil(t, fake.change)
	assert.Equal(t, "old", fake.change.CurrentPassword)
	assert.Equal(t, "new", fake.change.NewPassword)
	assert.Nil(t, fake.master)

	stubPasswords(t, "m-old", "m-new", "m-new")
	out, err := run(t, fake, "passwd", "--master", "-t", "tok")
	require.NoError(t, err)
	assert.Equal(t, "Changed master password\n", out)
	assert.Equal(t, "m-old", fake.master.CurrentMasterPassword)
	assert.Equal(t, "m-new", fake.master.NewMasterPassword)
}

func TestPasswd_SameAsCurrent(t *testing.T) {
	stubPasswords(t, "same", "same", "same")
	fake := &fakeVault{}

	_, err := run(t, fake, "passwd", "-t", "tok")
	require.Error(t, err)
	assert.Nil(t, fake.change)
}

func TestAdd_PromptsForSecret(t *testing.T) {
	stubPasswords(t, "hunter2")
	fake := &fakeVault{}

	out, err := run(t, fake, "add", "-t", "tok", "--title", "GitHub", "--login", "octocat", "-c", "work", "-f")
	require.NoError(t, err)
	assert.Equal(t, "Created GitHub (cred-1)\n", out)

	req := fake.create
	require.NotNil(t, req)
	assert.Equal(t, "hunter2", req.Secret)
	assert.Nil(t, req.Generate)
	require.NotNil(t, req.LoginName)
	assert.Equal(t, "octocat", *req.LoginName)
	assert.Nil(t, req.Url)
	assert.Equal(t, "work", req.Category)
	assert.True(t, req.IsFavorite)
}

func TestAdd_Generate(t *testing.T) {
	fake := &fakeVault{}

	_, err := run(t, fake, "add", "-t", "tok", "--title", "Bank", "-g", "-l", "24")
	require.NoError(t, err)
	require.NotNil(t, fake.create.Generate)
	assert.Equal(t, int32(24), fake.create.Generate.Length)
	assert.True(t, fake.create.Generate.IncludeSymbols)
	assert.Empty(t, fake.create.Secret)
}

func TestAdd_DuplicateTitle(t *testing.T) {
	fake := &fakeVault{err: status.Error(codes.AlreadyExists, "credential title already exists")}

	_, err := run(t, fake, "add", "-t", "tok", "--title", "Bank", "-g")
	require.EqualError(t, err, "credential title already exists")
}

func TestEdit_SendsOnlyChangedFields(t *testing.T) {
	fake := &fakeVault{}

	out, err := run(t, fake, "edit", "cred-1", "-t", "tok", "--url", "https://example.org", "--notes=", "-c", "banking")
	require.NoError(t, err)
	assert.Contains(t, out, "GitHub")

	req := fake.update
	assert.Equal(t, "cred-1", req.Id)
	assert.Nil(t, req.Title)
	assert.Nil(t, req.LoginName)
	assert.Nil(t, req.Secret)
	assert.Nil(t, req.IsFavorite)
	require.NotNil(t, req.Url)
	assert.Equal(t, "https://example.org", *req.Url)
	require.NotNil(t, req.Notes)
	assert.Equal(t, "", *req.Notes)
	require.NotNil(t, req.Category)
	assert.Equal(t, "banking", *req.Category)
}

func TestEdit_Secret(t *testing.T) {
	stubPasswords(t, "rotated")
	fake := &fakeVault{}

	_, err := run(t, fake, "edit", "cred-1", "-t", "tok", "--secret", "--favorite=false")
	require.NoError(t, err)
	require.NotNil(t, fake.update.Secret)
	assert.Equal(t, "rotated", *fake.update.Secret)
	require.NotNil(t, fake.update.IsFavorite)
	assert.False(t, *fake.update.IsFavorite)
}

func TestEdit_InvalidCategory(t *testing.T) {
	fake := &fakeVault{}

	_, err := run(t, fake, "edit", "cred-1", "-t", "tok", "-c", "games")
	require.Error(t, err)
	assert.Nil(t, fake.update)
}

func TestList(t *testing.T) {
	fake := &fakeVault{credentials: []*pb.Credential{
		{Id: "a", Title: "Alpha", Category: "work", IsFavorite: true},
		{Id: "b", Title: "Beta", Category: "other"},
	}}

	out, err := run(t, fake, "ls", "-t", "tok", "-c", "work", "-f", "-q", "alp")
	require.NoError(t, err)
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Beta")
	assert.Equal(t, "work", fake.list.Category)
	assert.True(t, fake.list.FavoriteOnly)
	assert.Equal(t, "alp", fake.list.Search)
}

func TestList_Empty(t *testing.T) {
	out, err := run(t, &fakeVault{}, "list", "-t", "tok")
	require.NoError(t, err)
	assert.Equal(t, "No credentials\n", out)
}

func TestShow(t *testing.T) {
	out, err := run(t, &fakeVault{}, "show", "cred-1", "-t", "tok")
	require.NoError(t, err)
	assert.Contains(t, out, "GitHub")
	assert.Contains(t, out, "octocat")
	assert.Contains(t, out, "2025-01-02T03:04:05Z")
	assert.NotContains(t, out, "hunter2")
}

func TestShow_NotFound(t *testing.T) {
	fake := &fakeVault{err: status.Error(codes.NotFound, "not found")}

	_, err := run(t, fake, "show", "missing", "-t", "tok")
	require.EqualError(t, err, "not found")
}

func TestReveal(t *testing.T) {
	stubPasswords(t, "master-1")
	fake := &fakeVault{}

	out, err := run(t, fake, "reveal", "cred-1", "-t", "tok")
	require.NoError(t, err)
	assert.Equal(t, "hunter2\n", out)
	assert.Equal(t, "cred-1", fake.reveal.Id)
	assert.Equal(t, "master-1", fake.reveal.MasterPassword)
}

func TestDeleteAndExport(t *testing.T) {
	fake := &fakeVault{}

	out, err := run(t, fake, "rm", "cred-1", "-t", "tok")
	require.NoError(t, err)
	assert.Equal(t, "Deleted cred-1\n", out)
	assert.Equal(t, "cred-1", fake.deleted)

	out, err = run(t, fake, "export", "-t", "tok")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 3 credentials")
	assert.Contains(t, out, "https://s3.local/x")
}

func TestExport_Download(t *testing.T) {
	old := downloadBackup
	t.Cleanup(func() { downloadBackup = old })
	var gotURL string
	downloadBackup = func(_ context.Context, url string) ([]byte, error) {
		gotURL = url
		return []byte(`{"credentials":[]}`), nil
	}

	path := filepath.Join(t.TempDir(), "out", "vault.json")
	out, err := run(t, &fakeVault{}, "export", "-t", "tok", "-o", path)
	require.NoError(t, err)
	assert.Equal(t, "https://s3.local/x", gotURL)
	assert.Contains(t, out, "Saved "+path)
	assert.NotContains(t, out, "https://s3.local/x")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"credentials":[]}`, string(data))
}

func TestExport_DownloadFails(t *testing.T) {
	old := downloadBackup
	t.Cleanup(func() { downloadBackup = old })
	downloadBackup = func(context.Context, string) ([]byte, error) {
		return nil, errors.New("download failed: 403 Forbidden")
	}

	path := filepath.Join(t.TempDir(), "vault.json")
	_, err := run(t, &fakeVault{}, "export", "-t", "tok", "-o", path)
	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConnectFailure(t *testing.T) {
	t.Setenv(EnvToken, "")
	a := &App{connect: func(string) (vaultAPI, func() error, error) {
		return nil, nil, errors.New("dial failed")
	}}
	root := newRootCmd(a)
	root.SetArgs([]string{"export", "-t", "tok"})

	err := root.Execute()
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestMapError(t *testing.T) {
	require.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(status.Error(codes.Unavailable, "x")), ErrUnavailable)
	assert.ErrorIs(t, mapError(status.Error(codes.DeadlineExceeded, "x")), ErrUnavailable)
	assert.ErrorIs(t, mapError(status.Error(codes.Unauthenticated, "token expired")), ErrUnauthorized)
	assert.EqualError(t, mapError(status.Error(codes.InvalidArgument, "bad title")), "bad title")

	plain := errors.New("plain")
	assert.Equal(t, plain, mapError(plain))
}
