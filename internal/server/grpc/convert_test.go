package grpc

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/passgen"
	pb "github.com/dmitrijs2005/passkeeper/internal/proto"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func TestGenerationOptions(t *testing.T) {
	assert.Equal(t, passgen.DefaultOptions(), generationOptions(nil))

	got := generationOptions(&pb.GenerationOptions{Length: 12, IncludeDigits: true, ExcludeAmbiguous: true})
	assert.Equal(t, passgen.Options{Length: 12, IncludeDigits: true, ExcludeAmbiguous: true}, got)
}

func TestCredentialPatch_Presence(t *testing.T) {
	p := credentialPatch(&pb.UpdateCredentialRequest{Id: "c1"})
	assert.False(t, p.Title.Present())
	assert.False(t, p.LoginName.Present())
	assert.False(t, p.LoginEmail.Present())
	assert.False(t, p.URL.Present())
	assert.False(t, p.Notes.Present())
	assert.False(t, p.Secret.Present())
	assert.False(t, p.IsFavorite.Present())
	assert.False(t, p.Category.Present())

	p = credentialPatch(&pb.UpdateCredentialRequest{
		Id:         "c1",
		Title:      proto.String("Mail"),
		Url:        proto.String("https://example.org"),
		Notes:      proto.String(""),
		IsFavorite: proto.Bool(false),
		Category:   proto.String("work"),
	})
	require.True(t, p.Title.Present())
	assert.Equal(t, "Mail", *p.Title.Value())
	assert.Equal(t, "https://example.org", *p.URL.Value())
	require.True(t, p.Notes.Present())
	assert.Nil(t, models.StringPatch(p.Notes).Value())
	require.True(t, p.IsFavorite.Present())
	assert.False(t, *p.IsFavorite.Value())
	assert.Equal(t, models.CategoryWork, *p.Category.Value())
	assert.False(t, p.LoginName.Present())
}

func TestCredentialPatch_EmptyCategoryClears(t *testing.T) {
	p := credentialPatch(&pb.UpdateCredentialRequest{Id: "c1", Category: proto.String("")})
	require.True(t, p.Category.Present())
	assert.Nil(t, p.Category.Value())
}

func TestCredential_View(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	login := "octocat"
	v := &models.CredentialView{
		ID: "c1", Title: "GitHub", LoginName: &login, Category: models.CategoryWork,
		IsFavorite: true, HistoryCount: 2, CreatedAt: created,
	}

	c := credential(v)
	assert.Equal(t, "c1", c.GetId())
	assert.Equal(t, "octocat", c.GetLoginName())
	assert.Nil(t, c.Url)
	assert.Equal(t, "work", c.GetCategory())
	assert.Equal(t, int32(2), c.GetHistoryCount())
	assert.Equal(t, created, c.GetCreatedAt().AsTime())
	assert.Nil(t, c.GetModifiedAt())

	modified := created.Add(time.Hour)
	v.ModifiedAt = &modified
	assert.Equal(t, modified, credential(v).GetModifiedAt().AsTime())
}
