package services

import (
	"crypto/rand"
	"testing"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/passgen"
	"github.com/dmitrijs2005/passkeeper/internal/strength"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordService_Generate(t *testing.T) {
	s := NewPasswordService(passgen.NewGenerator(rand.Reader))

	opts := passgen.DefaultOptions()
	opts.Length = 20

	got, err := s.Generate(opts)
	require.NoError(t, err)
	assert.Len(t, got.Password, 20)
	assert.Equal(t, strength.Score(got.Password), got.Strength)
	assert.True(t, got.Strength.IsStrong)
}

func TestPasswordService_GenerateInvalid(t *testing.T) {
	s := NewPasswordService(passgen.NewGenerator(rand.Reader))

	_, err := s.Generate(passgen.Options{Length: 2, IncludeLower: true})
	assert.ErrorIs(t, err, common.ErrInvalidOptions)
}

func TestPasswordService_Score(t *testing.T) {
	s := NewPasswordService(passgen.NewGenerator(rand.Reader))

	r := s.Score("")
	assert.Equal(t, 0, r.Score)
	assert.False(t, r.IsStrong)
	assert.NotEmpty(t, r.Suggestions)
}
