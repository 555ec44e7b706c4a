package cli

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/passgen"
	"github.com/dmitrijs2005/passkeeper/internal/strength"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Defaults(t *testing.T) {
	out, err := run(t, &fakeVault{}, "generate")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.Len(t, lines[0], passgen.DefaultLength)
}

func TestGenerate_CountAndLength(t *testing.T) {
	out, err := run(t, &fakeVault{}, "generate", "-l", "20", "-n", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Len(t, l, 20)
	}
}

func TestGenerate_ClassToggles(t *testing.T) {
	out, err := run(t, &fakeVault{}, "generate", "--no-upper", "--no-digits", "--no-symbols", "--exclude-ambiguous", "-l", "64")
	require.NoError(t, err)

	pw := strings.TrimSpace(out)
	require.Len(t, pw, 64)
	for _, r := range pw {
		assert.True(t, r >= 'a' && r <= 'z', "unexpected %q", r)
		assert.NotContains(t, passgen.AmbiguousCharacters, string(r))
	}
}

func TestGenerate_WithStrength(t *testing.T) {
	out, err := run(t, &fakeVault{}, "generate", "--strength")
	require.NoError(t, err)
	assert.Contains(t, out, "Strength: ")
}

func TestGenerate_Rejections(t *testing.T) {
	_, err := run(t, &fakeVault{}, "generate", "-l", "2")
	require.ErrorIs(t, err, common.ErrInvalidOptions)

	_, err = run(t, &fakeVault{}, "generate", "--no-upper", "--no-lower", "--no-digits", "--no-symbols")
	require.ErrorIs(t, err, common.ErrInvalidOptions)

	_, err = run(t, &fakeVault{}, "generate", "-n", "0")
	require.Error(t, err)

	_, err = run(t, &fakeVault{}, "generate", "extra")
	require.Error(t, err)
}

func TestScore_Argument(t *testing.T) {
	out, err := run(t, &fakeVault{}, "score", "Abcdefgh1!xy")
	require.NoError(t, err)
	assert.Contains(t, out, "Strength: 100/100")
	assert.Contains(t, out, "strong")
	assert.Contains(t, out, strength.AffirmationStrong)
}

func TestScore_Prompt(t *testing.T) {
	stubPasswords(t, "abc")

	out, err := run(t, &fakeVault{}, "score")
	require.NoError(t, err)
	assert.Contains(t, out, "Strength: 25/100")
	assert.Contains(t, out, "weak")
	assert.Contains(t, out, strength.SuggestLength)
	assert.Contains(t, out, strength.SuggestSymbols)
}

func TestScore_PromptEmpty(t *testing.T) {
	stubPasswords(t, "   ")

	_, err := run(t, &fakeVault{}, "score")
	require.ErrorIs(t, err, ErrEmptyInput)
}
