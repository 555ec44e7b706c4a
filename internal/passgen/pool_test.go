package passgen

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "defaults", opts: DefaultOptions()},
		{name: "min length", opts: Options{Length: MinLength, IncludeLower: true}},
		{name: "max length", opts: Options{Length: MaxLength, IncludeDigits: true}},
		{name: "too short", opts: Options{Length: MinLength - 1, IncludeLower: true}, wantErr: true},
		{name: "too long", opts: Options{Length: MaxLength + 1, IncludeLower: true}, wantErr: true},
		{name: "no classes", opts: Options{Length: 16, ExcludeAmbiguous: true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidOptions)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewPool_ClassOrder(t *testing.T) {
	p, err := NewPool(DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{lowercase, uppercase, digits, symbols}, p.Classes())
	assert.Equal(t, lowercase+uppercase+digits+symbols, p.Alphabet())
}

func TestNewPool_OnlyEnabled(t *testing.T) {
	p, err := NewPool(Options{Length: 8, IncludeDigits: true, IncludeUpper: true})
	require.NoError(t, err)

	assert.Equal(t, []string{uppercase, digits}, p.Classes())
}

func TestNewPool_ExcludeAmbiguous(t *testing.T) {
	opts := DefaultOptions()
	opts.ExcludeAmbiguous = true

	p, err := NewPool(opts)
	require.NoError(t, err)

	assert.False(t, strings.ContainsAny(p.Alphabet(), AmbiguousCharacters))
	for _, class := range p.Classes() {
		assert.NotEmpty(t, class)
	}
}
