package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name            string
		password        string
		wantScore       int
		wantStrong      bool
		wantSuggestions []string
	}{
		{
			name:            "empty",
			password:        "",
			wantScore:       0,
			wantStrong:      false,
			wantSuggestions: []string{SuggestLength, SuggestUpper, SuggestLower, SuggestDigits, SuggestSymbols},
		},
		{
			name:            "short lowercase distinct",
			password:        "abc",
			wantScore:       lowerPoints + diversityPoints,
			wantSuggestions: []string{SuggestLength, SuggestUpper, SuggestDigits, SuggestSymbols},
		},
		{
			name:            "eight repeated digits",
			password:        "11111111",
			wantScore:       shortLengthPoints + digitPoints,
			wantSuggestions: []string{SuggestUpper, SuggestLower, SuggestSymbols},
		},
		{
			name:            "all classes long",
			password:        "Tr0ub4dor&3xtra!Len",
			wantScore:       100,
			wantStrong:      true,
			wantSuggestions: []string{AffirmationStrong},
		},
		{
			name:            "all classes long low diversity",
			password:        "Aa1!Aa1!Aa1!",
			wantScore:       longLengthPoints + upperPoints + lowerPoints + digitPoints + symbolPoints,
			wantStrong:      true,
			wantSuggestions: []string{AffirmationStrong},
		},
		{
			name:            "strong threshold without symbols",
			password:        "Abcdefgh1234",
			wantScore:       longLengthPoints + upperPoints + lowerPoints + digitPoints + diversityPoints,
			wantStrong:      true,
			wantSuggestions: []string{SuggestSymbols},
		},
		{
			name:            "medium length all classes",
			password:        "Ab1!cd2?",
			wantScore:       shortLengthPoints + upperPoints + lowerPoints + digitPoints + symbolPoints + diversityPoints,
			wantStrong:      true,
			wantSuggestions: []string{AffirmationStrong},
		},
		{
			name:            "non-ascii counts as special",
			password:        "пароль",
			wantScore:       symbolPoints + diversityPoints,
			wantSuggestions: []string{SuggestLength, SuggestUpper, SuggestLower, SuggestDigits},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.password)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantStrong, got.IsStrong)
			assert.Equal(t, tt.wantSuggestions, got.Suggestions)
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	for _, pw := range []string{"", "a", "Tr0ub4dor&3xtra!Len", "😀😀😀😀😀😀😀😀😀😀😀😀"} {
		got := Score(pw)
		assert.GreaterOrEqual(t, got.Score, 0)
		assert.LessOrEqual(t, got.Score, 100)
		assert.NotEmpty(t, got.Suggestions)
		assert.Equal(t, got.Score >= StrongThreshold, got.IsStrong)
	}
}
