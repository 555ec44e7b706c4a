// Package strength implements the additive password strength heuristic
// used for generated and user-chosen site passwords.
package strength

import "unicode/utf8"

// StrongThreshold is the minimum score reported as strong.
const StrongThreshold = 70

// Points awarded by each independent check.
const (
	longLengthPoints  = 25
	shortLengthPoints = 15
	upperPoints       = 15
	lowerPoints       = 15
	digitPoints       = 15
	symbolPoints      = 20
	diversityPoints   = 10

	longLength  = 12
	shortLength = 8

	diversityRatio = 0.7
)

// Suggestions emitted for failed checks.
const (
	SuggestLength     = "Increase length to at least 12 characters"
	SuggestUpper      = "Add uppercase letters"
	SuggestLower      = "Add lowercase letters"
	SuggestDigits     = "Add digits"
	SuggestSymbols    = "Add special characters"
	AffirmationStrong = "Great password!"
)

// Result is the outcome of scoring one password.
type Result struct {
	Score       int      `json:"score"`
	IsStrong    bool     `json:"is_strong"`
	Suggestions []string `json:"suggestions"`
}

// Score rates password on a 0-100 scale. Each check contributes
// independently; a password with no suggestions gets a single affirmation
// instead of an empty list.
func Score(password string) Result {
	var (
		score       int
		suggestions []string
		hasUpper    bool
		hasLower    bool
		hasDigit    bool
		hasSymbol   bool
	)

	length := utf8.RuneCountInString(password)
	distinct := make(map[rune]struct{}, length)

	for _, r := range password {
		distinct[r] = struct{}{}
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	switch {
	case length >= longLength:
		score += longLengthPoints
	case length >= shortLength:
		score += shortLengthPoints
	default:
		suggestions = append(suggestions, SuggestLength)
	}

	if hasUpper {
		score += upperPoints
	} else {
		suggestions = append(suggestions, SuggestUpper)
	}

	if hasLower {
		score += lowerPoints
	} else {
		suggestions = append(suggestions, SuggestLower)
	}

	if hasDigit {
		score += digitPoints
	} else {
		suggestions = append(suggestions, SuggestDigits)
	}

	if hasSymbol {
		score += symbolPoints
	} else {
		suggestions = append(suggestions, SuggestSymbols)
	}

	// silent bonus
	if length > 0 && float64(len(distinct)) >= diversityRatio*float64(length) {
		score += diversityPoints
	}

	score = min(max(score, 0), 100)

	if len(suggestions) == 0 {
		suggestions = []string{AffirmationStrong}
	}

	return Result{
		Score:       score,
		IsStrong:    score >= StrongThreshold,
		Suggestions: suggestions,
	}
}
