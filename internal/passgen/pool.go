// Package passgen generates random site passwords that contain at least one
// character of every enabled character class.
package passgen

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/passkeeper/internal/common"
)

const (
	MinLength     = 4
	MaxLength     = 128
	DefaultLength = 16
)

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
	symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Look-alike characters removed from each class when ExcludeAmbiguous is set.
const (
	ambiguousLower  = "ilo"
	ambiguousUpper  = "ILO"
	ambiguousDigits = "01"
	ambiguousSymbol = "|"
)

// AmbiguousCharacters is the union of the per-class look-alike tables.
const AmbiguousCharacters = ambiguousLower + ambiguousUpper + ambiguousDigits + ambiguousSymbol

// Options selects length and character classes of a generated password.
type Options struct {
	Length           int  `json:"length"`
	IncludeUpper     bool `json:"include_upper"`
	IncludeLower     bool `json:"include_lower"`
	IncludeDigits    bool `json:"include_digits"`
	IncludeSymbols   bool `json:"include_symbols"`
	ExcludeAmbiguous bool `json:"exclude_ambiguous"`
}

// DefaultOptions enables every class at DefaultLength.
func DefaultOptions() Options {
	return Options{
		Length:         DefaultLength,
		IncludeUpper:   true,
		IncludeLower:   true,
		IncludeDigits:  true,
		IncludeSymbols: true,
	}
}

// Validate reports common.ErrInvalidOptions for an out-of-range length or
// when no class is enabled.
func (o Options) Validate() error {
	if o.Length < MinLength || o.Length > MaxLength {
		return fmt.Errorf("%w: length must be between %d and %d", common.ErrInvalidOptions, MinLength, MaxLength)
	}
	if !o.IncludeLower && !o.IncludeUpper && !o.IncludeDigits && !o.IncludeSymbols {
		return fmt.Errorf("%w: at least one character class must be enabled", common.ErrInvalidOptions)
	}
	return nil
}

// Pool holds the alphabets of the enabled classes in generation order:
// lower, upper, digit, symbol.
type Pool struct {
	classes []string
	union   string
}

// NewPool builds the per-class alphabets for opts.
func NewPool(opts Options) (*Pool, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	type class struct {
		enabled   bool
		alphabet  string
		ambiguous string
	}

	all := []class{
		{opts.IncludeLower, lowercase, ambiguousLower},
		{opts.IncludeUpper, uppercase, ambiguousUpper},
		{opts.IncludeDigits, digits, ambiguousDigits},
		{opts.IncludeSymbols, symbols, ambiguousSymbol},
	}

	p := &Pool{}
	var union strings.Builder

	for _, c := range all {
		if !c.enabled {
			continue
		}
		alphabet := c.alphabet
		if opts.ExcludeAmbiguous {
			alphabet = removeChars(alphabet, c.ambiguous)
		}
		p.classes = append(p.classes, alphabet)
		union.WriteString(alphabet)
	}

	p.union = union.String()
	return p, nil
}

// Classes returns the alphabet of each enabled class, in generation order.
func (p *Pool) Classes() []string {
	return p.classes
}

// Alphabet returns the concatenation of all enabled class alphabets.
func (p *Pool) Alphabet() string {
	return p.union
}

func removeChars(s, chars string) string {
	var b strings.Builder
	for _, c := range s {
		if !strings.ContainsRune(chars, c) {
			b.WriteRune(c)
		}
	}
	return b.String()
}
