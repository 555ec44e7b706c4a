package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/passkeeper/internal/common"
)

// Category is the closed set of credential groupings.
type Category string

const (
	CategoryWork          Category = "work"
	CategoryPersonal      Category = "personal"
	CategorySocial        Category = "social"
	CategoryBanking       Category = "banking"
	CategoryShopping      Category = "shopping"
	CategoryEntertainment Category = "entertainment"
	CategoryOther         Category = "other"
)

// DefaultCategory is assigned when none is given.
const DefaultCategory = CategoryOther

var categories = []Category{
	CategoryWork, CategoryPersonal, CategorySocial, CategoryBanking,
	CategoryShopping, CategoryEntertainment, CategoryOther,
}

// Categories returns every valid category.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// ParseCategory accepts a category name case-insensitively. An empty string
// yields DefaultCategory.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultCategory, nil
	}
	for _, c := range categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrInvalidCategory, s)
}
