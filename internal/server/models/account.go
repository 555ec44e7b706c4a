// Package models defines server-side data models persisted in the database.
package models

import (
	"crypto/subtle"
	"strings"
	"time"
)

// Account owns credentials and carries the two independent password hashes.
// AccountSecretHash gates session login; MasterSecretHash gates revealing
// stored secrets. The two are never compared with each other.
type Account struct {
	ID                     string
	Email                  string
	DisplayName            string
	AccountSecretHash      string
	MasterSecretHash       string
	RecoveryToken          *string
	RecoveryTokenExpiresAt *time.Time
	Active                 bool
	LastAccessAt           *time.Time
	CreatedAt              time.Time
}

// NormalizeEmail trims and lowercases an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RecoveryTokenValid reports whether token matches the stored recovery token
// and has not expired at now.
func (a *Account) RecoveryTokenValid(token string, now time.Time) bool {
	if a.RecoveryToken == nil || a.RecoveryTokenExpiresAt == nil {
		return false
	}
	match := subtle.ConstantTimeCompare([]byte(*a.RecoveryToken), []byte(token)) == 1
	return match && now.Before(*a.RecoveryTokenExpiresAt)
}
