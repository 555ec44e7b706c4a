// Package services contains server-side business logic: the credential
// lifecycle, account flows, password generation and scoring, and backups.
package services

import "github.com/dmitrijs2005/passkeeper/internal/passgen"

// SecretCipher is the symmetric cipher for stored site secrets.
type SecretCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(cipherText string) (string, error)
}

// SecretHasher hashes account and master passwords.
type SecretHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, hash string) bool
}

// PasswordGenerator produces random passwords.
type PasswordGenerator interface {
	Generate(opts passgen.Options) (string, error)
}
