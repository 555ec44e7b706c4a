// Package cryptox holds the symmetric cipher used for stored site secrets
// and the one-way hasher used for account and master passwords.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"golang.org/x/crypto/hkdf"
)

const (
	keySize   = 32
	nonceSize = 12
)

// keyInfo is the HKDF context label for the secret cipher key.
var keyInfo = []byte("passkeeper/secret-cipher/v1")

// SecretCipher encrypts and decrypts site secrets with AES-256-GCM under a
// single process-wide key. It is safe for concurrent use.
type SecretCipher struct {
	aead cipher.AEAD
}

// NewSecretCipher derives the AES key from the configured key string.
// An empty key is a configuration error: the caller must not start without
// encryption.
func NewSecretCipher(key string) (*SecretCipher, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: encryption key is not set", common.ErrConfiguration)
	}

	derived := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(key), nil, keyInfo), derived); err != nil {
		return nil, fmt.Errorf("key derivation: %w", err)
	}
	defer common.WipeByteArray(derived)

	block, err := aes.NewCipher(derived)
	if err != nil {
		return nil, err
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &SecretCipher{aead: aead}, nil
}

// Encrypt seals plaintext with a fresh random nonce and returns
// base64(nonce || ciphertext). Two calls on the same input never return the
// same cipher text.
func (c *SecretCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a cipher text produced by Encrypt. Any failure, whether a
// malformed input or a key mismatch, is reported as common.ErrDecryption
// without further detail.
func (c *SecretCipher) Decrypt(cipherText string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(cipherText)
	if err != nil || len(raw) < nonceSize+c.aead.Overhead() {
		return "", common.ErrDecryption
	}

	plaintext, err := c.aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return "", common.ErrDecryption
	}

	return string(plaintext), nil
}

// Encrypt is a one-shot helper around NewSecretCipher(key).Encrypt.
func Encrypt(plaintext, key string) (string, error) {
	c, err := NewSecretCipher(key)
	if err != nil {
		return "", err
	}
	return c.Encrypt(plaintext)
}

// Decrypt is a one-shot helper around NewSecretCipher(key).Decrypt.
func Decrypt(cipherText, key string) (string, error) {
	c, err := NewSecretCipher(key)
	if err != nil {
		return "", err
	}
	return c.Decrypt(cipherText)
}
