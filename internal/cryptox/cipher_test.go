package cryptox

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "test-encryption-key"

func TestNewSecretCipher_EmptyKey(t *testing.T) {
	_, err := NewSecretCipher("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrConfiguration))
}

func TestSecretCipher_RoundTrip(t *testing.T) {
	c, err := NewSecretCipher(testKey)
	require.NoError(t, err)

	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "empty", plaintext: ""},
		{name: "ascii", plaintext: "hunter2"},
		{name: "unicode", plaintext: "пароль-密码-🔑"},
		{name: "long", plaintext: string(make([]byte, 4096))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, err := c.Encrypt(tt.plaintext)
			require.NoError(t, err)

			pt, err := c.Decrypt(ct)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, pt)
		})
	}
}

func TestSecretCipher_NonDeterministic(t *testing.T) {
	c, err := NewSecretCipher(testKey)
	require.NoError(t, err)

	a, err := c.Encrypt("same secret")
	require.NoError(t, err)
	b, err := c.Encrypt("same secret")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSecretCipher_WrongKey(t *testing.T) {
	ct, err := Encrypt("secret", testKey)
	require.NoError(t, err)

	_, err = Decrypt(ct, "another-key")
	assert.ErrorIs(t, err, common.ErrDecryption)
}

func TestSecretCipher_Malformed(t *testing.T) {
	c, err := NewSecretCipher(testKey)
	require.NoError(t, err)

	valid, err := c.Encrypt("secret")
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(valid)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff

	tests := []struct {
		name       string
		cipherText string
	}{
		{name: "not base64", cipherText: "%%%"},
		{name: "too short", cipherText: base64.StdEncoding.EncodeToString([]byte("short"))},
		{name: "tampered", cipherText: base64.StdEncoding.EncodeToString(raw)},
		{name: "empty", cipherText: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decrypt(tt.cipherText)
			assert.ErrorIs(t, err, common.ErrDecryption)
		})
	}
}

func TestEncrypt_EmptyKey(t *testing.T) {
	_, err := Encrypt("x", "")
	assert.ErrorIs(t, err, common.ErrConfiguration)

	_, err = Decrypt("x", "")
	assert.ErrorIs(t, err, common.ErrConfiguration)
}
