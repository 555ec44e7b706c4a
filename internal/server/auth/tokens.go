// Package auth issues and verifies the bearer tokens used by the transport:
// short-lived signed session tokens and opaque single-use recovery tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// recoveryTokenBytes is the entropy of a recovery token before hex encoding.
const recoveryTokenBytes = 32

// Claims are the session token claims. The token ID (jti) identifies a
// session for revocation.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
}

// Session describes a verified session token.
type Session struct {
	AccountID string
	TokenID   string
	ExpiresAt time.Time
}

// RecoveryToken is an opaque token together with its expiry.
type RecoveryToken struct {
	Value     string
	ExpiresAt time.Time
}

// TokenIssuer signs session tokens with HS256 and mints recovery tokens.
type TokenIssuer struct {
	secret      []byte
	sessionTTL  time.Duration
	recoveryTTL time.Duration
	now         func() time.Time
}

// NewTokenIssuer returns an issuer. An empty secret or a non-positive TTL is
// a configuration error.
func NewTokenIssuer(secret string, sessionTTL, recoveryTTL time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: token secret is empty", common.ErrConfiguration)
	}
	if sessionTTL <= 0 || recoveryTTL <= 0 {
		return nil, fmt.Errorf("%w: token validity must be positive", common.ErrConfiguration)
	}
	return &TokenIssuer{
		secret:      []byte(secret),
		sessionTTL:  sessionTTL,
		recoveryTTL: recoveryTTL,
		now:         time.Now,
	}, nil
}

// IssueSessionToken returns a signed token for accountID.
func (i *TokenIssuer) IssueSessionToken(accountID string) (string, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.sessionTTL)),
		},
		AccountID: accountID,
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// VerifySessionToken validates the signature and expiry of tokenString.
// It returns common.ErrTokenExpired for an expired but otherwise valid token
// and common.ErrInvalidToken for anything else.
func (i *TokenIssuer) VerifySessionToken(tokenString string) (*Session, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}
	if !token.Valid || claims.AccountID == "" || claims.ID == "" {
		return nil, common.ErrInvalidToken
	}

	return &Session{
		AccountID: claims.AccountID,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// IssueRecoveryToken returns a fresh random token valid for the recovery TTL.
func (i *TokenIssuer) IssueRecoveryToken() (*RecoveryToken, error) {
	value, err := common.MakeRandHexString(recoveryTokenBytes)
	if err != nil {
		return nil, fmt.Errorf("recovery token: %w", err)
	}
	return &RecoveryToken{Value: value, ExpiresAt: i.now().Add(i.recoveryTTL)}, nil
}
