// Package auth implements signed identity tokens.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned by Verify for any structurally malformed,
// tampered, or otherwise unverifiable token.
var ErrInvalidToken = errors.New("invalid token")

// TokenCodec issues and verifies HS256-signed identity tokens. The secret is
// injected at construction so tests can supply distinct secrets; it is shared
// process-wide, not per-user.
//
// Tokens carry no expiry claim. Stateless verification without expiry trades
// revocability for simplicity and is known debt, tracked in DESIGN.md.
type TokenCodec struct {
	secret []byte
}

// NewTokenCodec creates a codec signing with the given shared secret.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// Issue signs a token whose payload carries the subject user id.
func (tc *TokenCodec) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": strconv.FormatUint(uint64(userID), 10),
		"iat":    now.Unix(),
		"jti":    uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tc.secret)
}

// Verify checks the signature and returns the subject user id. Any failure
// mode (bad structure, wrong signing method, tampered payload, missing or
// malformed subject) collapses into ErrInvalidToken.
func (tc *TokenCodec) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return tc.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	sub, ok := claims["userId"].(string)
	if !ok {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return uint(userID), nil
}
