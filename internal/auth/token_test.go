package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("test-secret-key-12345678901234567890")

	token, err := codec.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenCodec_Verify_Invalid(t *testing.T) {
	codec := NewTokenCodec("test-secret-key-12345678901234567890")
	other := NewTokenCodec("a-completely-different-secret-value")

	validToken, err := codec.Issue(7)
	require.NoError(t, err)

	// Structurally valid token but with a non-string userId claim.
	numericClaim := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"userId": 7})
	numericClaimToken, err := numericClaim.SignedString([]byte("test-secret-key-12345678901234567890"))
	require.NoError(t, err)

	// Unsigned "none"-algorithm token; the keyfunc's method check must reject it.
	wrongMethod := jwt.New(jwt.SigningMethodNone)
	wrongMethod.Claims = jwt.MapClaims{"userId": "7"}
	wrongMethodToken, err := wrongMethod.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"Empty", ""},
		{"Garbage", "not.a.token"},
		{"Tampered", validToken + "x"},
		{"Wrong Secret", mustIssue(t, other, 7)},
		{"Non-String Subject", numericClaimToken},
		{"Wrong Signing Method", wrongMethodToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenCodec_DistinctSecrets(t *testing.T) {
	// Secrets are injected per codec, so two instances never accept each
	// other's tokens.
	a := NewTokenCodec("secret-a-secret-a-secret-a-secret-a")
	b := NewTokenCodec("secret-b-secret-b-secret-b-secret-b")

	token := mustIssue(t, a, 1)

	_, err := a.Verify(token)
	assert.NoError(t, err)

	_, err = b.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func mustIssue(t *testing.T, codec *TokenCodec, userID uint) string {
	t.Helper()
	token, err := codec.Issue(userID)
	require.NoError(t, err)
	return token
}
