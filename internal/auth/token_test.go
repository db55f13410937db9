package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, err := tm.GenerateToken("user-123", "user@example.com", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.SubjectID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestGenerateTokenEmptySubject(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	_, err := tm.GenerateToken("", "user@example.com", false)
	assert.ErrorIs(t, err, ErrEmptySubject)
}

func TestParseTokenTamperedSignature(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, err := tm.GenerateToken("user-123", "user@example.com", false)
	require.NoError(t, err)

	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	claims, err := tm.ParseToken(tampered)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestParseTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-one", 60)
	verifier := NewTokenManager("secret-two", 60)

	token, err := issuer.GenerateToken("user-123", "user@example.com", false)
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestParseTokenMalformed(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		_, err := tm.ParseToken(raw)
		assert.ErrorIs(t, err, ErrTokenMalformed, "input %q", raw)
	}
}

func TestParseTokenExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	// GenerateToken never produces an expired token, so sign one
	// directly with an ExpiresAt in the past.
	claims := &Claims{
		SubjectID: "user-123",
		Email:     "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestNonExpiringTokenOptIn(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)

	token, err := tm.GenerateToken("user-123", "user@example.com", false)
	require.NoError(t, err)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestStripBearer(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", StripBearer("Bearer abc.def.ghi"))
	assert.Equal(t, "abc.def.ghi", StripBearer("bearer abc.def.ghi"))
	assert.Equal(t, "abc.def.ghi", StripBearer("BEARER abc.def.ghi"))
	assert.Equal(t, "abc.def.ghi", StripBearer("abc.def.ghi"))
	assert.Equal(t, "abc.def.ghi", StripBearer("Bearer  abc.def.ghi "))
	assert.Equal(t, "Basic dXNlcjpwYXNz", StripBearer("Basic dXNlcjpwYXNz"))
}
