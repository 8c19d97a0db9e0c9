package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/wardrobe/internal/domain"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	tok, err := m.Issue("anna@example.com", []string{domain.RoleUser})
	require.NoError(t, err)
	assert.NotEmpty(t, tok.AccessToken)
	assert.WithinDuration(t, time.Now().Add(time.Hour), tok.ExpiresAt, 5*time.Second)

	p, err := m.Verify(tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", p.Email)
	assert.Equal(t, []string{domain.RoleUser}, p.Roles)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := m.Issue("anna@example.com", nil)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(tok.AccessToken)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tok, err := NewTokenManager("secret-a", time.Hour).Issue("a@b.io", nil)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Verify(tok.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   "mallory@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Roles: []string{domain.RoleAdmin},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenManager("secret", time.Hour).Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	_, err := NewTokenManager("secret", time.Hour).Verify(strings.Repeat("x", 20))
	assert.ErrorIs(t, err, ErrInvalidToken)
}
