package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.NoError(t, VerifyPassword("hunter22", hash))
	assert.Error(t, VerifyPassword("wrong", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", "tradesim", time.Hour)

	tok, exp, err := tm.Issue("user-1")
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := tm.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager("secret", "tradesim", -time.Minute)

	tok, _, err := tm.Issue("user-1")
	require.NoError(t, err)

	_, err = tm.Parse(tok)
	assert.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret", "tradesim", time.Hour)
	other := NewTokenManager("different", "tradesim", time.Hour)

	tok, _, err := tm.Issue("user-1")
	require.NoError(t, err)

	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestTokenWrongIssuer(t *testing.T) {
	tm := NewTokenManager("secret", "someone-else", time.Hour)
	ours := NewTokenManager("secret", "tradesim", time.Hour)

	tok, _, err := tm.Issue("user-1")
	require.NoError(t, err)

	_, err = ours.Parse(tok)
	assert.Error(t, err)
}
