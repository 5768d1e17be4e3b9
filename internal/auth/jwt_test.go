package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTM() *TokenManager {
	return NewTokenManager("access-secret", "refresh-secret", "certification-tracker", 15*time.Minute, 24*time.Hour)
}

func TestGenerateAndParsePair(t *testing.T) {
	tm := newTestTM()

	access, refresh, exp, err := tm.GeneratePair("u-1", "admin")
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, isRefresh, err := tm.ParseAny(access)
	require.NoError(t, err)
	assert.False(t, isRefresh)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	claims, isRefresh, err = tm.ParseAny(refresh)
	require.NoError(t, err)
	assert.True(t, isRefresh)
	assert.Equal(t, "u-1", claims.UserID)
}

func TestParseRejectsGarbageAndForeignTokens(t *testing.T) {
	tm := newTestTM()

	_, _, err := tm.ParseAny("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewTokenManager("different", "secrets", "someone-else", time.Minute, time.Hour)
	access, _, _, err := other.GeneratePair("u-1", "user")
	require.NoError(t, err)

	_, _, err = tm.ParseAny(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.NoError(t, VerifyPassword("hunter22", hash))
	assert.Error(t, VerifyPassword("wrong", hash))
}
