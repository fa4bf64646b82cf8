package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHashRefreshToken(t *testing.T) {
	hash := HashRefreshToken("some-token")

	// Deterministic sha256 hex, 64 characters, never the raw token.
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, HashRefreshToken("some-token"))
	assert.NotEqual(t, hash, HashRefreshToken("other-token"))
}

func TestRefreshTokenIsValid(t *testing.T) {
	token := &RefreshToken{ExpiresAt: time.Now().Add(time.Hour)}
	assert.True(t, token.IsValid())

	expired := &RefreshToken{ExpiresAt: time.Now().Add(-time.Hour)}
	assert.False(t, expired.IsValid())

	revoked := &RefreshToken{ExpiresAt: time.Now().Add(time.Hour), Revoked: true}
	assert.False(t, revoked.IsValid())
}
