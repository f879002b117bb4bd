package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox-api/internal/apperrors"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)

	token, err := service.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	personID, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), personID)
}

func TestTokenExpired(t *testing.T) {
	service := NewTokenService("test-secret", -time.Minute)

	token, err := service.Issue(7)
	require.NoError(t, err)

	_, err = service.Verify(token)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidToken))
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(7)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidToken))
}

func TestTokenGarbage(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := service.Verify(token)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidToken))
	}
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	limiter := NewRateLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("alice@example.com"))
	}
	assert.False(t, limiter.Allow("alice@example.com"))

	// other keys are unaffected
	assert.True(t, limiter.Allow("bob@example.com"))
}

func TestRateLimiterWindowSlides(t *testing.T) {
	limiter := NewRateLimiter(50*time.Millisecond, 2)

	assert.True(t, limiter.Allow("key"))
	assert.True(t, limiter.Allow("key"))
	assert.False(t, limiter.Allow("key"))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, limiter.Allow("key"))
}
