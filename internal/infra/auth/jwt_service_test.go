package auth

import (
	"testing"
	"time"

	"loyalty/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func newTestJWTService(t *testing.T) (*jwtService, *fixedClock) {
	t.Helper()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:    "test_access_secret_key_very_long_for_testing",
			AccessTTL: time.Hour,
		},
	}
	clock := &fixedClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}

	svc, err := NewJWTService(cfg, clock)
	require.NoError(t, err)

	return svc.(*jwtService), clock
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, clock := newTestJWTService(t)

	token, expiresAt, err := svc.GenerateAccessToken(42, "alice001", "manager")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, clock.now.Add(time.Hour), expiresAt)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice001", claims.Utorid)
	assert.Equal(t, "manager", claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, clock := newTestJWTService(t)

	token, _, err := svc.GenerateAccessToken(42, "alice001", "regular")
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Hour)

	claims, err := svc.ValidateToken(token)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	svc, _ := newTestJWTService(t)

	other, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKeyConfig{Access: "another_secret", AccessTTL: time.Hour},
	}, &fixedClock{now: svc.clock.Now()})
	require.NoError(t, err)

	forged, _, err := other.GenerateAccessToken(42, "alice001", "superuser")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: forged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{}, &fixedClock{})
	assert.Error(t, err)
}
