//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"clipvault/internal/pkg/clock"
	"clipvault/internal/pkg/config"
	"clipvault/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateAdminToken(t *testing.T) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, _, err := jwt.NewService(h.cfg.Secret, duration, clock.NewRealClock()).GenerateAdminToken()
	require.NoError(t, err)
	return token
}

// CreateExpiredToken issues a token from a clock set two durations in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	past := clock.NewMockClock(time.Now().Add(-2 * duration))
	token, _, err := jwt.NewService(h.cfg.Secret, duration, past).GenerateAdminToken()
	require.NoError(t, err)
	return token
}
