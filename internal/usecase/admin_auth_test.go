//go:build unit

package usecase_test

import (
	"errors"
	"testing"
	"time"

	"clipvault/internal/pkg/clock"
	"clipvault/internal/pkg/errs"
	"clipvault/internal/pkg/jwt"
	"clipvault/internal/pkg/password"
	"clipvault/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminAuth(t *testing.T) {
	hash, err := password.Hash("correct horse")
	require.NoError(t, err)
	clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	svc := jwt.NewService("secret", time.Hour, clk)
	uc := usecase.NewAdminAuthUseCase(hash, svc)

	t.Run("success: token validates until it expires", func(t *testing.T) {
		tok, err := uc.Login("correct horse")
		require.NoError(t, err)
		assert.Equal(t, clk.Now().Add(time.Hour), tok.ExpiresAt)
		assert.NoError(t, uc.ValidateToken(tok.Token))

		clk.Add(2 * time.Hour)
		assert.ErrorIs(t, uc.ValidateToken(tok.Token), jwt.ErrExpiredToken)
	})

	t.Run("error: wrong password", func(t *testing.T) {
		_, err := uc.Login("battery staple")
		assert.True(t, errs.Is(err, errs.ErrInvalidCredentials))
	})

	t.Run("error: login disabled without a hash", func(t *testing.T) {
		_, err := usecase.NewAdminAuthUseCase("", svc).Login("anything")
		assert.True(t, errors.Is(err, usecase.ErrAdminLoginDisabled))
	})

	t.Run("error: token from another secret", func(t *testing.T) {
		other, _, err := jwt.NewService("other", time.Hour, clock.NewRealClock()).GenerateAdminToken()
		require.NoError(t, err)
		assert.ErrorIs(t, uc.ValidateToken(other), jwt.ErrInvalidToken)
	})
}
