package usecase

import (
	"errors"
	"time"

	"clipvault/internal/pkg/errs"
	"clipvault/internal/pkg/jwt"
	"clipvault/internal/pkg/password"
)

var (
	ErrAdminLoginDisabled = errors.New("admin login is not configured")
	ErrTokenGeneration    = errors.New("token generation failed")
)

type AdminToken struct {
	Token     string
	ExpiresAt time.Time
}

type AdminAuthUseCase interface {
	Login(password string) (*AdminToken, error)
	ValidateToken(token string) error
}

type adminAuthUseCaseImpl struct {
	passwordHash string
	jwtService   *jwt.Service
}

func NewAdminAuthUseCase(passwordHash string, jwtService *jwt.Service) AdminAuthUseCase {
	return &adminAuthUseCaseImpl{
		passwordHash: passwordHash,
		jwtService:   jwtService,
	}
}

func (a *adminAuthUseCaseImpl) Login(pw string) (*AdminToken, error) {
	if err := password.Verify(a.passwordHash, pw); err != nil {
		if errors.Is(err, password.ErrLoginDisabled) {
			return nil, ErrAdminLoginDisabled
		}
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	token, expiresAt, err := a.jwtService.GenerateAdminToken()
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AdminToken{Token: token, ExpiresAt: expiresAt}, nil
}

func (a *adminAuthUseCaseImpl) ValidateToken(token string) error {
	_, err := a.jwtService.ValidateToken(token)
	return err
}
