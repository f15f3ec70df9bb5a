package service

import (
	"errors"
	"strings"

	"go-warehouse-sheets/internal/config"
	"go-warehouse-sheets/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService interface {
	Login(email, password string) (string, error)
}

// authService authenticates the single env-configured admin. The spreadsheet
// holds items, not users, so there is no user table to look up.
type authService struct {
	cfg          *config.Config
	passwordHash []byte
}

func NewAuthService(cfg *config.Config) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &authService{cfg: cfg, passwordHash: hash}, nil
}

func (s *authService) Login(email, password string) (string, error) {
	if !strings.EqualFold(strings.TrimSpace(email), s.cfg.AdminEmail) {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return jwt.GenerateToken([]byte(s.cfg.JWTSecret), s.cfg.AdminEmail)
}
