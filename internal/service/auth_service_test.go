package service

import (
	"testing"

	"go-warehouse-sheets/internal/config"
)

func newTestAuth(t *testing.T) AuthService {
	t.Helper()
	svc, err := NewAuthService(&config.Config{
		JWTSecret:     "test-secret-at-least-32-characters!!",
		AdminEmail:    "admin@example.com",
		AdminPassword: "hunter2hunter2",
	})
	if err != nil {
		t.Fatal(err)
	}
	return svc
}

func TestLogin(t *testing.T) {
	svc := newTestAuth(t)

	token, err := svc.Login("admin@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Error("empty token on successful login")
	}

	// Email comparison is case-insensitive; the password is not.
	if _, err := svc.Login("ADMIN@example.com", "hunter2hunter2"); err != nil {
		t.Errorf("case-insensitive email rejected: %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuth(t)

	if _, err := svc.Login("admin@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Errorf("wrong password: want ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login("intruder@example.com", "hunter2hunter2"); err != ErrInvalidCredentials {
		t.Errorf("wrong email: want ErrInvalidCredentials, got %v", err)
	}
}
