package jwt

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret-at-least-32-characters!!")

	token, err := GenerateToken(secret, "admin@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("email = %q, want admin@example.com", claims.Email)
	}
	if claims.ID == "" {
		t.Error("token id is empty")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("secret-one-secret-one-secret-one"), "admin@example.com")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ValidateToken([]byte("secret-two-secret-two-secret-two"), token); err != ErrInvalidToken {
		t.Errorf("want ErrInvalidToken, got %v", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken([]byte("whatever"), "not.a.token"); err != ErrInvalidToken {
		t.Errorf("want ErrInvalidToken, got %v", err)
	}
}
