package auth

import (
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken(secret, "user_2abc", "test@example.com", "session", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	if claims.UserID != "user_2abc" {
		t.Errorf("user_id = %q, want user_2abc", claims.UserID)
	}
	if claims.Email != "test@example.com" {
		t.Errorf("email = %q, want test@example.com", claims.Email)
	}
	if claims.Purpose != "session" {
		t.Errorf("purpose = %q, want session", claims.Purpose)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-a", "user_2abc", "test@example.com", "session", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ValidateToken("secret-b", token); err == nil {
		t.Fatal("expected error for wrong secret, got nil")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := GenerateToken("secret", "user_2abc", "test@example.com", "session", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ValidateToken("secret", token); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := ValidateToken("secret", "not-a-jwt"); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}
