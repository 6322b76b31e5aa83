package utils

import (
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if !CheckPasswordHash("correct horse battery staple", hash) {
		t.Error("Expected matching password to verify")
	}
	if CheckPasswordHash("wrong password", hash) {
		t.Error("Expected mismatched password to fail")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWTToken("abc123", "therapist@example.com", "therapist")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	claims, err := ParseJWTToken(token)
	if err != nil {
		t.Fatalf("Failed to parse token: %v", err)
	}
	if claims.UserID != "abc123" {
		t.Errorf("Expected user id abc123, got %s", claims.UserID)
	}
	if claims.Email != "therapist@example.com" {
		t.Errorf("Expected email therapist@example.com, got %s", claims.Email)
	}
	if claims.Role != "therapist" {
		t.Errorf("Expected role therapist, got %s", claims.Role)
	}

	valid, email, err := ValidateTokenAndFetchEmail(token)
	if err != nil || !valid {
		t.Fatalf("Expected token to validate, got valid=%v err=%v", valid, err)
	}
	if email != "therapist@example.com" {
		t.Errorf("Expected email from token, got %s", email)
	}
}

func TestParseJWTTokenRejectsGarbage(t *testing.T) {
	SetJWTSecret("test-secret")
	if _, err := ParseJWTToken("not-a-token"); err == nil {
		t.Error("Expected error for malformed token")
	}
}

func TestExtractNameFromEmail(t *testing.T) {
	if got := ExtractNameFromEmail("sam@example.com"); got != "sam" {
		t.Errorf("Expected sam, got %s", got)
	}
	if got := ExtractNameFromEmail("no-at-sign"); got != "no-at-sign" {
		t.Errorf("Expected passthrough, got %s", got)
	}
}
