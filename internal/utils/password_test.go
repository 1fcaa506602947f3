package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_NonDeterministic(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("secret123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("secret123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected differently salted hashes, got identical output")
	}
	if !VerifyPassword(h1, "secret123") || !VerifyPassword(h2, "secret123") {
		t.Fatalf("expected both hashes to verify the original password")
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("secret123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if VerifyPassword(h, "wrong") {
		t.Fatalf("expected verification to fail for a wrong password")
	}
	if VerifyPassword("not-a-bcrypt-hash", "secret123") {
		t.Fatalf("expected verification to fail for a garbage hash")
	}
}

func TestHashPassword_InvalidCost(t *testing.T) {
	t.Parallel()

	if _, err := HashPassword("secret123", bcrypt.MaxCost+1); err == nil {
		t.Fatalf("expected error for cost above bcrypt.MaxCost")
	}
}
