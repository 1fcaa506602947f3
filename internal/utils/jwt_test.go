package utils

import (
	"errors"
	"testing"
)

func TestAccessToken_Roundtrip(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("super-secret", 42, 15)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	userID, err := ParseAccessToken("super-secret", tok.Token)
	if err != nil {
		t.Fatalf("ParseAccessToken error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", userID)
	}
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("right-secret", 7, 15)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	_, err = ParseAccessToken("wrong-secret", tok.Token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestParseAccessToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := ParseAccessToken("k", "not.a.jwt")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestParseAccessToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("secret", 7, -1)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	_, err = ParseAccessToken("secret", tok.Token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}
