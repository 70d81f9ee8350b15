package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"career-backend/internal/shared/apperr"
)

func TestPasswordHasherRoundTrip(t *testing.T) {
	h := PasswordHasher{Cost: bcrypt.MinCost}
	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "secret1" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}
	if !h.Verify(hash, "secret1") {
		t.Fatalf("expected password to verify")
	}
	if h.Verify(hash, "secret2") {
		t.Fatalf("expected wrong password to fail")
	}
	if h.Verify("", "secret1") || h.Verify("not-a-hash", "secret1") {
		t.Fatalf("expected malformed hash to fail")
	}
}

func TestPasswordHashesAreSalted(t *testing.T) {
	h := PasswordHasher{Cost: bcrypt.MinCost}
	a, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	b, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct salted hashes")
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("12345"); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for short password, got %v", err)
	}
	if err := ValidatePassword("123456"); err != nil {
		t.Fatalf("expected 6 chars to pass, got %v", err)
	}
	if err := ValidatePassword(strings.Repeat("x", 73)); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for long password, got %v", err)
	}
}
