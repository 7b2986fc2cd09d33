package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// TestHashPasswordRoundTrip verifies that a hashed password verifies against
// the original and rejects a different one.
func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("password stored in plaintext")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("correct horse battery staple")); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")); err == nil {
		t.Error("wrong password accepted")
	}
}

// TestGenerateTokenUnique verifies tokens are hex-encoded, full-length, and
// do not repeat across calls.
func TestGenerateTokenUnique(t *testing.T) {
	a, err := generateToken()
	if err != nil {
		t.Fatalf("generateToken: %v", err)
	}
	b, err := generateToken()
	if err != nil {
		t.Fatalf("generateToken: %v", err)
	}

	if len(a) != tokenBytes*2 {
		t.Errorf("token length = %d, want %d", len(a), tokenBytes*2)
	}
	if a == b {
		t.Error("two generated tokens are identical")
	}
}
