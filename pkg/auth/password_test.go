package auth

import "testing"

func TestHashPasswordRejectsShortInput(t *testing.T) {
	if _, err := HashPassword("short"); err == nil {
		t.Fatal("expected a password under 8 characters to be rejected")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if hash == "correct-horse-battery" {
		t.Fatal("expected the hash to differ from the plain text")
	}

	if !CheckPassword(hash, "correct-horse-battery") {
		t.Fatal("expected the matching password to verify")
	}

	if CheckPassword(hash, "wrong-password") {
		t.Fatal("expected a wrong password to fail verification")
	}
}
