package user

import (
	"strings"
	"testing"
)

// TestHashVerifyRoundTrip tests that any hashed password verifies against itself.
func TestHashVerifyRoundTrip(t *testing.T) {
	passwords := []string{"secret1", "пароль123", "  spaces  ", "a-much-longer-passphrase-with-symbols!@#"}
	for _, p := range passwords {
		hash, err := HashPassword(p)
		if err != nil {
			t.Fatalf("HashPassword(%q): %v", p, err)
		}
		if !VerifyPassword(hash, p) {
			t.Errorf("VerifyPassword(hash, %q) = false, want true", p)
		}
		if VerifyPassword(hash, p+"x") {
			t.Errorf("VerifyPassword(hash, %q) = true for wrong password", p+"x")
		}
	}
}

// TestHashFormat tests the base64(salt):base64(digest) encoding.
func TestHashFormat(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parts := strings.Split(hash, ":")
	if len(parts) != 2 {
		t.Fatalf("expected salt:digest, got %q", hash)
	}
	if parts[0] == "" || parts[1] == "" {
		t.Errorf("empty hash component in %q", hash)
	}
}

// TestHashIsSalted tests that hashing the same password twice yields different hashes.
func TestHashIsSalted(t *testing.T) {
	h1, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h2, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h1 == h2 {
		t.Error("expected distinct salts to produce distinct hashes")
	}
}

// TestVerifyMalformedHash tests that malformed stored hashes never verify.
func TestVerifyMalformedHash(t *testing.T) {
	for _, stored := range []string{"", "no-separator", "!!!:???", "YWJj"} {
		if VerifyPassword(stored, "anything") {
			t.Errorf("VerifyPassword(%q, ...) = true, want false", stored)
		}
	}
}

// TestSetPasswordTooShort tests the minimum length rule.
func TestSetPasswordTooShort(t *testing.T) {
	u := User{Username: "root", Role: RoleAdministrator}
	if err := u.SetPassword("12345"); err != ErrPasswordTooShort {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}
	if err := u.SetPassword(""); err != ErrEmptyPassword {
		t.Errorf("expected ErrEmptyPassword, got %v", err)
	}
	if err := u.SetPassword("123456"); err != nil {
		t.Errorf("unexpected error for 6-char password: %v", err)
	}
}

// TestCheckPassword tests verification through the User method.
func TestCheckPassword(t *testing.T) {
	u := User{Username: "olga", Role: RoleCashier}
	if err := u.SetPassword("letmein"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := u.CheckPassword("letmein"); err != nil {
		t.Errorf("expected match, got %v", err)
	}
	if err := u.CheckPassword("wrong"); err != ErrWrongPassword {
		t.Errorf("expected ErrWrongPassword, got %v", err)
	}
}

// TestValidate tests required fields.
func TestValidate(t *testing.T) {
	u := User{Username: " ", Role: RoleBarista}
	if err := u.Validate(); err != ErrEmptyUsername {
		t.Errorf("expected ErrEmptyUsername, got %v", err)
	}
	u = User{Username: "dana", Role: ""}
	if err := u.Validate(); err != ErrEmptyRole {
		t.Errorf("expected ErrEmptyRole, got %v", err)
	}
	u = User{Username: "dana", Role: "Hostess"}
	if err := u.Validate(); err != nil {
		t.Errorf("open role set should validate, got %v", err)
	}
}

// TestIsRoot tests the protected-account check.
func TestIsRoot(t *testing.T) {
	u := User{Username: RootUsername, Role: RoleAdministrator}
	if !u.IsRoot() {
		t.Error("expected root to be root")
	}
	if !u.IsAdministrator() {
		t.Error("expected Administrator role check to pass")
	}
}
