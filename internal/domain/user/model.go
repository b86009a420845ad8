package user

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Role constants. The role set is open — staff roles are plain display
// strings — but Administrator is privileged everywhere.
const (
	RoleAdministrator = "Administrator"
	RoleBarista       = "Бармен"
	RoleCashier       = "Кассир"
)

// RootUsername is the distinguished account that can never be deleted or
// have its role changed.
const RootUsername = "root"

// Password hashing parameters (PBKDF2-SHA256).
const (
	saltLength     = 16
	keyLength      = 32
	pbkdf2Rounds   = 100_000
	minPasswordLen = 6
)

// Domain errors
var (
	ErrEmptyUsername    = errors.New("username cannot be empty")
	ErrEmptyRole        = errors.New("role cannot be empty")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrWrongPassword    = errors.New("incorrect password")
)

// User holds state for an admin-panel account.
type User struct {
	ID                 string `json:"id"`
	Username           string `json:"username"`
	PasswordHash       string `json:"password_hash"`
	Role               string `json:"role"`
	MustChangePassword bool   `json:"must_change_password"`
}

// Validate checks if the User has valid data.
// PRE: User struct is populated
// POST: Returns nil if valid, error otherwise
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return ErrEmptyUsername
	}
	if strings.TrimSpace(u.Role) == "" {
		return ErrEmptyRole
	}
	return nil
}

// SetPassword hashes and stores a password as base64(salt):base64(digest).
// PRE: plaintext is non-empty and >= 6 characters
// POST: PasswordHash is set to a fresh salted PBKDF2 digest
func (u *User) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	if len(plaintext) < minPasswordLen {
		return ErrPasswordTooShort
	}
	hash, err := HashPassword(plaintext)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
// PRE: PasswordHash is set
// INVARIANT: User fields are not mutated
func (u *User) CheckPassword(plaintext string) error {
	if !VerifyPassword(u.PasswordHash, plaintext) {
		return ErrWrongPassword
	}
	return nil
}

// IsAdministrator returns true if the user has the Administrator role.
// INVARIANT: User fields are not mutated
func (u *User) IsAdministrator() bool {
	return u.Role == RoleAdministrator
}

// IsRoot returns true for the protected root account.
// INVARIANT: User fields are not mutated
func (u *User) IsRoot() bool {
	return u.Username == RootUsername
}

// HashPassword derives a salted PBKDF2-SHA256 digest and encodes it as
// base64(salt):base64(digest).
// POST: Returns a hash that VerifyPassword accepts for the same plaintext
func HashPassword(plaintext string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	digest := pbkdf2.Key([]byte(plaintext), salt, pbkdf2Rounds, keyLength, sha256.New)
	return base64.StdEncoding.EncodeToString(salt) + ":" + base64.StdEncoding.EncodeToString(digest), nil
}

// VerifyPassword recomputes the digest with the stored salt and compares the
// digests in constant time. Malformed stored hashes never verify.
// INVARIANT: no information about the stored digest leaks through timing
func VerifyPassword(storedHash, plaintext string) bool {
	saltB64, digestB64, ok := strings.Cut(storedHash, ":")
	if !ok {
		return false
	}
	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return false
	}
	expected, err := base64.StdEncoding.DecodeString(digestB64)
	if err != nil {
		return false
	}
	candidate := pbkdf2.Key([]byte(plaintext), salt, pbkdf2Rounds, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(candidate, expected) == 1
}
