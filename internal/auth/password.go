package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const defaultMinPasswordLength = 6

// PasswordHasher hashes and verifies passwords with bcrypt. Each Hash call
// uses a fresh salt, so identical inputs produce different hashes, and
// verification runs in constant time relative to the mismatch position.
type PasswordHasher struct {
	cost      int
	minLength int
}

// NewPasswordHasher constructs a hasher with the given bcrypt cost and
// minimum length for new passwords. Non-positive values fall back to defaults.
func NewPasswordHasher(cost, minLength int) *PasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	if minLength <= 0 {
		minLength = defaultMinPasswordLength
	}
	return &PasswordHasher{cost: cost, minLength: minLength}
}

// Hash returns the bcrypt hash of the plaintext password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether the plaintext password matches the stored hash.
func (h *PasswordHasher) Verify(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidateNew checks a candidate password against the minimum-length policy.
// Existing hashes are never re-validated; only new passwords pass through here.
func (h *PasswordHasher) ValidateNew(password string) error {
	if len(password) < h.minLength {
		return ErrPasswordTooShort
	}
	return nil
}
