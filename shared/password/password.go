package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor applied to all new hashes.
const DefaultCost = bcrypt.DefaultCost

var (
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrHashingPassword   = errors.New("failed to hash password")
	ErrVerifyingPassword = errors.New("failed to verify password")
)

// Hash derives a salted bcrypt hash from the plaintext password.
func Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashingPassword, err)
	}

	return string(digest), nil
}

// Verify compares the plaintext password against a stored bcrypt hash.
// A mismatch yields ErrInvalidPassword; a malformed hash yields
// ErrVerifyingPassword.
func Verify(plaintext, hash string) error {
	if plaintext == "" || hash == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrInvalidPassword
	default:
		return fmt.Errorf("%w: %v", ErrVerifyingPassword, err)
	}
}
