package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by ComparePassword when the password does
// not match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// maxPasswordBytes is the input limit of bcrypt.
const maxPasswordBytes = 72

// HashPassword returns the bcrypt hash of password using the given cost.
// A cost outside bcrypt's accepted range is replaced by bcrypt.DefaultCost.
//
// Example usage:
//
//	hash, err := utils.HashPassword("s3cret!", bcrypt.DefaultCost)
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword checks password against a bcrypt hash produced by
// HashPassword. It returns ErrPasswordMismatch on a wrong password and a
// wrapped error when hash is not a valid bcrypt digest.
//
// Passwords longer than 72 bytes are never hashed, so they never match.
func ComparePassword(hash, password string) error {
	if len(password) > maxPasswordBytes {
		return ErrPasswordMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error comparing password hash: %w", err)
	}
}
