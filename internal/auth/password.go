package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

// HashPassword hashes a plaintext password with configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", apperrors.NewInvalidValue("password must be at most 72 bytes", map[string]any{"field": "password"})
	}
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
