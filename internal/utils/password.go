package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes the shared application password with bcrypt. The result
// is what goes into APP_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a login attempt against the configured hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
