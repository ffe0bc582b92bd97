package utils

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// HashPassword generates a bcrypt hash from a plain text password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// ComparePassword compares a bcrypt hashed password with plain text password
func ComparePassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// GeneratePlaceholderCredential returns a bcrypt hash of a random value.
// Used when an admin creates an account on a patient's behalf; the account
// cannot be logged into until the credential is reset.
func GeneratePlaceholderCredential() (string, error) {
	return HashPassword(uuid.New().String())
}
