package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives the bcrypt hash stored in the users table.
// Default cost; the hash carries its own cost so it can be raised
// later without invalidating stored credentials.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash reports whether the presented password matches a
// stored hash. Used by login and nowhere else.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
