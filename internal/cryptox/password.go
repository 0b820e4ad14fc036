// Package cryptox wraps password hashing for the SIGA server.
//
// Hashes are produced with bcrypt: the resulting string is self-describing
// (algorithm, cost factor and salt are encoded in it), so verification needs
// no external parameters and seeding and login always agree on the scheme.
package cryptox

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt cost factor used when creating hashes.
// The comparison is intentionally slow (tens of milliseconds) to resist
// brute-force attacks; do not lower it outside of tests.
const PasswordHashCost = bcrypt.DefaultCost

// HashPassword returns a salted bcrypt hash of the plaintext password.
// Hashing the same password twice yields different strings.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
