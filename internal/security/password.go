package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const DefaultBcryptCost = 10

func HashPassword(password string, cost int) ([]byte, error) {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

// VerifyPassword re-hashes the candidate against the stored salt and
// compares in constant time. It never reports why a mismatch happened.
func VerifyPassword(password string, storedHash []byte) bool {
	return bcrypt.CompareHashAndPassword(storedHash, []byte(password)) == nil
}
