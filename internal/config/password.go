// Package config provides environment-driven configuration for the server.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Accepted BCRYPT_COST range. Above 14, login latency becomes noticeable.
const (
	minBcryptCost = 10
	maxBcryptCost = 14
)

// PasswordConfig hashes and verifies account passwords. Only bcrypt digests
// are ever handed to the store; plaintext stops here.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string
}

// NewPasswordConfig reads BCRYPT_COST (default: 12) and PASSWORD_PEPPER from
// the environment. The pepper is optional; when set, it is appended to every
// password before hashing.
func NewPasswordConfig() (*PasswordConfig, error) {
	cost := 12
	if costStr := os.Getenv("BCRYPT_COST"); costStr != "" {
		parsed, err := strconv.Atoi(costStr)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
		}
		cost = parsed
	}

	if cost < minBcryptCost || cost > maxBcryptCost {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be %d-%d)", cost, minBcryptCost, maxBcryptCost)
	}

	return &PasswordConfig{
		BcryptCost: cost,
		Pepper:     os.Getenv("PASSWORD_PEPPER"),
	}, nil
}

// seasoned returns the password with the pepper appended, if one is configured.
func (c *PasswordConfig) seasoned(pw string) []byte {
	return []byte(pw + c.Pepper)
}

// HashPassword returns the bcrypt digest of pw.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(c.seasoned(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether pw matches the stored digest.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), c.seasoned(pw)) == nil
}
