package service

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Passwords are stored as salt||key, argon2id over the cleartext with a
// per-user random salt. Comparison is constant time.
const (
	saltLen      = 16
	keyLen       = 32
	argonTime    = 1
	argonMemKiB  = 64 * 1024
	argonThreads = 4
)

// HashPassword derives a storable hash from the cleartext password.
func HashPassword(password string) ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemKiB, argonThreads, keyLen)
	return append(salt, key...), nil
}

// VerifyPassword reports whether the password matches the stored hash.
func VerifyPassword(hash []byte, password string) bool {
	if len(hash) != saltLen+keyLen {
		return false
	}

	salt := hash[:saltLen]
	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemKiB, argonThreads, keyLen)
	return subtle.ConstantTimeCompare(hash[saltLen:], key) == 1
}
