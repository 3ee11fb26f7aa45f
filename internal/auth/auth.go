// Package auth verifies admin credentials against a stored PBKDF2 hash.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	defaultIterations = 100000
	saltLength        = 16
	keyLength         = 32
	bearerPrefix      = "Bearer "
)

// MetadataKey marks a huma operation as requiring admin credentials.
const MetadataKey = "admin-auth"

// HashPassword derives a PBKDF2-SHA256 hash for a password, encoded as
// "saltHex$iterations$hashHex".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, defaultIterations, keyLength, sha256.New)

	return fmt.Sprintf("%s$%d$%s", hex.EncodeToString(salt), defaultIterations, hex.EncodeToString(key)), nil
}

// VerifyPassword checks a password against a stored hash in constant time.
// A malformed stored hash verifies as false, never as an error.
func VerifyPassword(password, storedHash string) bool {
	parts := strings.Split(storedHash, "$")
	if len(parts) != 3 {
		return false
	}

	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}

	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return false
	}

	expected, err := hex.DecodeString(parts[2])
	if err != nil || len(expected) == 0 {
		return false
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, len(expected), sha256.New)

	return hmac.Equal(key, expected)
}

// ExtractBearerToken pulls the credential out of an Authorization header.
// It returns an empty string when the header is absent or not a bearer token.
func ExtractBearerToken(authHeader string) string {
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
}

// Authenticate verifies an Authorization header against the stored admin hash.
func Authenticate(authHeader, adminPasswordHash string) bool {
	token := ExtractBearerToken(authHeader)
	if token == "" {
		return false
	}

	return VerifyPassword(token, adminPasswordHash)
}
