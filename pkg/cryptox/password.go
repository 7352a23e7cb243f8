package cryptox

import (
	"crypto/md5" // #nosec G501 - digest construction is fixed by the wire contract
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
)

// ErrPasswordMismatch is returned by Verify when the password does not
// produce the stored digest.
var ErrPasswordMismatch = errors.New("cryptox: password does not match")

// Hasher produces salted password digests of the form
// lowercase_hex(md5(password + salt)).
type Hasher struct {
	Salt string
}

// NewHasher returns a Hasher using the shared salt.
func NewHasher(salt string) Hasher {
	return Hasher{Salt: salt}
}

// Hash returns the hex digest for password.
func (h Hasher) Hash(password string) string {
	sum := md5.Sum([]byte(password + h.Salt)) // #nosec G401
	return hex.EncodeToString(sum[:])
}

// Verify compares password against a stored digest in constant time.
func (h Hasher) Verify(password, storedHash string) error {
	computed := h.Hash(password)
	if subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1 {
		return nil
	}
	return ErrPasswordMismatch
}

// GeneratePassword returns a random 12 character alphanumeric password.
func GeneratePassword() (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 12
	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("failed to generate random password: %w", err)
		}
		password[i] = charset[n.Int64()]
	}
	return string(password), nil
}
