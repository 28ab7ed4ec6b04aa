package domain

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"

	"github.com/google/uuid"
)

// User is an entry in the identity directory. Customers carry no
// credential and can never authenticate; managers and admins store a
// salted SHA-512 password hash.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"-"`
	Salt  string `json:"-"`
	Hash  string `json:"-"`
}

// SetPassword stores a freshly salted hash of password.
func (u *User) SetPassword(password string) {
	u.Salt = uuid.NewString()
	sum := sha512.Sum512([]byte(password + u.Salt))
	u.Hash = hex.EncodeToString(sum[:])
}

// Authenticate compares password against the stored hash using a
// constant-time comparison. Identities without a credential always fail.
func (u *User) Authenticate(password string) bool {
	if u.Hash == "" {
		return false
	}
	stored, err := hex.DecodeString(u.Hash)
	if err != nil {
		return false
	}
	sum := sha512.Sum512([]byte(password + u.Salt))
	return hmac.Equal(sum[:], stored)
}
