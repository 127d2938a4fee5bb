// Package cryptox wraps the one-way password hash stored in the account file.
//
// Hashes are bcrypt strings of the form
//
//	$2a$10$<22-char salt><31-char hash>
//
// so the salt and cost travel with the hash and a plain text column is enough
// to persist them.
package cryptox

import (
	"errors"

	"github.com/samber/oops"
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned by Hash for inputs bcrypt would truncate.
var ErrPasswordTooLong = errors.New("password must be 72 bytes or fewer")

// Hasher hashes and verifies passwords with bcrypt.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher using bcrypt.DefaultCost.
func NewHasher() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

// NewHasherWithCost returns a Hasher with a custom work factor. Tests use
// bcrypt.MinCost to keep hashing fast.
func NewHasherWithCost(cost int) *Hasher {
	return &Hasher{cost: cost}
}

// Hash derives a salted bcrypt hash from the UTF-8 bytes of password.
// Every call uses a fresh random salt, so equal passwords hash differently.
func (h *Hasher) Hash(password []byte) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", oops.Code("PASSWORD_TOO_LONG").With("length", len(password)).Wrap(ErrPasswordTooLong)
	}

	hashed, err := bcrypt.GenerateFromPassword(password, h.cost)
	if err != nil {
		return "", oops.Code("PASSWORD_HASH_FAILED").Wrapf(err, "hashing password")
	}
	return string(hashed), nil
}

// Verify reports whether password matches hash. A malformed hash never
// matches.
func (h *Hasher) Verify(password []byte, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), password) == nil
}
