package encrypter

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when there is no stored hash, so unknown
// users cost the same bcrypt work as known ones.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("lldap-gateway-dummy"), bcrypt.MinCost)

// HashPassword hashes a password using bcrypt with the default cost.
// Returns the hashed password as a string.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash compares a password with its bcrypt hash.
// An empty hash never matches.
func CheckPasswordHash(password, hash string) bool {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// EqualConstantTime reports whether a and b are equal without leaking
// the position of the first difference.
func EqualConstantTime(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
