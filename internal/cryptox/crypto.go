// Package cryptox wraps password hashing for stored cashier credentials.
package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor used for new hashes. Tests lower it
// to keep runs fast.
var PasswordCost = bcrypt.DefaultCost

// ErrPasswordMismatch is returned by CheckPassword when the password does not
// match the hash.
var ErrPasswordMismatch = errors.New("password mismatch")

// HashPassword returns a salted bcrypt hash of password.
func HashPassword(password []byte) (string, error) {
	h, err := bcrypt.GenerateFromPassword(password, PasswordCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword compares password with a hash produced by HashPassword.
// A mismatch yields ErrPasswordMismatch; a malformed hash yields the bcrypt
// error.
func CheckPassword(hash string, password []byte) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), password)
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}
