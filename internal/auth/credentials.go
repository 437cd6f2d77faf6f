package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks a login attempt against the configured admin
// account.
type CredentialVerifier interface {
	Verify(email, password string) bool
	Configured() bool
}

// EnvCredentials compares against a plaintext password from the environment.
// Both comparisons run in constant time regardless of which one fails.
type EnvCredentials struct {
	Email    string
	Password string
}

func (c EnvCredentials) Configured() bool {
	return c.Email != "" && c.Password != ""
}

func (c EnvCredentials) Verify(email, password string) bool {
	if !c.Configured() {
		return false
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(c.Email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
	return emailOK && passwordOK
}

// BcryptCredentials compares against a bcrypt hash so the plaintext password
// never has to live in the environment.
type BcryptCredentials struct {
	Email        string
	PasswordHash string
}

func (c BcryptCredentials) Configured() bool {
	return c.Email != "" && c.PasswordHash != ""
}

func (c BcryptCredentials) Verify(email, password string) bool {
	if !c.Configured() {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(email), []byte(c.Email)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
}
