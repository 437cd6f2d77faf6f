package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestEnvCredentials(t *testing.T) {
	creds := EnvCredentials{Email: "admin@example.com", Password: "hunter2"}

	if !creds.Configured() {
		t.Fatal("expected configured")
	}
	if !creds.Verify("admin@example.com", "hunter2") {
		t.Fatal("expected valid credentials to pass")
	}
	if creds.Verify("admin@example.com", "wrong") {
		t.Fatal("wrong password should fail")
	}
	if creds.Verify("other@example.com", "hunter2") {
		t.Fatal("wrong email should fail")
	}

	unset := EnvCredentials{}
	if unset.Configured() {
		t.Fatal("empty credentials should not count as configured")
	}
	if unset.Verify("", "") {
		t.Fatal("unconfigured credentials should never verify")
	}
}

func TestBcryptCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt hash failed: %v", err)
	}

	creds := BcryptCredentials{Email: "admin@example.com", PasswordHash: string(hash)}
	if !creds.Configured() {
		t.Fatal("expected configured")
	}
	if !creds.Verify("admin@example.com", "hunter2") {
		t.Fatal("expected valid credentials to pass")
	}
	if creds.Verify("admin@example.com", "wrong") {
		t.Fatal("wrong password should fail")
	}
	if creds.Verify("other@example.com", "hunter2") {
		t.Fatal("wrong email should fail")
	}
}
