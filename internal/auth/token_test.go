package auth

import (
	"testing"
	"time"
)

func TestMintAndVerify(t *testing.T) {
	manager := NewTokenManager("test-secret", "ontario-service-finder", 2*time.Hour)

	token, err := manager.Mint("admin@example.com", RoleAdmin, time.Now())
	if err != nil {
		t.Fatalf("Mint returned error: %v", err)
	}

	claims, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Subject != "admin@example.com" {
		t.Fatalf("expected subject admin@example.com, got %q", claims.Subject)
	}
	if claims.Role != RoleAdmin {
		t.Fatalf("expected role %q, got %q", RoleAdmin, claims.Role)
	}
	if claims.Issuer != "ontario-service-finder" {
		t.Fatalf("expected issuer, got %q", claims.Issuer)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	minter := NewTokenManager("secret-a", "issuer", time.Hour)
	verifier := NewTokenManager("secret-b", "issuer", time.Hour)

	token, err := minter.Mint("admin@example.com", RoleAdmin, time.Now())
	if err != nil {
		t.Fatalf("Mint returned error: %v", err)
	}
	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("expected verification failure with wrong secret")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	manager := NewTokenManager("test-secret", "issuer", time.Hour)

	token, err := manager.Mint("admin@example.com", RoleAdmin, time.Now().Add(-3*time.Hour))
	if err != nil {
		t.Fatalf("Mint returned error: %v", err)
	}
	if _, err := manager.Verify(token); err == nil {
		t.Fatal("expected verification failure for expired token")
	}
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	minter := NewTokenManager("test-secret", "someone-else", time.Hour)
	verifier := NewTokenManager("test-secret", "ontario-service-finder", time.Hour)

	token, err := minter.Mint("admin@example.com", RoleAdmin, time.Now())
	if err != nil {
		t.Fatalf("Mint returned error: %v", err)
	}
	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("expected verification failure for wrong issuer")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	manager := NewTokenManager("test-secret", "issuer", time.Hour)
	if _, err := manager.Verify("not-a-token"); err == nil {
		t.Fatal("expected verification failure for malformed token")
	}
}

func TestUnconfiguredManager(t *testing.T) {
	manager := NewTokenManager("", "issuer", time.Hour)
	if manager.Configured() {
		t.Fatal("empty secret should not count as configured")
	}
	if _, err := manager.Mint("admin@example.com", RoleAdmin, time.Now()); err == nil {
		t.Fatal("expected Mint to fail without a secret")
	}
	if _, err := manager.Verify("anything"); err == nil {
		t.Fatal("expected Verify to fail without a secret")
	}
}
