package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewService_MissingSecret(t *testing.T) {
	if _, err := NewService("", time.Hour); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc, err := NewService("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	signed, err := svc.Issue("ada@x.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Email != "ada@x.com" {
		t.Fatalf("unexpected email claim: %q", claims.Email)
	}
	if claims.Issuer != issuer {
		t.Fatalf("unexpected issuer: %q", claims.Issuer)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Fatalf("expected expires_at = issued_at + TTL, got delta %v", got)
	}
}

func TestVerify_ExpiryWindow(t *testing.T) {
	ttl := time.Hour
	svc, err := NewService("secret", ttl)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	signed, err := svc.Issue("ada@x.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// One second before expiry: still valid.
	svc.now = func() time.Time { return issuedAt.Add(ttl - time.Second) }
	if _, err := svc.Verify(signed); err != nil {
		t.Fatalf("expected token valid before expiry, got %v", err)
	}

	// One second after expiry: rejected as expired.
	svc.now = func() time.Time { return issuedAt.Add(ttl + time.Second) }
	if _, err := svc.Verify(signed); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuing, _ := NewService("secret-a", time.Hour)
	verifying, _ := NewService("secret-b", time.Hour)

	signed, err := issuing.Issue("ada@x.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := verifying.Verify(signed); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	svc, _ := NewService("secret", time.Hour)

	if _, err := svc.Verify("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_RejectsUnexpectedAlgorithm(t *testing.T) {
	svc, _ := NewService("secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"email": "ada@x.com"})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for alg=none, got %v", err)
	}
}
