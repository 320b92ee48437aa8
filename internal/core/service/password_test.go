package service

import "testing"

func TestPassword_RoundTrip(t *testing.T) {
	digest, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if digest == "rahasia123" {
		t.Fatalf("digest must not equal the plaintext")
	}
	if !VerifyPassword("rahasia123", digest) {
		t.Fatalf("expected digest to verify against its own plaintext")
	}
	if VerifyPassword("rahasia124", digest) {
		t.Fatalf("expected a different plaintext to fail verification")
	}
}

func TestPassword_DistinctSalts(t *testing.T) {
	a, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	b, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if a == b {
		t.Fatalf("expected two hashes of the same input to differ")
	}
	if !VerifyPassword("rahasia123", a) || !VerifyPassword("rahasia123", b) {
		t.Fatalf("both digests must still verify")
	}
}
