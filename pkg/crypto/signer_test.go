package crypto

import (
	"errors"
	"testing"
)

func TestSigner_SignReport(t *testing.T) {
	s := NewSigner("secret", nil)
	body := []byte("Checking::Jane Doe 1/1/1990::Balance $500.00\n")

	sig := s.SignReport("accounts", body)

	if len(sig) != 64 {
		t.Fatalf("expected hex sha256 signature, got %q", sig)
	}
	if err := s.VerifyReport("accounts", body, sig); err != nil {
		t.Errorf("expected signature to verify, got %v", err)
	}
	if err := s.VerifyReport("fees", body, sig); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected report name to be bound, got %v", err)
	}
	if err := s.VerifyReport("accounts", append(body, 'x'), sig); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected tampered body to fail, got %v", err)
	}
}

func TestSigner_DifferentSecrets(t *testing.T) {
	body := []byte("report")
	a := NewSigner("a", nil).Sign(body)
	b := NewSigner("b", nil).Sign(body)

	if a == b {
		t.Error("expected signatures from different secrets to differ")
	}
}
