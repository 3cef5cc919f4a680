package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
)

// SignatureHeader carries the report signature on every report response.
const SignatureHeader = "X-Report-Signature"

var ErrInvalidSignature = errors.New("invalid report signature")

// Signer computes HMAC-SHA256 signatures over rendered teller reports so a
// client can tell a report left the teller unmodified.
type Signer struct {
	secretKey []byte
	logger    *slog.Logger
}

func NewSigner(secretKey string, logger *slog.Logger) *Signer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Signer{
		secretKey: []byte(secretKey),
		logger:    logger,
	}
}

func (s *Signer) Sign(data []byte) string {
	mac := hmac.New(sha256.New, s.secretKey)
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *Signer) Verify(data []byte, signature string) error {
	expected := s.Sign(data)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		s.logger.Warn("Report signature verification failed",
			slog.String("received", signature))
		return ErrInvalidSignature
	}
	return nil
}

// SignReport binds the report name into the signature so a fee report cannot
// be replayed as an account listing.
func (s *Signer) SignReport(name string, body []byte) string {
	return s.Sign(reportPayload(name, body))
}

func (s *Signer) VerifyReport(name string, body []byte, signature string) error {
	return s.Verify(reportPayload(name, body), signature)
}

func reportPayload(name string, body []byte) []byte {
	payload := make([]byte, 0, len(name)+1+len(body))
	payload = append(payload, name...)
	payload = append(payload, ':')
	return append(payload, body...)
}
