package ai

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"go.uber.org/zap"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw webhook body
const SignatureHeader = "X-Hub-Signature"

// Verifier checks webhook payload signatures
type Verifier struct {
	enabled bool
	secret  string
	logger  *zap.Logger
}

// NewVerifier creates a webhook signature verifier. A disabled verifier accepts every payload.
func NewVerifier(enabled bool, secret string, logger *zap.Logger) *Verifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Verifier{enabled: enabled, secret: secret, logger: logger}
}

// Verify reports whether signature is the hex HMAC-SHA256 of payload under the configured secret
func (v *Verifier) Verify(payload []byte, signature string) (ok bool) {
	if !v.enabled {
		return true
	}
	if v.secret == "" {
		v.logger.Warn("Webhook signature verification enabled but no secret configured")
		return false
	}
	if signature == "" {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			v.logger.Error("Webhook signature verification panicked", zap.Any("panic", r))
			ok = false
		}
	}()

	return VerifyHMAC(v.secret, payload, signature)
}

// VerifyHMAC verifies a sha256 HMAC hex signature against payload and secret
func VerifyHMAC(secret string, payload []byte, signatureHex string) bool {
	if secret == "" || signatureHex == "" {
		return false
	}
	return hmac.Equal([]byte(Sign(secret, payload)), []byte(signatureHex))
}

// Sign returns the hex HMAC-SHA256 of payload under secret
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
