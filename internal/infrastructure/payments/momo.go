package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"quanngon_payments/internal/domain/entities"
)

var ErrMissingMomoSecretKey = errors.New("missing MOMO_SECRET_KEY")

// Config holds the MoMo partner credentials. It is loaded once at startup and
// injected into the verifier, never read from process-wide state.
type Config struct {
	PartnerCode string
	AccessKey   string
	SecretKey   string

	// SkipSignature disables verification for sandbox testing, where MoMo's
	// test console sends unsigned callbacks.
	SkipSignature bool
}

// LoadConfigFromEnv reads the MoMo credentials.
//
// Supported env vars:
//   - MOMO_PARTNER_CODE
//   - MOMO_ACCESS_KEY
//   - MOMO_SECRET_KEY
//   - MOMO_SKIP_SIGNATURE (sandbox only)
func LoadConfigFromEnv() Config {
	return Config{
		PartnerCode:   os.Getenv("MOMO_PARTNER_CODE"),
		AccessKey:     os.Getenv("MOMO_ACCESS_KEY"),
		SecretKey:     os.Getenv("MOMO_SECRET_KEY"),
		SkipSignature: isSignatureSkipEnabled(),
	}
}

// SignatureVerifier recomputes the HMAC-SHA256 signature MoMo attaches to
// every IPN and compares it against the supplied one.
type SignatureVerifier struct {
	cfg Config
}

func NewSignatureVerifier(cfg Config) (*SignatureVerifier, error) {
	if cfg.SkipSignature {
		log.Printf("[payment][verifier] signature verification disabled (sandbox)")
		return &SignatureVerifier{cfg: cfg}, nil
	}
	if cfg.SecretKey == "" {
		log.Printf("[payment][verifier] missing MOMO_SECRET_KEY")
		return nil, ErrMissingMomoSecretKey
	}
	return &SignatureVerifier{cfg: cfg}, nil
}

// Verify reports whether the notification's signature matches the digest
// recomputed over MoMo's canonical raw-signature string. Missing fields
// stringify as their zero value and simply fail the comparison; Verify never
// errors on malformed input.
func (v *SignatureVerifier) Verify(n entities.MomoNotification) bool {
	if v.cfg.SkipSignature {
		return true
	}

	expected := hex.EncodeToString(hmacSHA256([]byte(v.cfg.SecretKey), []byte(v.rawSignature(n))))
	return hmac.Equal([]byte(expected), []byte(n.Signature))
}

// rawSignature builds the canonical string MoMo signs: the 13 documented
// fields, alphabetical, joined as key=value pairs with "&".
func (v *SignatureVerifier) rawSignature(n entities.MomoNotification) string {
	return fmt.Sprintf(
		"accessKey=%s&amount=%d&extraData=%s&message=%s&orderId=%s&orderInfo=%s&orderType=%s&partnerCode=%s&payType=%s&requestId=%s&responseTime=%d&resultCode=%d&transId=%d",
		v.cfg.AccessKey,
		n.Amount,
		n.ExtraData,
		n.Message,
		n.OrderID,
		n.OrderInfo,
		n.OrderType,
		n.PartnerCode,
		n.PayType,
		n.RequestID,
		n.ResponseTime,
		n.ResultCode,
		n.TransID,
	)
}

func hmacSHA256(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

func isSignatureSkipEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("MOMO_SKIP_SIGNATURE")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
