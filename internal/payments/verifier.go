package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	pkgerrors "github.com/vedicwisdom/funnel-backend/pkg/errors"
)

// VerifySignature recomputes the gateway's keyed hash over
// "orderID|paymentID" and compares it to the claimed signature in constant
// time. Every paid entry point performs this exact check.
func VerifySignature(orderID, paymentID, claimed, secret string) bool {
	if orderID == "" || paymentID == "" || claimed == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(claimed))
}

// Verifier binds the server-held key secret to the signature check.
type Verifier struct {
	secret string
}

// NewVerifier builds a verifier around the gateway key secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: secret}
}

// Verify returns a typed payment error on mismatch so handlers reject the
// request without leaking which field failed.
func (v *Verifier) Verify(orderID, paymentID, claimed string) error {
	if v == nil || v.secret == "" {
		return pkgerrors.New(pkgerrors.CodeInternal, "payment verifier not configured")
	}
	if !VerifySignature(orderID, paymentID, claimed, v.secret) {
		return pkgerrors.New(pkgerrors.CodePaymentInvalid, "payment verification failed")
	}
	return nil
}
