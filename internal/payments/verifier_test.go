package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/vedicwisdom/funnel-backend/pkg/errors"
)

func signFor(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignatureAcceptsValidProof(t *testing.T) {
	sig := signFor("order_123", "pay_456", "topsecret")
	assert.True(t, VerifySignature("order_123", "pay_456", sig, "topsecret"))
}

func TestVerifySignatureRejectsAnyMutation(t *testing.T) {
	secret := "topsecret"
	sig := signFor("order_123", "pay_456", secret)

	assert.False(t, VerifySignature("order_124", "pay_456", sig, secret), "mutated order id")
	assert.False(t, VerifySignature("order_123", "pay_457", sig, secret), "mutated payment id")

	mutated := []byte(sig)
	if mutated[0] == 'a' {
		mutated[0] = 'b'
	} else {
		mutated[0] = 'a'
	}
	assert.False(t, VerifySignature("order_123", "pay_456", string(mutated), secret), "mutated signature")
}

func TestVerifySignatureRejectsEmptyFields(t *testing.T) {
	sig := signFor("order_123", "pay_456", "topsecret")
	assert.False(t, VerifySignature("", "pay_456", sig, "topsecret"))
	assert.False(t, VerifySignature("order_123", "", sig, "topsecret"))
	assert.False(t, VerifySignature("order_123", "pay_456", "", "topsecret"))
}

func TestVerifierReturnsTypedError(t *testing.T) {
	verifier := NewVerifier("topsecret")

	sig := signFor("order_123", "pay_456", "topsecret")
	require.NoError(t, verifier.Verify("order_123", "pay_456", sig))

	err := verifier.Verify("order_123", "pay_456", "bogus")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodePaymentInvalid, typed.Code())
}
