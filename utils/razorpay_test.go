package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyRazorpaySignature(t *testing.T) {
	secret := "test_secret_key"
	orderID := "order_ABC123"
	paymentID := "pay_XYZ789"

	signature := signPayload(orderID, paymentID, secret)

	assert.True(t, VerifyRazorpaySignature(orderID, paymentID, signature, secret))
}

func TestVerifyRazorpaySignatureMismatch(t *testing.T) {
	secret := "test_secret_key"
	signature := signPayload("order_ABC123", "pay_XYZ789", secret)

	// Wrong payment id
	assert.False(t, VerifyRazorpaySignature("order_ABC123", "pay_OTHER", signature, secret))
	// Wrong secret
	assert.False(t, VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", signature, "other_secret"))
	// Tampered signature
	assert.False(t, VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", "deadbeef", secret))
	// Empty signature
	assert.False(t, VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", "", secret))
}
