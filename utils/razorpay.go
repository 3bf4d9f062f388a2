package utils

import (
	"codemaster/config"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// RazorpayOrder is the subset of the gateway order response we care about
type RazorpayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateRazorpayOrder registers a payment order with the gateway.
// Amount is in rupees; the gateway wants paise.
func CreateRazorpayOrder(amount float64) (*RazorpayOrder, error) {
	cfg := config.AppConfig

	payload := map[string]interface{}{
		"amount":          int64(amount * 100),
		"currency":        "INR",
		"receipt":         "rcpt_" + uuid.NewString(),
		"payment_capture": 1,
	}

	var order RazorpayOrder
	client := resty.New()
	resp, err := client.R().
		SetBasicAuth(cfg.RazorpayKeyID, cfg.RazorpayKeySecret).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&order).
		Post(cfg.RazorpayApiURL + "/orders")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("razorpay order creation failed: %s", resp.Status())
	}

	return &order, nil
}

// VerifyRazorpaySignature recomputes the gateway signature over
// "<order_id>|<payment_id>" with the key secret and compares in constant time.
func VerifyRazorpaySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
