package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signature HMAC-SHA256 от "order_id|payment_id" в hex, как его считает шлюз.
func Signature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func validSignature(secret string, confirmation paymentProof) bool {
	expected := Signature(secret, confirmation.orderID, confirmation.paymentID)
	return hmac.Equal([]byte(expected), []byte(confirmation.signature))
}

type paymentProof struct {
	orderID   string
	paymentID string
	signature string
}
