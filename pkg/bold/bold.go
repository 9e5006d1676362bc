// Package bold integrates the Bold hosted checkout (https://docs.bold.co/).
// Bold is redirect-based: the backend only builds the checkout link, then
// receives an HMAC-signed webhook once the customer finishes paying.
package bold

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
)

// WebhookPayload is the body Bold posts to the payment webhook.
type WebhookPayload struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Reference string `json:"reference"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ParseWebhookPayload decodes a raw webhook body.
func ParseWebhookPayload(body []byte) (*WebhookPayload, error) {
	var p WebhookPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// statusMap translates Bold payment statuses to internal payment statuses.
// Unrecognized values fall back to pending, never to a success state.
var statusMap = map[string]string{
	"pending":   "pending",
	"approved":  "completed",
	"declined":  "failed",
	"cancelled": "failed",
	"refunded":  "refunded",
}

// MapStatus returns the internal payment status for a Bold status string.
func MapStatus(boldStatus string) string {
	if s, ok := statusMap[boldStatus]; ok {
		return s
	}
	return "pending"
}

// VerifySignature checks the HMAC-SHA256 hex signature Bold sends over the
// raw payload. Comparison is constant-time.
func VerifySignature(payload []byte, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(signature), []byte(expected))
}

// Client builds checkout redirect links for the hosted payment page.
type Client struct {
	baseURL string
	apiKey  string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{baseURL: baseURL, apiKey: apiKey}
}

// Reference builds the order reference Bold echoes back in the webhook.
func Reference(requestID uint) string {
	return fmt.Sprintf("AMIGURUMI-%d", requestID)
}

// CheckoutURL returns the hosted checkout link for a pending payment.
// Amount is in minor currency units.
func (c *Client) CheckoutURL(reference string, amount int64, currency string) string {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("reference", reference)
	q.Set("amount", fmt.Sprintf("%d", amount))
	q.Set("currency", currency)
	return c.baseURL + "/payment?" + q.Encode()
}
