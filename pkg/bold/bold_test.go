package bold

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStatus(t *testing.T) {
	cases := map[string]string{
		"pending":   "pending",
		"approved":  "completed",
		"declined":  "failed",
		"cancelled": "failed",
		"refunded":  "refunded",
	}
	for in, want := range cases {
		assert.Equal(t, want, MapStatus(in), "bold status %q", in)
	}
}

func TestMapStatusUnknownDefaultsToPending(t *testing.T) {
	assert.Equal(t, "pending", MapStatus("VOIDED"))
	assert.Equal(t, "pending", MapStatus(""))
	assert.Equal(t, "pending", MapStatus("APPROVED")) // case-sensitive on purpose
}

func TestVerifySignature(t *testing.T) {
	payload := []byte(`{"id":"tx-1","status":"approved"}`)
	secret := "shared-secret"

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	good := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, VerifySignature(payload, good, secret))
	assert.False(t, VerifySignature(payload, good, "other-secret"))
	assert.False(t, VerifySignature(payload, "deadbeef", secret))
	assert.False(t, VerifySignature([]byte("tampered"), good, secret))
}

func TestParseWebhookPayload(t *testing.T) {
	p, err := ParseWebhookPayload([]byte(`{"id":"tx-9","status":"approved","amount":50000,"currency":"COP","reference":"AMIGURUMI-7"}`))
	require.NoError(t, err)
	assert.Equal(t, "tx-9", p.ID)
	assert.Equal(t, "approved", p.Status)
	assert.Equal(t, int64(50000), p.Amount)
	assert.Equal(t, "AMIGURUMI-7", p.Reference)

	_, err = ParseWebhookPayload([]byte(`{`))
	assert.Error(t, err)
}

func TestReference(t *testing.T) {
	assert.Equal(t, "AMIGURUMI-42", Reference(42))
}

func TestCheckoutURL(t *testing.T) {
	c := NewClient("https://checkout.bold.co", "key-123")
	url := c.CheckoutURL("AMIGURUMI-42", 50000, "COP")
	assert.Contains(t, url, "https://checkout.bold.co/payment?")
	assert.Contains(t, url, "reference=AMIGURUMI-42")
	assert.Contains(t, url, "amount=50000")
	assert.Contains(t, url, "currency=COP")
	assert.Contains(t, url, "api_key=key-123")
}
