package handler

import (
	"errors"
	"io"
	"net/http"

	"puntadas/config"
	"puntadas/internal/service"
	"puntadas/pkg/bold"

	"github.com/gin-gonic/gin"
)

// PaymentWebhookHandler receives Bold payment callbacks. Signature
// verification fails closed whenever a webhook secret is configured.
type PaymentWebhookHandler struct {
	payments *service.PaymentService
	cfg      *config.BoldConfig
}

func NewPaymentWebhookHandler(payments *service.PaymentService, cfg *config.BoldConfig) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{payments: payments, cfg: cfg}
}

func (h *PaymentWebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if h.cfg.WebhookSecret != "" {
		sig := c.GetHeader("X-Bold-Signature")
		if !bold.VerifySignature(body, sig, h.cfg.WebhookSecret) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}
	}
	payload, err := bold.ParseWebhookPayload(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if payload.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transaction id required"})
		return
	}
	if _, err := h.payments.Reconcile(payload.ID, payload.Status, payload.Amount); err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "payment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "reconciliation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
