package handler

import (
	"errors"
	"net/http"
	"strconv"

	"puntadas/internal/repository"
	"puntadas/internal/service"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	payments    *service.PaymentService
	paymentRepo *repository.PaymentRepository
}

func NewPaymentHandler(payments *service.PaymentService, paymentRepo *repository.PaymentRepository) *PaymentHandler {
	return &PaymentHandler{payments: payments, paymentRepo: paymentRepo}
}

type CreatePaymentRequest struct {
	RequestID  uint  `json:"request_id" binding:"required"`
	CustomerID uint  `json:"customer_id" binding:"required"`
	Amount     int64 `json:"amount" binding:"required"`
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	payment, checkoutURL, err := h.payments.Initiate(req.RequestID, req.CustomerID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound), errors.Is(err, service.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		case errors.Is(err, service.ErrAmountTooLow):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not create payment"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"payment":      payment,
		"checkout_url": checkoutURL,
	})
}

type AttachPaymentRequest struct {
	BoldTransactionID string `json:"bold_transaction_id" binding:"required"`
}

// Attach links the Bold transaction id reported after the checkout
// redirect to its pending payment, so the later webhook can find it.
func (h *PaymentHandler) Attach(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req AttachPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	payment, err := h.payments.Attach(uint(id), req.BoldTransactionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		case errors.Is(err, service.ErrAlreadyAttached), errors.Is(err, service.ErrPaymentNotPending):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not attach transaction"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "payment": payment})
}

// ListByRequest returns every payment attempt against a request, oldest
// first, so the order page can show deposit history.
func (h *PaymentHandler) ListByRequest(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	payments, err := h.paymentRepo.ListByRequestID(uint(requestID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list payments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}
