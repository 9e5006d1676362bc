package handler

import (
	"errors"
	"net/http"
	"strconv"

	"puntadas/internal/domain"
	"puntadas/internal/service"

	"github.com/gin-gonic/gin"
)

type TrackingHandler struct {
	tracking *service.TrackingService
}

func NewTrackingHandler(tracking *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{tracking: tracking}
}

func (h *TrackingHandler) GenerateQR(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	record, err := h.tracking.GenerateQR(uint(requestID))
	if err != nil {
		if errors.Is(err, service.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not generate QR code"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "qr_code": record.QRCode, "tracking": record})
}

func (h *TrackingHandler) GetQR(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	record, err := h.tracking.GetByRequestID(uint(requestID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "tracking record not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracking": record})
}

type UpdateTrackingRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *TrackingHandler) UpdateQRStatus(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req UpdateTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	record, err := h.tracking.UpdateStatus(uint(requestID), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTrackingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		case errors.Is(err, service.ErrInvalidTrackingStatus), errors.Is(err, service.ErrTrackingBackward):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not update tracking"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tracking": record})
}

// TrackByCode is the public QR landing lookup: a 6-character code resolves
// to the order plus its production step.
func (h *TrackingHandler) TrackByCode(c *gin.Context) {
	code := c.Param("code")
	req, record, err := h.tracking.Lookup(code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTrackingCode):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no order for that tracking code"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		}
		return
	}
	resp := gin.H{
		"request": gin.H{
			"id":            req.ID,
			"status":        req.Status,
			"package_type":  req.PackageType,
			"tracking_code": req.TrackingCode,
			"created_at":    req.CreatedAt,
		},
	}
	if record != nil {
		resp["tracking"] = record
		resp["step"] = domain.TrackingStep(record.Status)
	}
	c.JSON(http.StatusOK, resp)
}
