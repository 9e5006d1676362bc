package handler

import (
	"net/http"
	"strconv"

	"puntadas/internal/models"
	"puntadas/internal/repository"

	"github.com/gin-gonic/gin"
)

type CommunicationHandler struct {
	commRepo    *repository.CommunicationRepository
	requestRepo *repository.RequestRepository
}

func NewCommunicationHandler(commRepo *repository.CommunicationRepository, requestRepo *repository.RequestRepository) *CommunicationHandler {
	return &CommunicationHandler{commRepo: commRepo, requestRepo: requestRepo}
}

type CreateCommunicationRequest struct {
	RequestID  uint   `json:"request_id" binding:"required"`
	CustomerID uint   `json:"customer_id" binding:"required"`
	SenderType string `json:"sender_type" binding:"required,oneof=customer admin"`
	Message    string `json:"message" binding:"required,min=1"`
}

func (h *CommunicationHandler) Create(c *gin.Context) {
	var req CreateCommunicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if _, err := h.requestRepo.GetByID(req.RequestID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "request not found"})
		return
	}
	msg := &models.Communication{
		RequestID:  req.RequestID,
		CustomerID: req.CustomerID,
		SenderType: req.SenderType,
		Message:    req.Message,
	}
	if err := h.commRepo.Create(msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not post message"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "communication": msg})
}

func (h *CommunicationHandler) ListByRequest(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	msgs, err := h.commRepo.ListByRequestID(uint(requestID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"communications": msgs})
}
