package handler

import (
	"errors"
	"net/http"
	"strconv"

	"puntadas/internal/repository"
	"puntadas/internal/service"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	workflow       *service.WorkflowService
	requestRepo    *repository.RequestRepository
	completionRepo *repository.CompletionNotificationRepository
}

func NewRequestHandler(workflow *service.WorkflowService, requestRepo *repository.RequestRepository, completionRepo *repository.CompletionNotificationRepository) *RequestHandler {
	return &RequestHandler{workflow: workflow, requestRepo: requestRepo, completionRepo: completionRepo}
}

type CreateRequestRequest struct {
	CustomerID        uint   `json:"customer_id" binding:"required"`
	Description       string `json:"description" binding:"required"`
	PackageType       string `json:"package_type" binding:"required"`
	DepositAmount     int64  `json:"deposit_amount" binding:"required"`
	ReferenceImageURL string `json:"reference_image_url"`
}

func (h *RequestHandler) Create(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	created, err := h.workflow.CreateRequest(service.CreateRequestInput{
		CustomerID:        req.CustomerID,
		Description:       req.Description,
		PackageType:       req.PackageType,
		DepositAmount:     req.DepositAmount,
		ReferenceImageURL: req.ReferenceImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		case errors.Is(err, service.ErrDescriptionTooShort),
			errors.Is(err, service.ErrDepositTooLow),
			errors.Is(err, service.ErrInvalidPackageType):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not create request"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "request": created})
}

func (h *RequestHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	req, err := h.requestRepo.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": req})
}

func (h *RequestHandler) ListByCustomer(c *gin.Context) {
	customerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	reqs, err := h.requestRepo.ListByCustomerID(uint(customerID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": reqs})
}

func (h *RequestHandler) ListAll(c *gin.Context) {
	reqs, err := h.requestRepo.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": reqs})
}

// ListNotifications returns the completion notices recorded for a request,
// oldest first. Public, like the message thread.
func (h *RequestHandler) ListNotifications(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	notices, err := h.completionRepo.ListByRequestID(uint(requestID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notices})
}

type UpdateRequestRequest struct {
	Status     *string `json:"status"`
	AdminNotes *string `json:"admin_notes"`
}

func (h *RequestHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	updated, err := h.workflow.UpdateStatus(uint(id), service.UpdateRequestInput{
		Status:     req.Status,
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrIllegalTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not update request"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "request": updated})
}

type MarkReadyRequest struct {
	CustomerID uint `json:"customer_id" binding:"required"`
}

func (h *RequestHandler) MarkReady(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req MarkReadyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	notice, err := h.workflow.MarkReady(uint(id), req.CustomerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		case errors.Is(err, service.ErrIllegalTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not mark ready"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": notice.Message, "notification": notice})
}
