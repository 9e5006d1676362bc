package handler

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"puntadas/internal/models"
	"puntadas/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CustomerHandler struct {
	customerRepo *repository.CustomerRepository
}

func NewCustomerHandler(customerRepo *repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{customerRepo: customerRepo}
}

type RegisterCustomerRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1"`
	LastName  string `json:"last_name" binding:"required,min=1"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,min=7"`
}

func (h *CustomerHandler) Register(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	existing, err := h.customerRepo.GetByEmail(req.Email)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"success":  false,
			"message":  "Este correo ya está registrado",
			"customer": existing,
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "registration failed"})
		return
	}

	customer := &models.Customer{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		ReferralCode: newReferralCode(),
	}
	if err := h.customerRepo.Create(customer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "registration failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Registro exitoso",
		"customer": customer,
	})
}

func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	customer, err := h.customerRepo.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

func (h *CustomerHandler) GetByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email required"})
		return
	}
	customer, err := h.customerRepo.GetByEmail(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// GetByReferralCode resolves a referral code back to its owner, so a new
// visitor arriving through a shared link can credit the referrer.
func (h *CustomerHandler) GetByReferralCode(c *gin.Context) {
	customer, err := h.customerRepo.GetByReferralCode(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "referral code not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// newReferralCode mirrors the REF-{millis}-{RAND} shape customers already
// have printed on their order confirmations.
func newReferralCode() string {
	suffix := strings.ToUpper(strconv.FormatInt(rand.Int63(), 36))
	if len(suffix) > 5 {
		suffix = suffix[:5]
	}
	return fmt.Sprintf("REF-%d-%s", time.Now().UnixMilli(), suffix)
}
