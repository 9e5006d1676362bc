package handler

import (
	"errors"
	"log"
	"net/http"

	"puntadas/config"
	"puntadas/internal/auth"
	"puntadas/internal/domain"
	"puntadas/internal/middleware"
	"puntadas/internal/models"
	"puntadas/internal/repository"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminHandler struct {
	adminRepo   *repository.AdminRepository
	requestRepo *repository.RequestRepository
	paymentRepo *repository.PaymentRepository
	cfg         *config.Config
}

func NewAdminHandler(adminRepo *repository.AdminRepository, requestRepo *repository.RequestRepository, paymentRepo *repository.PaymentRepository, cfg *config.Config) *AdminHandler {
	return &AdminHandler{adminRepo: adminRepo, requestRepo: requestRepo, paymentRepo: paymentRepo, cfg: cfg}
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required,min=1"`
	Password string `json:"password" binding:"required,min=1"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	admin, err := h.adminRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "login failed"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid username or password"})
		return
	}
	if !admin.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "account disabled"})
		return
	}
	token, err := auth.GenerateToken(&h.cfg.JWT, admin.ID, admin.Username, admin.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "login failed"})
		return
	}
	if err := h.adminRepo.StampLastLogin(admin.ID); err != nil {
		log.Printf("[admin] last-login stamp failed: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"token":    token,
		"role":     admin.Role,
		"username": admin.Username,
	})
}

type CreateAdminRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"omitempty,email"`
	Role     string `json:"role" binding:"omitempty,oneof=super_admin admin accountant"`
}

func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if _, err := h.adminRepo.GetByUsername(req.Username); err == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "username already exists"})
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not create admin"})
		return
	}
	role := req.Role
	if role == "" {
		role = domain.RoleAdmin
	}
	admin := &models.AdminCredential{
		Username:     req.Username,
		PasswordHash: string(hash),
		Email:        req.Email,
		Role:         role,
		IsActive:     true,
	}
	if err := h.adminRepo.Create(admin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not create admin"})
		return
	}
	log.Printf("[admin] admin %d created %s (%s)", middleware.GetAdminID(c), admin.Username, admin.Role)
	c.JSON(http.StatusCreated, gin.H{"success": true, "admin": admin})
}

// Dashboard returns the request and accounting summary for the admin panel.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	counts, err := h.requestRepo.CountByStatus()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load dashboard"})
		return
	}
	paidStatuses := []string{
		domain.RequestStatusDepositPaid,
		domain.RequestStatusInProgress,
		domain.RequestStatusCompleted,
	}
	depositsCommitted, err := h.requestRepo.SumDepositsByStatuses(paidStatuses)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load dashboard"})
		return
	}
	paymentsCollected, err := h.paymentRepo.SumCompleted()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load dashboard"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"requests_by_status": counts,
		"deposits_committed": depositsCommitted,
		"payments_collected": paymentsCollected,
	})
}
