package handler

import (
	"net/http"
	"strconv"
	"time"

	"puntadas/internal/models"
	"puntadas/internal/repository"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	promotionRepo *repository.PromotionRepository
}

func NewPromotionHandler(promotionRepo *repository.PromotionRepository) *PromotionHandler {
	return &PromotionHandler{promotionRepo: promotionRepo}
}

func (h *PromotionHandler) ListActive(c *gin.Context) {
	promos, err := h.promotionRepo.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list promotions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"promotions": promos})
}

func (h *PromotionHandler) ListAll(c *gin.Context) {
	promos, err := h.promotionRepo.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list promotions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"promotions": promos})
}

type CreatePromotionRequest struct {
	Name               string     `json:"name" binding:"required,min=1"`
	Description        string     `json:"description"`
	DiscountPercentage float64    `json:"discount_percentage" binding:"required,min=0,max=100"`
	GalleryItemID      *uint      `json:"gallery_item_id"`
	ValidFrom          *time.Time `json:"valid_from"`
	ValidUntil         *time.Time `json:"valid_until"`
}

func (h *PromotionHandler) Create(c *gin.Context) {
	var req CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	promo := &models.Promotion{
		Name:               req.Name,
		Description:        req.Description,
		DiscountPercentage: req.DiscountPercentage,
		GalleryItemID:      req.GalleryItemID,
		ValidFrom:          req.ValidFrom,
		ValidUntil:         req.ValidUntil,
		IsActive:           true,
	}
	if err := h.promotionRepo.Create(promo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not create promotion"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "promotion": promo})
}

type UpdatePromotionRequest struct {
	Name               *string    `json:"name"`
	Description        *string    `json:"description"`
	DiscountPercentage *float64   `json:"discount_percentage"`
	GalleryItemID      *uint      `json:"gallery_item_id"`
	ValidFrom          *time.Time `json:"valid_from"`
	ValidUntil         *time.Time `json:"valid_until"`
	IsActive           *bool      `json:"is_active"`
}

func (h *PromotionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	promo, err := h.promotionRepo.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "promotion not found"})
		return
	}
	var req UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if req.Name != nil {
		promo.Name = *req.Name
	}
	if req.Description != nil {
		promo.Description = *req.Description
	}
	if req.DiscountPercentage != nil {
		if *req.DiscountPercentage < 0 || *req.DiscountPercentage > 100 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "discount must be 0-100"})
			return
		}
		promo.DiscountPercentage = *req.DiscountPercentage
	}
	if req.GalleryItemID != nil {
		promo.GalleryItemID = req.GalleryItemID
	}
	if req.ValidFrom != nil {
		promo.ValidFrom = req.ValidFrom
	}
	if req.ValidUntil != nil {
		promo.ValidUntil = req.ValidUntil
	}
	if req.IsActive != nil {
		promo.IsActive = *req.IsActive
	}
	if err := h.promotionRepo.Update(promo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not update promotion"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "promotion": promo})
}

func (h *PromotionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.promotionRepo.Deactivate(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not delete promotion"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
