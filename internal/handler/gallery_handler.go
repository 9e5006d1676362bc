package handler

import (
	"net/http"
	"strconv"
	"time"

	"puntadas/internal/models"
	"puntadas/internal/repository"
	"puntadas/internal/service"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	galleryRepo   *repository.GalleryRepository
	promotionRepo *repository.PromotionRepository
}

func NewGalleryHandler(galleryRepo *repository.GalleryRepository, promotionRepo *repository.PromotionRepository) *GalleryHandler {
	return &GalleryHandler{galleryRepo: galleryRepo, promotionRepo: promotionRepo}
}

// galleryItemView is a GalleryItem plus its promotion-adjusted price.
type galleryItemView struct {
	models.GalleryItem
	EffectivePrice *int64 `json:"effective_price,omitempty"`
}

func (h *GalleryHandler) withEffectivePrices(items []models.GalleryItem) []galleryItemView {
	promos, err := h.promotionRepo.ListActive()
	if err != nil {
		promos = nil
	}
	now := time.Now()
	views := make([]galleryItemView, 0, len(items))
	for _, item := range items {
		v := galleryItemView{GalleryItem: item}
		if item.Price != nil {
			ep := service.EffectivePrice(*item.Price, item.ID, promos, now)
			v.EffectivePrice = &ep
		}
		views = append(views, v)
	}
	return views
}

func (h *GalleryHandler) List(c *gin.Context) {
	items, err := h.galleryRepo.ListItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list gallery"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.withEffectivePrices(items)})
}

func (h *GalleryHandler) ListHighlighted(c *gin.Context) {
	items, err := h.galleryRepo.ListHighlighted()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list gallery"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.withEffectivePrices(items)})
}

func (h *GalleryHandler) ListByCategory(c *gin.Context) {
	items, err := h.galleryRepo.ListItemsByCategory(c.Param("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list gallery"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.withEffectivePrices(items)})
}

func (h *GalleryHandler) ListCategories(c *gin.Context) {
	cats, err := h.galleryRepo.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

type CreateGalleryItemRequest struct {
	Title       string `json:"title" binding:"required,min=1"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" binding:"required,url"`
	Price       *int64 `json:"price"`
	Category    string `json:"category"`
}

func (h *GalleryHandler) CreateItem(c *gin.Context) {
	var req CreateGalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	item := &models.GalleryItem{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Category:    req.Category,
		IsActive:    true,
	}
	if err := h.galleryRepo.CreateItem(item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not create item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "item": item})
}

type UpdateGalleryItemRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	ImageURL       *string `json:"image_url"`
	Price          *int64  `json:"price"`
	Category       *string `json:"category"`
	IsHighlighted  *bool   `json:"is_highlighted"`
	HighlightOrder *int    `json:"highlight_order"`
}

func (h *GalleryHandler) UpdateItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	item, err := h.galleryRepo.GetItemByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "item not found"})
		return
	}
	var req UpdateGalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	if req.Price != nil {
		item.Price = req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.IsHighlighted != nil {
		item.IsHighlighted = *req.IsHighlighted
	}
	if req.HighlightOrder != nil {
		item.HighlightOrder = *req.HighlightOrder
	}
	if err := h.galleryRepo.UpdateItem(item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not update item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": item})
}

func (h *GalleryHandler) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.galleryRepo.DeactivateItem(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not delete item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	SortOrder   int    `json:"sort_order"`
}

func (h *GalleryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	cat := &models.GalleryCategory{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}
	if err := h.galleryRepo.CreateCategory(cat); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "category": cat})
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	SortOrder   *int    `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}

func (h *GalleryHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	cat, err := h.galleryRepo.GetCategoryByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "category not found"})
		return
	}
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if req.Name != nil {
		cat.Name = *req.Name
	}
	if req.Description != nil {
		cat.Description = *req.Description
	}
	if req.Icon != nil {
		cat.Icon = *req.Icon
	}
	if req.SortOrder != nil {
		cat.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}
	if err := h.galleryRepo.UpdateCategory(cat); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not update category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "category": cat})
}
