package repository

import (
	"puntadas/internal/models"

	"gorm.io/gorm"
)

type PromotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{db: db}
}

func (r *PromotionRepository) Create(p *models.Promotion) error {
	return r.db.Create(p).Error
}

func (r *PromotionRepository) GetByID(id uint) (*models.Promotion, error) {
	var p models.Promotion
	err := r.db.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromotionRepository) ListAll() ([]models.Promotion, error) {
	var ps []models.Promotion
	err := r.db.Order("created_at DESC").Find(&ps).Error
	return ps, err
}

func (r *PromotionRepository) ListActive() ([]models.Promotion, error) {
	var ps []models.Promotion
	err := r.db.Where("is_active = ?", true).Order("created_at DESC").Find(&ps).Error
	return ps, err
}

func (r *PromotionRepository) Update(p *models.Promotion) error {
	return r.db.Save(p).Error
}

// Deactivate soft-deletes a promotion.
func (r *PromotionRepository) Deactivate(id uint) error {
	return r.db.Model(&models.Promotion{}).Where("id = ?", id).
		Update("is_active", false).Error
}
