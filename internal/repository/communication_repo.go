package repository

import (
	"puntadas/internal/models"

	"gorm.io/gorm"
)

type CommunicationRepository struct {
	db *gorm.DB
}

func NewCommunicationRepository(db *gorm.DB) *CommunicationRepository {
	return &CommunicationRepository{db: db}
}

func (r *CommunicationRepository) Create(c *models.Communication) error {
	return r.db.Create(c).Error
}

// ListByRequestID returns the full thread in insertion order.
func (r *CommunicationRepository) ListByRequestID(requestID uint) ([]models.Communication, error) {
	var msgs []models.Communication
	err := r.db.Where("request_id = ?", requestID).Order("id ASC").Find(&msgs).Error
	return msgs, err
}
