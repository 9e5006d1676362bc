package repository

import (
	"puntadas/internal/models"

	"gorm.io/gorm"
)

type TrackingRepository struct {
	db *gorm.DB
}

func NewTrackingRepository(db *gorm.DB) *TrackingRepository {
	return &TrackingRepository{db: db}
}

func (r *TrackingRepository) Create(t *models.QRCodeTracking) error {
	return r.db.Create(t).Error
}

func (r *TrackingRepository) GetByRequestID(requestID uint) (*models.QRCodeTracking, error) {
	var t models.QRCodeTracking
	err := r.db.Where("request_id = ?", requestID).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TrackingRepository) Update(t *models.QRCodeTracking) error {
	return r.db.Save(t).Error
}

type CompletionNotificationRepository struct {
	db *gorm.DB
}

func NewCompletionNotificationRepository(db *gorm.DB) *CompletionNotificationRepository {
	return &CompletionNotificationRepository{db: db}
}

func (r *CompletionNotificationRepository) Create(n *models.CompletionNotification) error {
	return r.db.Create(n).Error
}

func (r *CompletionNotificationRepository) ListByRequestID(requestID uint) ([]models.CompletionNotification, error) {
	var ns []models.CompletionNotification
	err := r.db.Where("request_id = ?", requestID).Order("id ASC").Find(&ns).Error
	return ns, err
}

func (r *CompletionNotificationRepository) Update(n *models.CompletionNotification) error {
	return r.db.Save(n).Error
}
