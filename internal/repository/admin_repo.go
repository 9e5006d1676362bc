package repository

import (
	"time"

	"puntadas/internal/models"

	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(a *models.AdminCredential) error {
	return r.db.Create(a).Error
}

func (r *AdminRepository) GetByUsername(username string) (*models.AdminCredential, error) {
	var a models.AdminCredential
	err := r.db.Where("username = ?", username).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) StampLastLogin(id uint) error {
	return r.db.Model(&models.AdminCredential{}).Where("id = ?", id).
		Update("last_login_at", time.Now()).Error
}
