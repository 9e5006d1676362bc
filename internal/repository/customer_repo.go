package repository

import (
	"puntadas/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(c *models.Customer) error {
	return r.db.Create(c).Error
}

func (r *CustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var c models.Customer
	err := r.db.First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	var c models.Customer
	err := r.db.Where("email = ?", email).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) GetByReferralCode(code string) (*models.Customer, error) {
	var c models.Customer
	err := r.db.Where("referral_code = ?", code).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
