package repository

import (
	"puntadas/internal/domain"
	"puntadas/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(p *models.Payment) error {
	return r.db.Create(p).Error
}

func (r *PaymentRepository) GetByID(id uint) (*models.Payment, error) {
	var p models.Payment
	err := r.db.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) GetByBoldTransactionID(txID string) (*models.Payment, error) {
	var p models.Payment
	err := r.db.Where("bold_transaction_id = ?", txID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) ListByRequestID(requestID uint) ([]models.Payment, error) {
	var ps []models.Payment
	err := r.db.Where("request_id = ?", requestID).Order("created_at ASC").Find(&ps).Error
	return ps, err
}

func (r *PaymentRepository) Update(p *models.Payment) error {
	return r.db.Save(p).Error
}

// SumCompleted totals all completed payment amounts.
func (r *PaymentRepository) SumCompleted() (int64, error) {
	var total int64
	err := r.db.Model(&models.Payment{}).
		Where("status = ?", domain.PaymentStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
