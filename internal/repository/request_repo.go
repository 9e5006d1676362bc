package repository

import (
	"puntadas/internal/models"

	"gorm.io/gorm"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(req *models.Request) error {
	return r.db.Create(req).Error
}

func (r *RequestRepository) GetByID(id uint) (*models.Request, error) {
	var req models.Request
	err := r.db.First(&req, id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepository) GetByTrackingCode(code string) (*models.Request, error) {
	var req models.Request
	err := r.db.Where("tracking_code = ?", code).First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepository) ListByCustomerID(customerID uint) ([]models.Request, error) {
	var reqs []models.Request
	err := r.db.Where("customer_id = ?", customerID).Order("created_at ASC").Find(&reqs).Error
	return reqs, err
}

func (r *RequestRepository) ListAll() ([]models.Request, error) {
	var reqs []models.Request
	err := r.db.Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}

func (r *RequestRepository) Update(req *models.Request) error {
	return r.db.Save(req).Error
}

// CountByStatus returns request counts keyed by status.
func (r *RequestRepository) CountByStatus() (map[string]int64, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	err := r.db.Model(&models.Request{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, rw := range rows {
		out[rw.Status] = rw.N
	}
	return out, nil
}

// SumDepositsByStatuses totals deposit amounts over the given statuses.
func (r *RequestRepository) SumDepositsByStatuses(statuses []string) (int64, error) {
	var total int64
	err := r.db.Model(&models.Request{}).
		Where("status IN ?", statuses).
		Select("COALESCE(SUM(deposit_amount), 0)").
		Scan(&total).Error
	return total, err
}
