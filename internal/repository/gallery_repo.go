package repository

import (
	"puntadas/internal/models"

	"gorm.io/gorm"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) CreateItem(item *models.GalleryItem) error {
	return r.db.Create(item).Error
}

func (r *GalleryRepository) GetItemByID(id uint) (*models.GalleryItem, error) {
	var item models.GalleryItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GalleryRepository) ListItems() ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	err := r.db.Where("is_active = ?", true).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *GalleryRepository) ListHighlighted() ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	err := r.db.Where("is_active = ? AND is_highlighted = ?", true, true).
		Order("highlight_order ASC").Find(&items).Error
	return items, err
}

func (r *GalleryRepository) ListItemsByCategory(category string) ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	err := r.db.Where("is_active = ? AND category = ?", true, category).
		Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *GalleryRepository) UpdateItem(item *models.GalleryItem) error {
	return r.db.Save(item).Error
}

// DeactivateItem soft-deletes a gallery item.
func (r *GalleryRepository) DeactivateItem(id uint) error {
	return r.db.Model(&models.GalleryItem{}).Where("id = ?", id).
		Update("is_active", false).Error
}

func (r *GalleryRepository) CreateCategory(cat *models.GalleryCategory) error {
	return r.db.Create(cat).Error
}

func (r *GalleryRepository) GetCategoryByID(id uint) (*models.GalleryCategory, error) {
	var cat models.GalleryCategory
	err := r.db.First(&cat, id).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *GalleryRepository) ListCategories() ([]models.GalleryCategory, error) {
	var cats []models.GalleryCategory
	err := r.db.Where("is_active = ?", true).Order("sort_order ASC").Find(&cats).Error
	return cats, err
}

func (r *GalleryRepository) UpdateCategory(cat *models.GalleryCategory) error {
	return r.db.Save(cat).Error
}
