package models

import "time"

// Catalog entities use soft delete via IsActive rather than row deletion.

type GalleryCategory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Icon        string    `gorm:"size:100" json:"icon,omitempty"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (GalleryCategory) TableName() string { return "gallery_categories" }

type GalleryItem struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"size:200;not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description,omitempty"`
	ImageURL       string    `gorm:"size:500;not null" json:"image_url"`
	Price          *int64    `json:"price,omitempty"` // COP cents
	Category       string    `gorm:"size:100;index" json:"category,omitempty"`
	IsHighlighted  bool      `gorm:"not null;default:false;index" json:"is_highlighted"`
	HighlightOrder int       `gorm:"not null;default:0" json:"highlight_order"`
	IsActive       bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (GalleryItem) TableName() string { return "gallery_items" }

// Promotion applies a percentage discount either store-wide
// (GalleryItemID nil) or to a single item. Item-scoped promotions take
// precedence over store-wide ones.
type Promotion struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	Name               string     `gorm:"size:200;not null" json:"name"`
	Description        string     `gorm:"type:text" json:"description,omitempty"`
	DiscountPercentage float64    `gorm:"not null" json:"discount_percentage"`
	GalleryItemID      *uint      `gorm:"index" json:"gallery_item_id,omitempty"`
	ValidFrom          *time.Time `json:"valid_from,omitempty"`
	ValidUntil         *time.Time `json:"valid_until,omitempty"`
	IsActive           bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (Promotion) TableName() string { return "promotions" }
