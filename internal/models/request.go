package models

import "time"

// Request is a single amigurumi commission. Status only moves forward
// along pending → deposit_paid → in_progress → completed, with cancelled
// reachable from any non-terminal state. Requests are never deleted.
type Request struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	CustomerID        uint      `gorm:"not null;index" json:"customer_id"`
	Description       string    `gorm:"type:text;not null" json:"description"`
	ReferenceImageURL string    `gorm:"size:500" json:"reference_image_url,omitempty"`
	PackageType       string    `gorm:"size:20;not null" json:"package_type"`
	DepositAmount     int64     `gorm:"not null" json:"deposit_amount"` // COP cents
	TotalAmount       *int64    `json:"total_amount,omitempty"`         // COP cents, set by admin
	Status            string    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	PaymentID         string    `gorm:"size:100" json:"payment_id,omitempty"` // external transaction id once reconciled
	TrackingCode      string    `gorm:"uniqueIndex;size:6" json:"tracking_code"`
	AdminNotes        string    `gorm:"type:text" json:"admin_notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

func (Request) TableName() string { return "requests" }
