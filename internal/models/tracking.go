package models

import "time"

// QRCodeTracking holds the production-tracking record for a request.
// QRCode is a rendered PNG data URI encoding the public tracking URL.
// Its status advances independently of the request status enum.
type QRCodeTracking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RequestID uint      `gorm:"uniqueIndex;not null" json:"request_id"`
	QRCode    string    `gorm:"type:text;not null" json:"qr_code"`
	Status    string    `gorm:"size:20;not null;default:'created'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Request Request `gorm:"foreignKey:RequestID" json:"-"`
}

func (QRCodeTracking) TableName() string { return "qr_code_tracking" }

// CompletionNotification records that a "ready" notice was generated for a
// request. DeliveryStatus reflects the outcome of the owner dispatch.
type CompletionNotification struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	RequestID      uint      `gorm:"not null;index" json:"request_id"`
	CustomerID     uint      `gorm:"not null;index" json:"customer_id"`
	Message        string    `gorm:"type:text;not null" json:"message"`
	DeliveryStatus string    `gorm:"size:10;not null;default:'pending'" json:"delivery_status"`
	SentAt         time.Time `gorm:"autoCreateTime" json:"sent_at"`

	Request Request `gorm:"foreignKey:RequestID" json:"-"`
}

func (CompletionNotification) TableName() string { return "completion_notifications" }
