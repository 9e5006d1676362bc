package models

import "time"

// Communication is one message in the thread scoped to a request.
// Append-only: no update or delete path exists.
type Communication struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RequestID  uint      `gorm:"not null;index" json:"request_id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	SenderType string    `gorm:"size:10;not null" json:"sender_type"` // customer | admin
	Message    string    `gorm:"type:text;not null" json:"message"`
	CreatedAt  time.Time `json:"created_at"`

	Request Request `gorm:"foreignKey:RequestID" json:"-"`
}

func (Communication) TableName() string { return "communications" }
