package models

import "time"

// Payment records one payment attempt against one request. It is created
// pending at checkout initiation and mutated exactly once by webhook
// reconciliation. BoldTransactionID stays nil until the checkout page
// reports it back via the attach step.
type Payment struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	RequestID         uint       `gorm:"not null;index" json:"request_id"`
	CustomerID        uint       `gorm:"not null;index" json:"customer_id"`
	Amount            int64      `gorm:"not null" json:"amount"` // COP cents
	Currency          string     `gorm:"size:3;not null;default:'COP'" json:"currency"`
	BoldTransactionID *string    `gorm:"uniqueIndex;size:100" json:"bold_transaction_id,omitempty"`
	Status            string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	PaymentMethod     string     `gorm:"size:50" json:"payment_method,omitempty"`
	Reference         string     `gorm:"size:100;not null" json:"reference"` // AMIGURUMI-{requestId}
	IdempotencyKey    string     `gorm:"uniqueIndex;size:64" json:"-"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	Request  Request  `gorm:"foreignKey:RequestID" json:"-"`
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

func (Payment) TableName() string { return "payments" }
