package models

import "time"

type Customer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"size:100;not null" json:"first_name"`
	LastName     string    `gorm:"size:100;not null" json:"last_name"`
	Email        string    `gorm:"uniqueIndex;size:320;not null" json:"email"`
	Phone        string    `gorm:"size:20;not null" json:"phone"`
	ReferralCode string    `gorm:"uniqueIndex;size:50" json:"referral_code"` // immutable after registration
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
