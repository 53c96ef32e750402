package models

import (
	"time"
)

type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Username         string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	PasswordHash     string    `gorm:"size:255" json:"-"`
	Credits          int64     `gorm:"not null;default:0" json:"credits"`
	Unlimited        bool      `gorm:"not null;default:false" json:"unlimited"`
	StripeCustomerID *string   `gorm:"size:255" json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
