package models

import "time"

// Payment records one externally settled Stripe payment. The unique intent id
// is the idempotency key for credit granting.
type Payment struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	StripePaymentIntentID string    `gorm:"size:255;uniqueIndex;not null" json:"stripe_payment_intent_id"`
	UserID                uint      `gorm:"not null;index" json:"user_id"`
	Credits               int64     `gorm:"not null" json:"credits"`
	AmountCents           int64     `gorm:"not null" json:"amount_cents"`
	Status                string    `gorm:"size:20;not null" json:"status"`
	CreatedAt             time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}
