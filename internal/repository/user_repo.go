package repository

import (
	"errors"

	"rescribe/internal/models"

	"gorm.io/gorm"
)

var (
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrDuplicatePayment    = errors.New("payment already credited")
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var u models.User
	err := r.db.First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var u models.User
	err := r.db.Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(u *models.User) error {
	return r.db.Save(u).Error
}

func (r *UserRepository) SetStripeCustomerID(userID uint, customerID string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("stripe_customer_id", customerID).Error
}

// Debit subtracts amount from the user's balance. The conditional UPDATE
// makes the check-and-subtract atomic; a concurrent debit that drains the
// balance first causes this one to fail with ErrInsufficientCredits.
// Unlimited accounts are never charged.
func (r *UserRepository) Debit(db *gorm.DB, userID uint, amount int64) error {
	if db == nil {
		db = r.db
	}
	if amount <= 0 {
		return nil
	}
	var u models.User
	if err := db.Select("id", "unlimited").First(&u, userID).Error; err != nil {
		return err
	}
	if u.Unlimited {
		return nil
	}
	res := db.Model(&models.User{}).
		Where("id = ? AND credits >= ?", userID, amount).
		Update("credits", gorm.Expr("credits - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientCredits
	}
	return nil
}

// Credit adds amount to the user's balance.
func (r *UserRepository) Credit(db *gorm.DB, userID uint, amount int64) error {
	if db == nil {
		db = r.db
	}
	return db.Model(&models.User{}).Where("id = ?", userID).
		Update("credits", gorm.Expr("credits + ?", amount)).Error
}

// CreditFromPayment records a Stripe payment and applies its credits in one
// transaction. The unique index on stripe_payment_intent_id makes retries
// and duplicate webhook deliveries harmless: the second call returns
// ErrDuplicatePayment and the balance is unchanged.
func (r *UserRepository) CreditFromPayment(p *models.Payment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicatePayment
			}
			return err
		}
		return r.Credit(tx, p.UserID, p.Credits)
	})
}
