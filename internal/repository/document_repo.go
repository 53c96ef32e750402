package repository

import (
	"rescribe/internal/models"

	"gorm.io/gorm"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(d *models.Document) error {
	return r.db.Create(d).Error
}

func (r *DocumentRepository) GetByID(id string) (*models.Document, error) {
	var d models.Document
	err := r.db.Where("id = ?", id).First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DocumentRepository) ListByUser(userID uint, limit int) ([]models.Document, error) {
	var docs []models.Document
	q := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&docs).Error
	return docs, err
}

func (r *DocumentRepository) UpdateAIScore(id string, score int) error {
	return r.db.Model(&models.Document{}).Where("id = ?", id).
		Update("ai_score", score).Error
}
