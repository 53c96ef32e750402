package repository

import (
	"errors"

	"rescribe/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("rewrite job not found")

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(j *models.RewriteJob) error {
	return r.db.Create(j).Error
}

func (r *JobRepository) GetByID(id string) (*models.RewriteJob, error) {
	var j models.RewriteJob
	err := r.db.Where("id = ?", id).First(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *JobRepository) Update(j *models.RewriteJob) error {
	return r.db.Save(j).Error
}

// UpdateTx saves the job inside an existing transaction so completion and
// the credit debit commit together.
func (r *JobRepository) UpdateTx(tx *gorm.DB, j *models.RewriteJob) error {
	return tx.Save(j).Error
}

// ListAll returns every rewrite job regardless of owner, newest first.
func (r *JobRepository) ListAll(limit int) ([]models.RewriteJob, error) {
	var jobs []models.RewriteJob
	q := r.db.Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) ListByUser(userID uint, limit int) ([]models.RewriteJob, error) {
	var jobs []models.RewriteJob
	q := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) DB() *gorm.DB {
	return r.db
}
