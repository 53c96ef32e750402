package models

import "time"

// Document is an uploaded or pasted text artifact. Immutable once created
// except for re-scoring.
type Document struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	UserID     *uint     `gorm:"index" json:"user_id"` // nil for anonymous uploads
	Filename   string    `gorm:"size:255;not null" json:"filename"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	WordCount  int       `gorm:"not null" json:"word_count"`
	AIScore    *int      `json:"ai_score"`
	StorageKey string    `gorm:"size:255" json:"-"` // object-store copy of the original file, if any
	CreatedAt  time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Document) TableName() string {
	return "documents"
}
