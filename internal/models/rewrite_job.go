package models

import (
	"time"

	"gorm.io/datatypes"

	"rescribe/pkg/textchunk"
)

// RewriteJob is one rewrite transaction. A re-rewrite updates the same row in
// place, overwriting the output fields.
type RewriteJob struct {
	ID                 string                               `gorm:"primaryKey;size:36" json:"id"`
	UserID             *uint                                `gorm:"index" json:"user_id"` // nil for anonymous jobs
	InputText          string                               `gorm:"type:text;not null" json:"input_text"`
	StyleText          *string                              `gorm:"type:text" json:"style_text"`
	ContentMixText     *string                              `gorm:"type:text" json:"content_mix_text"`
	CustomInstructions *string                              `gorm:"type:text" json:"custom_instructions"`
	SelectedPresets    datatypes.JSONSlice[string]          `json:"selected_presets"`
	Provider           string                               `gorm:"size:32;not null" json:"provider"`
	Chunks             datatypes.JSONSlice[textchunk.Chunk] `json:"chunks"`
	SelectedChunkIDs   datatypes.JSONSlice[string]          `json:"selected_chunk_ids"`
	MixingMode         string                               `gorm:"size:16" json:"mixing_mode"`
	OutputText         *string                              `gorm:"type:text" json:"output_text"`
	InputAIScore       *int                                 `json:"input_ai_score"`
	OutputAIScore      *int                                 `json:"output_ai_score"`
	Status             string                               `gorm:"size:16;not null;index" json:"status"` // pending | completed | failed
	CreatedAt          time.Time                            `json:"created_at"`
	UpdatedAt          time.Time                            `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (RewriteJob) TableName() string {
	return "rewrite_jobs"
}
