package models

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisStatus string

const (
	StatusQueued     AnalysisStatus = "queued"
	StatusProcessing AnalysisStatus = "processing"
	StatusCompleted  AnalysisStatus = "completed"
	StatusFailed     AnalysisStatus = "failed"
)

// AnalysisJob tracks one asynchronous pipeline run requested through the API.
// A completed job points at the persisted resume row it produced.
type AnalysisJob struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID       int64          `gorm:"not null" json:"user_id"`
	DocumentID   uuid.UUID      `gorm:"type:uuid;not null" json:"document_id"`
	Status       AnalysisStatus `gorm:"not null;default:'queued'" json:"status"`
	ResumeID     *int64         `json:"resume_id,omitempty"`
	ErrorMessage *string        `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Document Document `gorm:"foreignKey:DocumentID" json:"-"`
}

func (AnalysisJob) TableName() string {
	return "analysis_jobs"
}
