package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resumeflow/internal/models"
)

type AnalysisJobRepository interface {
	Create(job *models.AnalysisJob) error
	FindByID(id uuid.UUID) (*models.AnalysisJob, error)
	UpdateStatus(id uuid.UUID, status models.AnalysisStatus) error
	MarkCompleted(id uuid.UUID, resumeID int64) error
	MarkFailed(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.AnalysisJob, error)
}

type analysisJobRepository struct {
	db *gorm.DB
}

func NewAnalysisJobRepository(db *gorm.DB) AnalysisJobRepository {
	return &analysisJobRepository{db: db}
}

func (r *analysisJobRepository) Create(job *models.AnalysisJob) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create analysis job: %w", err)
	}
	return nil
}

func (r *analysisJobRepository) FindByID(id uuid.UUID) (*models.AnalysisJob, error) {
	var job models.AnalysisJob
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("analysis job not found")
		}
		return nil, fmt.Errorf("failed to find analysis job: %w", err)
	}
	return &job, nil
}

func (r *analysisJobRepository) UpdateStatus(id uuid.UUID, status models.AnalysisStatus) error {
	result := r.db.Model(&models.AnalysisJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("analysis job not found")
	}

	return nil
}

func (r *analysisJobRepository) MarkCompleted(id uuid.UUID, resumeID int64) error {
	result := r.db.Model(&models.AnalysisJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     models.StatusCompleted,
			"resume_id":  resumeID,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark job completed: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("analysis job not found")
	}

	return nil
}

func (r *analysisJobRepository) MarkFailed(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.AnalysisJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark job failed: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("analysis job not found")
	}

	return nil
}

func (r *analysisJobRepository) FindPendingJobs(limit int) ([]models.AnalysisJob, error) {
	var jobs []models.AnalysisJob
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}

	return jobs, nil
}
