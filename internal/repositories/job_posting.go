package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"resumeflow/internal/models"
)

type JobPostingRepository interface {
	FindByIDs(ids []int64) ([]models.JobPosting, error)
}

type jobPostingRepository struct {
	db *gorm.DB
}

func NewJobPostingRepository(db *gorm.DB) JobPostingRepository {
	return &jobPostingRepository{db: db}
}

// FindByIDs fetches postings with a single batched lookup. Result order is
// whatever the store returns; callers must re-associate by job id. An empty
// id list short-circuits without touching the database.
func (r *jobPostingRepository) FindByIDs(ids []int64) ([]models.JobPosting, error) {
	if len(ids) == 0 {
		return []models.JobPosting{}, nil
	}

	var postings []models.JobPosting
	if err := r.db.Where("job_id IN ?", ids).Find(&postings).Error; err != nil {
		return nil, fmt.Errorf("failed to find job postings: %w", err)
	}

	return postings, nil
}
