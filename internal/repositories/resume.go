package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"resumeflow/internal/models"
)

// SaveAnalysisInput carries every artifact of one pipeline run.
type SaveAnalysisInput struct {
	UserID          int64
	FilePath        string
	BlobURL         string
	Summary         string
	Skills          []string
	Category        *string
	Strength        *string
	Weakness        *string
	Improvement     *string
	SearchQuery     string
	Recommendations []models.Recommendation
}

type ResumeRepository interface {
	SaveAnalysis(input *SaveAnalysisInput) (int64, error)
	FindAnalysis(resumeID int64) (*models.Resume, *models.EvaluationResult, []models.JobRecommendation, error)
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// SaveAnalysis writes the resume row, its evaluation result, and the ranked
// recommendations in one transaction. Any failure rolls the whole run back.
// Recommendations without a job id are skipped, not treated as errors.
func (r *resumeRepository) SaveAnalysis(input *SaveAnalysisInput) (int64, error) {
	skills := input.Skills
	if skills == nil {
		skills = []string{}
	}

	bundle := models.ResumeAnalysis{
		Summary:           input.Summary,
		Skills:            skills,
		Category:          input.Category,
		AnalysisTimestamp: time.Now().Format(time.RFC3339),
	}

	parsedJSON, err := json.Marshal(bundle)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal analysis bundle: %w", err)
	}

	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal skills: %w", err)
	}

	var resumeID int64

	err = r.db.Transaction(func(tx *gorm.DB) error {
		resume := models.Resume{
			UserID:     input.UserID,
			FilePath:   input.FilePath,
			BlobURL:    input.BlobURL,
			ParsedJSON: datatypes.JSON(parsedJSON),
			UploadedAt: time.Now(),
		}

		if err := tx.Create(&resume).Error; err != nil {
			return fmt.Errorf("failed to create resume: %w", err)
		}

		evaluation := models.EvaluationResult{
			ResumeID:    resume.ID,
			Strength:    input.Strength,
			Weakness:    input.Weakness,
			Improvement: input.Improvement,
			Skills:      datatypes.JSON(skillsJSON),
			Category:    input.Category,
			SearchQuery: input.SearchQuery,
		}

		if err := tx.Create(&evaluation).Error; err != nil {
			return fmt.Errorf("failed to create evaluation result: %w", err)
		}

		for _, rec := range input.Recommendations {
			if rec.Posting.JobID == 0 {
				continue
			}

			row := models.JobRecommendation{
				UserID:        input.UserID,
				ResumeID:      resume.ID,
				JobID:         rec.Posting.JobID,
				Score:         rec.Score,
				Rank:          rec.Rank,
				Reason:        rec.Reason,
				RecommendedAt: time.Now(),
			}

			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create recommendation for job %d: %w", rec.Posting.JobID, err)
			}
		}

		resumeID = resume.ID
		return nil
	})

	if err != nil {
		return 0, err
	}

	return resumeID, nil
}

// FindAnalysis loads the persisted artifacts of one run for the result API.
func (r *resumeRepository) FindAnalysis(resumeID int64) (*models.Resume, *models.EvaluationResult, []models.JobRecommendation, error) {
	var resume models.Resume
	if err := r.db.Where("id = ?", resumeID).First(&resume).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, nil, fmt.Errorf("resume not found")
		}
		return nil, nil, nil, fmt.Errorf("failed to find resume: %w", err)
	}

	var evaluation models.EvaluationResult
	if err := r.db.Where("resume_id = ?", resumeID).First(&evaluation).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, nil, nil, fmt.Errorf("failed to find evaluation result: %w", err)
		}
	}

	var recommendations []models.JobRecommendation
	if err := r.db.Where("resume_id = ?", resumeID).Order("rank ASC").Find(&recommendations).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to find recommendations: %w", err)
	}

	return &resume, &evaluation, recommendations, nil
}
