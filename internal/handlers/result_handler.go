package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumeflow/internal/models"
	"resumeflow/internal/repositories"
)

type ResultHandler struct {
	jobRepo    repositories.AnalysisJobRepository
	resumeRepo repositories.ResumeRepository
}

func NewResultHandler(
	jobRepo repositories.AnalysisJobRepository,
	resumeRepo repositories.ResumeRepository,
) *ResultHandler {
	return &ResultHandler{
		jobRepo:    jobRepo,
		resumeRepo: resumeRepo,
	}
}

// HandleGetResult handles GET /result/:id.
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	idParam := c.Params("id")
	jobID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	job, err := h.jobRepo.FindByID(jobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis job not found",
		})
	}

	response := models.ResultResponse{
		ID:     job.ID.String(),
		Status: string(job.Status),
	}

	if job.Status == models.StatusFailed {
		response.ErrorMessage = job.ErrorMessage
	}

	if job.Status == models.StatusCompleted && job.ResumeID != nil {
		data, err := h.buildAnalysisData(*job.ResumeID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to load analysis result",
			})
		}
		response.Result = data
	}

	return c.JSON(response)
}

func (h *ResultHandler) buildAnalysisData(resumeID int64) (*models.AnalysisData, error) {
	resume, evaluation, recommendations, err := h.resumeRepo.FindAnalysis(resumeID)
	if err != nil {
		return nil, err
	}

	var skills []string
	if len(evaluation.Skills) > 0 {
		// Skills were marshalled by us; a decode failure just leaves them empty.
		json.Unmarshal(evaluation.Skills, &skills)
	}
	if skills == nil {
		skills = []string{}
	}

	recData := make([]models.RecommendationData, 0, len(recommendations))
	for _, rec := range recommendations {
		recData = append(recData, models.RecommendationData{
			JobID:  rec.JobID,
			Score:  rec.Score,
			Rank:   rec.Rank,
			Reason: rec.Reason,
		})
	}

	return &models.AnalysisData{
		ResumeID:        resume.ID,
		BlobURL:         resume.BlobURL,
		Strength:        evaluation.Strength,
		Weakness:        evaluation.Weakness,
		Improvement:     evaluation.Improvement,
		Skills:          skills,
		Category:        evaluation.Category,
		SearchQuery:     evaluation.SearchQuery,
		Recommendations: recData,
	}, nil
}
