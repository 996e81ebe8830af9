package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumeflow/internal/models"
	"resumeflow/internal/repositories"
	"resumeflow/internal/services"
)

type AnalyzeHandler struct {
	jobRepo  repositories.AnalysisJobRepository
	docRepo  repositories.DocumentRepository
	worker   services.Worker
	validate *validator.Validate
}

func NewAnalyzeHandler(
	jobRepo repositories.AnalysisJobRepository,
	docRepo repositories.DocumentRepository,
	worker services.Worker,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		jobRepo:  jobRepo,
		docRepo:  docRepo,
		worker:   worker,
		validate: validator.New(),
	}
}

// HandleAnalyze handles POST /analyze: creates a queued analysis job for an
// uploaded document and hands it to the worker pool.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	docID, err := uuid.Parse(req.DocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document_id format",
		})
	}

	if _, err := h.docRepo.FindByID(docID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Document not found",
		})
	}

	job := &models.AnalysisJob{
		ID:         uuid.New(),
		UserID:     req.UserID,
		DocumentID: docID,
		Status:     models.StatusQueued,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := h.jobRepo.Create(job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create analysis job",
		})
	}

	h.worker.EnqueueJob(job.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.AnalyzeResponse{
		ID:     job.ID.String(),
		Status: string(models.StatusQueued),
	})
}
