package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resumeflow/internal/models"
	"resumeflow/internal/repositories"
)

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(jobID uuid.UUID)
}

type worker struct {
	jobRepo     repositories.AnalysisJobRepository
	docRepo     repositories.DocumentRepository
	pipeline    PipelineService
	jobQueue    chan uuid.UUID
	concurrency int
	wg          sync.WaitGroup
	stopChan    chan struct{}
	logger      *zap.Logger
}

func NewWorker(
	jobRepo repositories.AnalysisJobRepository,
	docRepo repositories.DocumentRepository,
	pipeline PipelineService,
	concurrency int,
	log *zap.Logger,
) Worker {
	return &worker{
		jobRepo:     jobRepo,
		docRepo:     docRepo,
		pipeline:    pipeline,
		jobQueue:    make(chan uuid.UUID, 100),
		concurrency: concurrency,
		stopChan:    make(chan struct{}),
		logger:      log,
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	w.logger.Info("starting workers", zap.Int("concurrency", w.concurrency))

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	w.wg.Add(1)
	go w.pollPendingJobs(ctx)
}

// Stop implements Worker.
func (w *worker) Stop() {
	w.logger.Info("stopping workers")
	close(w.stopChan)
	w.wg.Wait()
}

// EnqueueJob implements Worker.
func (w *worker) EnqueueJob(jobID uuid.UUID) {
	select {
	case w.jobQueue <- jobID:
		w.logger.Debug("job enqueued", zap.String("job_id", jobID.String()))
	case <-w.stopChan:
		w.logger.Warn("worker stopped, cannot enqueue job", zap.String("job_id", jobID.String()))
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			w.logger.Debug("worker stopped", zap.Int("worker_id", workerID))
			return
		case jobID := <-w.jobQueue:
			w.logger.Info("processing analysis job",
				zap.Int("worker_id", workerID),
				zap.String("job_id", jobID.String()),
			)
			if err := w.processJob(ctx, jobID); err != nil {
				w.logger.Error("analysis job failed",
					zap.Int("worker_id", workerID),
					zap.String("job_id", jobID.String()),
					zap.Error(err),
				)
			}
		}
	}
}

// processJob runs one queued analysis job through the pipeline and records
// the outcome on the job row.
func (w *worker) processJob(ctx context.Context, jobID uuid.UUID) error {
	if err := w.jobRepo.UpdateStatus(jobID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	job, err := w.jobRepo.FindByID(jobID)
	if err != nil {
		w.jobRepo.MarkFailed(jobID, err.Error())
		return fmt.Errorf("failed to load job: %w", err)
	}

	doc, err := w.docRepo.FindByID(job.DocumentID)
	if err != nil {
		w.jobRepo.MarkFailed(jobID, fmt.Sprintf("document not found: %v", err))
		return fmt.Errorf("failed to load document: %w", err)
	}

	resumeID, err := w.pipeline.Run(ctx, job.UserID, doc.FilePath)
	if err != nil {
		w.jobRepo.MarkFailed(jobID, err.Error())
		return fmt.Errorf("pipeline run failed: %w", err)
	}

	if err := w.jobRepo.MarkCompleted(jobID, resumeID); err != nil {
		return fmt.Errorf("failed to mark job completed: %w", err)
	}

	return nil
}

func (w *worker) pollPendingJobs(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ticker.C:
			pendingJobs, err := w.jobRepo.FindPendingJobs(10)
			if err != nil {
				w.logger.Warn("failed to fetch pending jobs", zap.Error(err))
				continue
			}

			for _, job := range pendingJobs {
				w.EnqueueJob(job.ID)
			}
		}
	}
}
