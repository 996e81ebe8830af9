package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"resumeflow/internal/logger"
	"resumeflow/internal/models"
	"resumeflow/internal/repositories"
)

// PipelineService runs the whole resume-intake sequence for one user and
// one PDF: upload, extract, evaluate, profile and query, search, catalog
// lookup, explain, persist. It returns the persisted resume row id.
type PipelineService interface {
	Run(ctx context.Context, userID int64, pdfPath string) (int64, error)
}

type pipelineService struct {
	blob       BlobStorageService
	pdfParser  PDFParserService
	analyzer   AnalyzerService
	search     SearchService
	jobRepo    repositories.JobPostingRepository
	resumeRepo repositories.ResumeRepository
	topK       int
	logger     *zap.Logger
}

func NewPipelineService(
	blob BlobStorageService,
	pdfParser PDFParserService,
	analyzer AnalyzerService,
	search SearchService,
	jobRepo repositories.JobPostingRepository,
	resumeRepo repositories.ResumeRepository,
	topK int,
	log *zap.Logger,
) PipelineService {
	return &pipelineService{
		blob:       blob,
		pdfParser:  pdfParser,
		analyzer:   analyzer,
		search:     search,
		jobRepo:    jobRepo,
		resumeRepo: resumeRepo,
		topK:       topK,
		logger:     log,
	}
}

// Run executes the stages strictly in order, one at a time. Upload,
// extraction, evaluation, query generation, and persistence failures abort
// the run; an empty search result or catalog miss degrades to an empty
// recommendation list and the run continues.
func (p *pipelineService) Run(ctx context.Context, userID int64, pdfPath string) (int64, error) {
	p.logger.Info("starting resume analysis pipeline",
		zap.Int64("user_id", userID),
		zap.String("pdf_path", pdfPath),
	)

	// Stage 1: blob upload
	blobURL, err := p.blob.UploadResume(ctx, userID, pdfPath)
	if err != nil {
		return 0, fmt.Errorf("blob upload failed: %w", err)
	}
	p.logger.Info("resume uploaded to blob storage", zap.String("blob_url", blobURL))

	// Stage 2: text extraction
	text, err := p.pdfParser.ExtractText(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("text extraction failed: %w", err)
	}
	p.logger.Info("text extracted from resume",
		zap.String("preview", logger.Truncate(CleanText(text), 500)),
	)

	// Stage 3: LLM evaluation
	report, err := p.analyzer.EvaluateResume(ctx, text)
	if err != nil {
		return 0, fmt.Errorf("resume evaluation failed: %w", err)
	}
	p.logger.Info("resume evaluated",
		zap.String("report_preview", logger.Truncate(report, 700)),
	)

	// Stage 4: skills/category extraction and query generation
	query, skills, category, err := p.analyzer.GenerateQueryFromReport(ctx, report)
	if err != nil {
		return 0, fmt.Errorf("search query generation failed: %w", err)
	}
	p.logger.Info("skills and category extracted",
		zap.Strings("skills", skills),
		zap.Stringp("category", category),
		zap.String("search_query", query),
	)

	// Stage 5: similarity search (recoverable)
	candidates := p.search.SearchJobIDs(ctx, query, p.topK)

	// Stage 6: catalog lookup (recoverable)
	jobIDs := make([]int64, 0, len(candidates))
	for _, c := range candidates {
		jobIDs = append(jobIDs, c.JobID)
	}

	postings, err := p.jobRepo.FindByIDs(jobIDs)
	if err != nil {
		p.logger.Warn("catalog lookup failed",
			zap.Int64s("job_ids", jobIDs),
			zap.Error(err),
		)
		postings = nil
	}

	// Stage 7: join, rank, explain
	recommendations := p.buildRecommendations(ctx, candidates, postings, skills, category, query)

	switch {
	case len(candidates) == 0:
		p.logger.Info("no similar postings found for query", zap.String("search_query", query))
	case len(recommendations) == 0:
		p.logger.Info("search returned postings missing from catalog", zap.Int64s("job_ids", jobIDs))
	default:
		p.logger.Info("recommendations ready", zap.Int("count", len(recommendations)))
	}

	// Stage 8: persistence (one transaction)
	strength, weakness, improvement := ParseReportSections(report)

	resumeID, err := p.resumeRepo.SaveAnalysis(&repositories.SaveAnalysisInput{
		UserID:          userID,
		FilePath:        pdfPath,
		BlobURL:         blobURL,
		Summary:         report,
		Skills:          skills,
		Category:        category,
		Strength:        strength,
		Weakness:        weakness,
		Improvement:     improvement,
		SearchQuery:     query,
		Recommendations: recommendations,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to persist analysis: %w", err)
	}

	p.logger.Info("pipeline completed", zap.Int64("resume_id", resumeID))
	return resumeID, nil
}

// buildRecommendations joins candidates with catalog postings by job id,
// keeping the candidates' ranking order. Candidates absent from the catalog
// are dropped silently, so ranks stay contiguous from 1. Explanations are
// generated one at a time in rank order; a failed explanation is persisted
// as its error-message text.
func (p *pipelineService) buildRecommendations(
	ctx context.Context,
	candidates []models.CandidateMatch,
	postings []models.JobPosting,
	skills []string,
	category *string,
	query string,
) []models.Recommendation {
	byID := make(map[int64]models.JobPosting, len(postings))
	for _, posting := range postings {
		byID[posting.JobID] = posting
	}

	var recommendations []models.Recommendation
	rank := 0

	for _, candidate := range candidates {
		posting, ok := byID[candidate.JobID]
		if !ok {
			continue
		}

		rank++
		p.logger.Info("recommended posting",
			zap.Int("rank", rank),
			zap.String("position_title", posting.PositionTitle),
			zap.Float64("similarity_score", candidate.SimilarityScore),
			zap.String("posted_at", formatPostedAt(posting.PostedAt)),
			zap.String("description_preview", logger.Truncate(posting.Description, 200)),
		)

		reason := p.analyzer.ExplainMatch(ctx, MatchExplanationInput{
			UserSkills:      skills,
			UserCategory:    category,
			JobTitle:        posting.PositionTitle,
			JobDescription:  posting.Description,
			SimilarityScore: candidate.SimilarityScore,
			SearchQuery:     query,
		})

		recommendations = append(recommendations, models.Recommendation{
			Posting: posting,
			Score:   candidate.SimilarityScore,
			Rank:    rank,
			Reason:  &reason,
		})
	}

	return recommendations
}

func formatPostedAt(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("2006-01-02")
}
