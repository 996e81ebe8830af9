package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"resumeflow/internal/config"
	"resumeflow/internal/logger"
	"resumeflow/internal/repositories"
	"resumeflow/internal/services"
)

// The CLI runner takes exactly two positional arguments: a user id and the
// path to a resume PDF. It runs the pipeline synchronously and exits
// non-zero on any fatal stage failure.
var rootCmd = &cobra.Command{
	Use:   "pipeline <user_id> <pdf_path>",
	Short: "Run the resume analysis pipeline for one user and one PDF",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q: %w", args[0], err)
		}

		return run(cmd.Context(), userID, args[1])
	},
	SilenceUsage: true,
}

func run(ctx context.Context, userID int64, pdfPath string) error {
	cfg := config.Load()

	zlog, err := logger.New(false, false)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer zlog.Sync()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Each run opens its own connection and closes it on exit.
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access database handle: %w", err)
	}
	defer sqlDB.Close()

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		return fmt.Errorf("failed to initialize gemini: %w", err)
	}

	blobService, err := services.NewBlobStorageService(cfg.Blob, zlog)
	if err != nil {
		return fmt.Errorf("failed to initialize blob storage: %w", err)
	}

	pipeline := services.NewPipelineService(
		blobService,
		services.NewPDFParserService(),
		services.NewAnalyzerService(geminiService),
		services.NewSearchService(cfg.Search.URL, zlog),
		repositories.NewJobPostingRepository(db),
		repositories.NewResumeRepository(db),
		cfg.Search.TopK,
		zlog,
	)

	resumeID, err := pipeline.Run(ctx, userID, pdfPath)
	if err != nil {
		return err
	}

	zlog.Info("analysis stored", zap.Int64("resume_id", resumeID))
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
