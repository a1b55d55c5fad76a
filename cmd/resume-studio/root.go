package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "resume-studio/internal/adapter/http"
	"resume-studio/internal/config"
	"resume-studio/internal/session"
	"resume-studio/internal/util"
	"resume-studio/pkg/ai"
	"resume-studio/pkg/export"
)

var rootCmd = &cobra.Command{
	Use:   "resume-studio",
	Short: "Interactive resume builder with AI assistance",
	Long: `resume-studio serves a single-session resume builder: structured resume
editing, twenty visual templates rendered server-side, Gemini-backed content
generation and improvement, and PDF/DOC export.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the builder API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

// Execute runs the root command.
func Execute() {
	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	cfg := config.Load()

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// The AI collaborator is optional; the builder works without it and
	// the handlers report it as unavailable.
	var content httpadapter.ContentService
	if cfg.Gemini.APIKey != "" {
		client, err := ai.NewClient(ctx, ai.Config{
			APIKey:     cfg.Gemini.APIKey,
			Model:      cfg.Gemini.Model,
			ImageModel: cfg.Gemini.ImageModel,
		}, logger)
		if err != nil {
			return err
		}
		content = client
	} else {
		logger.Warn("GEMINI_API_KEY not set, AI endpoints disabled")
	}

	backend := export.NewChromeBackend(cfg.ChromePath)
	if !backend.Ready() {
		logger.Warn("no Chrome binary found, PDF export will report not-ready")
	}
	exporter := export.NewPDFExporter(backend, logger)

	sess := session.New()

	app := fiber.New(fiber.Config{BodyLimit: 20 * 1024 * 1024})
	h := httpadapter.NewHandler(sess, content, exporter, logger)
	h.Register(app)

	logger.Info("resume-studio listening", zap.String("port", cfg.Port))
	return app.Listen(":" + cfg.Port)
}
