package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-match/internal/chat"
	"github.com/jonathan/resume-match/internal/jobapi"
	"github.com/jonathan/resume-match/internal/logger"
	"github.com/jonathan/resume-match/internal/server"
	"github.com/jonathan/resume-match/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes resume analysis and chat endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	// The flag wins when set explicitly; otherwise the config value stands.
	if cmd.Flags().Changed("port") || cfg.Port == 0 {
		cfg.Port = servePort
	}
	if cfg.JobAPIBaseURL == "" {
		return fmt.Errorf("job API base URL is required (job_api_base_url or JOB_API_BASE_URL)")
	}

	log, err := logger.New(true, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	ctx := cmd.Context()

	eng, client, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	deps := server.Deps{
		Analyzer: eng,
		Jobs:     jobapi.New(cfg.JobAPIBaseURL, cfg.JobAPIKey),
		Chat:     chat.NewRelay(client, cfg.SystemPrompt),
		Logger:   log,
	}

	// The cache is optional; without a database every upload is analyzed
	// fresh.
	if cfg.DatabaseURL != "" {
		db, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		if err := db.EnsureSchema(ctx); err != nil {
			return err
		}
		deps.Cache = db
	}

	srv, err := server.New(server.Config{Port: cfg.Port}, deps)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
