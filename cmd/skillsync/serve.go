package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillsync/internal/config"
	"github.com/jonathan/skillsync/internal/db"
	"github.com/jonathan/skillsync/internal/scoring"
	"github.com/jonathan/skillsync/internal/server"
)

var (
	servePort       int
	serveDataDir    string
	serveModelPath  string
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for skill gap analysis, roadmap generation and user progress tracking.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDataDir, "data", "data", "Directory containing the catalog CSV files")
	serveCmd.Flags().StringVar(&serveModelPath, "model", "", "Path to readiness model artifact (omit to use heuristic scoring)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port := servePort
	dataDir := serveDataDir
	modelPath := serveModelPath
	databaseURL := os.Getenv("DATABASE_URL")

	// Config file values fill in anything not set explicitly on the command
	// line or in the environment.
	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		if err := fileCfg.Validate(); err != nil {
			return err
		}
		if !cmd.Flags().Changed("port") && fileCfg.Port != 0 {
			port = fileCfg.Port
		}
		if !cmd.Flags().Changed("data") && fileCfg.DataDir != "" {
			dataDir = fileCfg.DataDir
		}
		if !cmd.Flags().Changed("model") && fileCfg.ModelPath != "" {
			modelPath = fileCfg.ModelPath
		}
		if databaseURL == "" {
			databaseURL = fileCfg.DatabaseURL
		}
	}

	cfg := server.Config{
		Port:    port,
		DataDir: dataDir,
	}

	// The model is optional: a missing or invalid artifact falls back to
	// heuristic scoring rather than refusing to start.
	if modelPath != "" {
		model, err := scoring.LoadModel(modelPath)
		if err != nil {
			log.Printf("Could not load readiness model, using heuristic scoring: %v", err)
		} else {
			cfg.Model = model
		}
	}

	// User profile/progress endpoints need a database; the core API does not.
	if databaseURL != "" {
		ctx := context.Background()
		database, err := db.Connect(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		if err := database.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to ensure database schema: %w", err)
		}
		cfg.Store = database
	} else {
		log.Println("DATABASE_URL not set, user endpoints disabled")
	}

	srv := server.New(cfg)
	return srv.Start()
}
