package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/melissa/career-advisor/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the classify, discover, optimize, and market operations as JSON endpoints.`,
}

var servePort int

func init() {
	serveCmd.RunE = runServe
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.Port == 0 || serveCmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	pipeline, err := buildPipeline(cfg, log, false)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, closeStore, err := openSeenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	srv, err := server.New(server.Config{
		Port:      cfg.Port,
		Pipeline:  pipeline,
		SeenStore: store,
		Logger:    log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
