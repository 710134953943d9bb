package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/adoptafacil/internal/config"
	"github.com/spec-kit/adoptafacil/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	serve := serveCommand(cfg, logger)
	rootCmd := &cobra.Command{
		Use:          "adoptafacil",
		Short:        "Adoption platform registration service",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	rootCmd.AddCommand(serve, migrateCommand(cfg, logger))

	err = rootCmd.ExecuteContext(context.Background())
	_ = logger.Sync()
	if err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
