package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/adoptafacil/internal/config"
	"github.com/spec-kit/adoptafacil/internal/persistence"
)

func migrateCommand(cfg *config.Config, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Applies pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.Postgres.DSN == "" {
				return errors.New("POSTGRES_DSN is required to run migrations")
			}
			pg, err := persistence.NewPostgres(cmd.Context(), cfg.Postgres, logger)
			if err != nil {
				return err
			}
			defer pg.Close()

			return persistence.RunMigrations(cmd.Context(), pg.PoolHandle(), logger)
		},
	}
}
