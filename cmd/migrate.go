package main

import (
	"context"
	"database/sql"
	"fmt"

	root "cookbook"
	"cookbook/internal/config"
	"cookbook/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func migrateCatalog(db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("could not apply catalog migrations: %w", err)
	}

	return nil
}

// migrateRiver brings the job tables to the newest version shipped with river
// and returns the versions it moved between.
func migrateRiver(ctx context.Context, db *sql.DB) (from, to int, err error) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return 0, 0, fmt.Errorf("could not create river migrator: %w", err)
	}

	all := migrator.AllVersions()
	to = all[len(all)-1].Version

	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("could not list applied river migrations: %w", err)
	}
	if len(existing) > 0 {
		from = existing[len(existing)-1].Version
	}
	if from >= to {
		return from, from, nil
	}

	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{TargetVersion: to}); err != nil {
		return from, from, fmt.Errorf("could not apply river migrations: %w", err)
	}

	return from, to, nil
}

// migrateCommand constructs the 'migrate' subcommand. Catalog tables come
// first, then the river job tables.
func migrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db := strg.DB.(*sql.DB)
			if err := migrateCatalog(db); err != nil {
				logger.Fatal(ctx, "could not migrate catalog tables", zap.Error(err))
			}

			from, to, err := migrateRiver(ctx, db)
			if err != nil {
				logger.Fatal(ctx, "could not migrate river tables", zap.Error(err))
			}
			if from != to {
				logger.Info(ctx, "river tables migrated", zap.Int("from", from), zap.Int("to", to))
			}

			logger.Info(ctx, "database is up to date")
		},
	}
}
