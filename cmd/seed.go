package main

import (
	"context"

	"cookbook/internal/config"
	"cookbook/internal/seed"
	"cookbook/pkg/credential"
	"cookbook/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCommand constructs the 'seed' subcommand that loads the default
// categories and the demo accounts and recipes. Running it twice is harmless.
func seedCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seeds default categories and demo data",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, _, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			hasher := credential.New(credential.Options{Cost: cfg.Credential.BcryptCost})
			if err := seed.Run(ctx, strg, hasher); err != nil {
				logger.Fatal(ctx, "could not seed catalog", zap.Error(err))
			}
		},
	}
}
