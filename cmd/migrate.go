package main

import (
	"context"
	"fmt"

	"whatsapp-crm/internal/repository"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		repo, err := repository.New(ctx, "postgres", log, cfg)
		if err != nil {
			return fmt.Errorf("repository initialization: %w", err)
		}
		if err := repo.Migrate(ctx); err != nil {
			return err
		}
		return nil
	},
}
