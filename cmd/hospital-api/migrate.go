package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medcore/hospital-admin/internal/infrastructure/config"
	"github.com/medcore/hospital-admin/internal/infrastructure/db/postgres"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(m *postgres.Migrator) error {
				if err := m.Up(); err != nil {
					return fmt.Errorf("migration failed: %w", err)
				}
				cmd.Println("Migrations applied successfully.")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(m *postgres.Migrator) error {
				if err := m.Down(); err != nil {
					return fmt.Errorf("rollback failed: %w", err)
				}
				cmd.Println("Rolled back one migration.")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show the current schema version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(m *postgres.Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				cmd.Printf("version=%d dirty=%t\n", version, dirty)
				return nil
			})
		},
	})

	return cmd
}

func withMigrator(ctx context.Context, fn func(*postgres.Migrator) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	m, err := postgres.NewMigrator(cfg.Postgres.URL)
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}
