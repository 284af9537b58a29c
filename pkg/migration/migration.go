package migration

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

func newMigrate(dsn string, migrationsDir string) *migrate.Migrate {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsDir),
		fmt.Sprintf("mysql://%s", dsn),
	)
	if err != nil {
		panic(err)
	}
	return m
}

// MigrateCommand returns the root command for running migrations
func MigrateCommand(dsn string) *cobra.Command {
	root := &cobra.Command{
		Use:   "migrate",
		Short: "run database migrations",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "migrate up to the latest version",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newMigrate(dsn, "migrations")
			err := m.Up()
			if errors.Is(err, migrate.ErrNoChange) {
				return nil
			}
			return err
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "revert the last migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newMigrate(dsn, "migrations")
			return m.Steps(-1)
		},
	}

	root.AddCommand(up, down)
	return root
}

// MigrateUpForTesting migrates the test database up to the latest
// version, used by the integration test harness
func MigrateUpForTesting(rootDir string, dsn string) {
	m := newMigrate(dsn, filepath.Join(rootDir, "migrations"))
	err := m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		panic(err)
	}
}
