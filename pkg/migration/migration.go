// Package migration wraps golang-migrate with the up/down/force commands
// used by cmd/migrate and by integration test bootstrap.
package migration

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

func newMigrate(sourceURL string, dsn string) *migrate.Migrate {
	m, err := migrate.New(sourceURL, "mysql://"+dsn)
	if err != nil {
		panic(err)
	}
	return m
}

func finish(m *migrate.Migrate, err error) error {
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	return dbErr
}

// MigrateCommand builds the migrate command tree for the given database
func MigrateCommand(dsn string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "migrate",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "migrate up all versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newMigrate("file://migrations", dsn)
			return finish(m, m.Up())
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "migrate down one version",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newMigrate("file://migrations", dsn)
			return finish(m, m.Steps(-1))
		},
	}

	forceCmd := &cobra.Command{
		Use:   "force <version>",
		Short: "force the schema version without running migrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", args[0], err)
			}
			m := newMigrate("file://migrations", dsn)
			return finish(m, m.Force(version))
		},
	}

	rootCmd.AddCommand(upCmd, downCmd, forceCmd)
	return rootCmd
}

// MigrateUpForTesting brings the test database to the latest version
func MigrateUpForTesting(rootDir string, dsn string) {
	sourceURL := "file://" + filepath.Join(rootDir, "migrations")
	m := newMigrate(sourceURL, dsn)
	err := finish(m, m.Up())
	if err != nil {
		panic(err)
	}
}
