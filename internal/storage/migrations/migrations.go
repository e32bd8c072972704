// Package migrations embeds the schema and applies it with golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var files embed.FS

// Status reports the schema version before and after Up.
type Status struct {
	PreMigrationVersion  uint
	PostMigrationVersion uint
}

// Up applies every pending migration to db.
func Up(db *sql.DB) (Status, error) {
	source, err := iofs.New(files, ".")
	if err != nil {
		return Status{}, fmt.Errorf("migrations: source: %w", err)
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return Status{}, fmt.Errorf("migrations: postgres.WithInstance: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return Status{}, fmt.Errorf("migrations: migrate.NewWithInstance: %w", err)
	}

	var status Status
	status.PreMigrationVersion, err = version(m)
	if err != nil {
		return Status{}, err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return Status{}, fmt.Errorf("migrations: up: %w", err)
	}

	status.PostMigrationVersion, err = version(m)
	if err != nil {
		return Status{}, err
	}
	return status, nil
}

func version(m *migrate.Migrate) (uint, error) {
	v, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("migrations: version: %w", err)
	}
	return v, nil
}
