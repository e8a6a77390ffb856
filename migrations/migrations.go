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

// FS SQL миграции схемы, встроенные в бинарник
//
//go:embed *.sql
var FS embed.FS

// Up применяет все непримененные миграции
// Возвращает версию схемы после применения
func Up(db *sql.DB) (uint, error) {
	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return 0, fmt.Errorf("migrations: db driver: %w", err)
	}

	srcDriver, err := iofs.New(FS, ".")
	if err != nil {
		return 0, fmt.Errorf("migrations: source driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		return 0, fmt.Errorf("migrations: create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migrations: up: %w", err)
	}

	version, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("migrations: version: %w", err)
	}
	return version, nil
}
