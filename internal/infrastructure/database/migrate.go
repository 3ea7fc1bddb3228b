package database

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"bootcamp/internal/domain"
	"bootcamp/internal/infrastructure/database/migrations"
	"bootcamp/internal/infrastructure/database/sqlite"
	"bootcamp/internal/ports/output"
)

var _ output.SchemaManager = (*SchemaManager)(nil)

// SchemaManager creates and drops the service tables with golang-migrate.
// Both operations are idempotent.
type SchemaManager struct {
	dialect Dialect
	dsn     string
}

func NewSchemaManager(dialect Dialect, dsn string) *SchemaManager {
	return &SchemaManager{dialect: dialect, dsn: dsn}
}

// Initialize applies every pending migration.
func (s *SchemaManager) Initialize(ctx context.Context) error {
	return s.run(ctx, "migration up", func(m *migrate.Migrate, _ uint) error {
		return m.Up()
	})
}

// Reset rolls every migration back, dropping all four tables. Tables left
// by a store that never recorded a migration version are dropped too.
func (s *SchemaManager) Reset(ctx context.Context) error {
	return s.run(ctx, "migration down", func(m *migrate.Migrate, latest uint) error {
		if _, _, err := m.Version(); errors.Is(err, migrate.ErrNilVersion) {
			// Down scripts only use DROP ... IF EXISTS.
			if err := m.Force(int(latest)); err != nil {
				return err
			}
		}
		return m.Down()
	})
}

func (s *SchemaManager) run(ctx context.Context, op string, step func(m *migrate.Migrate, latest uint) error) error {
	if err := ctx.Err(); err != nil {
		return domain.Storage(op, err)
	}
	m, latest, err := s.open()
	if err != nil {
		return domain.Storage("migration init", err)
	}
	defer m.Close()

	err = step(m, latest)
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return domain.Storage(op, err)
	}

	version, dirty, verr := m.Version()
	switch {
	case errors.Is(verr, migrate.ErrNilVersion):
		log.Printf("✅ %s done (no version)", op)
	case verr == nil:
		log.Printf("✅ %s done (version=%d, dirty=%v)", op, version, dirty)
	}
	return nil
}

func (s *SchemaManager) open() (*migrate.Migrate, uint, error) {
	src, err := iofs.New(migrations.FS, string(s.dialect))
	if err != nil {
		return nil, 0, fmt.Errorf("load migrations: %w", err)
	}
	latest, err := latestVersion(src)
	if err != nil {
		return nil, 0, fmt.Errorf("read migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, s.migrateURL())
	if err != nil {
		return nil, 0, err
	}
	return m, latest, nil
}

func latestVersion(src source.Driver) (uint, error) {
	version, err := src.First()
	if err != nil {
		return 0, err
	}
	for {
		next, err := src.Next(version)
		if errors.Is(err, fs.ErrNotExist) {
			return version, nil
		}
		if err != nil {
			return 0, err
		}
		version = next
	}
}

func (s *SchemaManager) migrateURL() string {
	if s.dialect == DialectSQLite {
		return "sqlite://" + s.dsn + "?" + sqlite.DSNPragmas
	}
	return s.dsn
}
