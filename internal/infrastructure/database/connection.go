// Package database picks the storage backend from a URL and manages its
// schema.
package database

import (
	"context"
	"fmt"
	"strings"

	"bootcamp/internal/infrastructure/database/postgres"
	"bootcamp/internal/infrastructure/database/sqlite"
	"bootcamp/internal/ports/output"
)

// Dialect names a supported SQL backend.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Backend bundles the handle factory and schema manager of one database.
type Backend struct {
	Dialect Dialect
	Handles output.HandleFactory
	Schema  *SchemaManager
	close   func() error
}

// Close releases every pooled connection.
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// ParseURL splits a storage URL into its dialect and the DSN the driver
// expects. sqlite:// URLs carry a file path.
func ParseURL(rawURL string) (Dialect, string, error) {
	switch {
	case strings.HasPrefix(rawURL, "sqlite://"):
		path := strings.TrimPrefix(rawURL, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("storage url %q: empty sqlite path", rawURL)
		}
		return DialectSQLite, path, nil
	case strings.HasPrefix(rawURL, "postgres://"), strings.HasPrefix(rawURL, "postgresql://"):
		return DialectPostgres, rawURL, nil
	default:
		return "", "", fmt.Errorf("storage url %q: unsupported scheme", rawURL)
	}
}

// Open connects to the database named by rawURL.
func Open(ctx context.Context, rawURL string) (*Backend, error) {
	dialect, dsn, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}

	switch dialect {
	case DialectSQLite:
		store, err := sqlite.Open(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Dialect: dialect,
			Handles: store,
			Schema:  NewSchemaManager(dialect, dsn),
			close:   store.Close,
		}, nil
	default:
		pool, err := postgres.NewPool(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		store := postgres.NewStore(pool)
		return &Backend{
			Dialect: dialect,
			Handles: store,
			Schema:  NewSchemaManager(dialect, dsn),
			close:   store.Close,
		}, nil
	}
}
