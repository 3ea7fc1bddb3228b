// Package sqlite keeps participants, events and submissions in a single
// SQLite file through modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"bootcamp/internal/domain"
	"bootcamp/internal/ports/output"
)

// DSNPragmas are appended to the file path of every connection.
const DSNPragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"

// DBTX is the subset of *sql.DB and *sql.Conn the repositories need.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var _ output.HandleFactory = (*Store)(nil)

// Store hands out one pooled connection per Handle.
type Store struct {
	db *sql.DB
}

// Open opens (and creates when missing) the database file at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite: empty database path")
	}
	db, err := sql.Open("sqlite", path+"?"+DSNPragmas)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	log.Printf("✅ SQLite database opened (%s).", path)
	return &Store{db: db}, nil
}

// DB exposes the pool, mostly for tests.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Acquire(ctx context.Context) (output.Handle, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, domain.Storage("acquire connection", err)
	}
	return &handle{conn: conn}, nil
}

type handle struct {
	conn *sql.Conn
	once sync.Once
}

func (h *handle) Participants() output.ParticipantRepository {
	return NewParticipantRepository(h.conn)
}

func (h *handle) Events() output.EventRepository {
	return NewEventRepository(h.conn)
}

func (h *handle) Submissions() output.SubmissionRepository {
	return NewSubmissionRepository(h.conn)
}

// Release returns the connection to the pool. Later calls do nothing.
func (h *handle) Release() {
	h.once.Do(func() {
		if err := h.conn.Close(); err != nil {
			log.Printf("⚠️ release sqlite connection: %v", err)
		}
	})
}
