// Package postgres keeps participants, events and submissions in
// PostgreSQL through a pgx connection pool.
package postgres

import (
	"context"
	"log"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bootcamp/internal/domain"
	"bootcamp/internal/ports/output"
)

// DBTX is the subset of *pgxpool.Pool, *pgxpool.Conn and pgx.Tx the
// repositories need.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPool creates a pgx connection pool for PostgreSQL.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	log.Println("✅ PostgreSQL database connected.")
	return pool, nil
}

var _ output.HandleFactory = (*Store)(nil)

// Store hands out one pooled connection per Handle.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func (s *Store) Acquire(ctx context.Context) (output.Handle, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, domain.Storage("acquire connection", err)
	}
	return &handle{conn: conn}, nil
}

type handle struct {
	conn *pgxpool.Conn
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
	h.once.Do(h.conn.Release)
}
