package output

import "context"

// Handle is one short-lived unit of work against the store. Every public
// operation acquires its own Handle and releases it before returning.
type Handle interface {
	Participants() ParticipantRepository
	Events() EventRepository
	Submissions() SubmissionRepository
	Release()
}

// HandleFactory hands out Handles. Implementations may pool the underlying
// connections.
type HandleFactory interface {
	Acquire(ctx context.Context) (Handle, error)
}

// SchemaManager creates and drops the service tables.
type SchemaManager interface {
	Initialize(ctx context.Context) error
	Reset(ctx context.Context) error
}
