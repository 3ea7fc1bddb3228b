package output

import (
	"context"

	"bootcamp/internal/domain/entities"
)

// Notifier announces lifecycle transitions. It is only called for real
// transitions, never for idempotent repeats.
type Notifier interface {
	SubmissionSubmitted(ctx context.Context, submission *entities.Submission) error
	EventClosed(ctx context.Context, event *entities.Event) error
}
