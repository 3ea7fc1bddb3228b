package output

import (
	"context"

	"bootcamp/internal/domain/entities"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission *entities.Submission) error
	FindByID(ctx context.Context, id int64) (*entities.Submission, error)
	FindByUserAndEvent(ctx context.Context, address string, eventID int64) (*entities.Submission, error)
	FindAll(ctx context.Context) ([]entities.Submission, error)
	FindByEventID(ctx context.Context, eventID int64) ([]entities.Submission, error)
	// Update replaces the content fields whatever the status.
	Update(ctx context.Context, submission *entities.Submission) error
	// UpdateStatus reports whether the stored status actually changed.
	UpdateStatus(ctx context.Context, id int64, status entities.SubmissionStatus) (bool, error)
}
