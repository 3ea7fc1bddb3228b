package input

import (
	"context"

	"bootcamp/internal/domain/entities"
)

type SubmissionUseCase interface {
	Draft(ctx context.Context, submission *entities.Submission) (*entities.Submission, error)
	UpdateSubmission(ctx context.Context, submission *entities.Submission) (*entities.Submission, error)
	Submit(ctx context.Context, id int64) (*entities.Submission, error)
	GetSubmission(ctx context.Context, id int64) (*entities.Submission, error)
	GetUserEventSubmission(ctx context.Context, address string, eventID int64) (*entities.Submission, error)
	ListSubmissions(ctx context.Context) ([]entities.Submission, error)
	ListEventSubmissions(ctx context.Context, eventID int64) ([]entities.Submission, error)
}
