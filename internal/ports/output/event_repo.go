package output

import (
	"context"

	"bootcamp/internal/domain/entities"
)

type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id int64) (*entities.Event, error)
	FindAll(ctx context.Context) ([]entities.Event, error)
	FindByStatus(ctx context.Context, status entities.EventStatus) ([]entities.Event, error)
	Update(ctx context.Context, event *entities.Event) error
	// UpdateStatus reports whether the stored status actually changed.
	UpdateStatus(ctx context.Context, id int64, status entities.EventStatus) (bool, error)
}
