package input

import (
	"context"

	"bootcamp/internal/domain/entities"
)

type EventUseCase interface {
	AddEvent(ctx context.Context, event *entities.Event) (*entities.Event, error)
	UpdateEvent(ctx context.Context, event *entities.Event) (*entities.Event, error)
	CloseEvent(ctx context.Context, id int64) (*entities.Event, error)
	GetEvent(ctx context.Context, id int64) (*entities.Event, error)
	ListEvents(ctx context.Context) ([]entities.Event, error)
	ListLiveEvents(ctx context.Context) ([]entities.Event, error)
}
