package application

import (
	"context"
	"log"
	"strings"

	"bootcamp/internal/domain"
	"bootcamp/internal/domain/entities"
	"bootcamp/internal/ports/input"
	"bootcamp/internal/ports/output"
)

var _ input.EventUseCase = (*EventService)(nil)

type EventService struct {
	handles  output.HandleFactory
	notifier output.Notifier
}

// NewEventService builds an EventService. notifier may be nil.
func NewEventService(handles output.HandleFactory, notifier output.Notifier) *EventService {
	return &EventService{
		handles:  handles,
		notifier: notifier,
	}
}

// AddEvent stores a new Open event and returns it with its generated ID.
func (s *EventService) AddEvent(ctx context.Context, event *entities.Event) (*entities.Event, error) {
	if err := validateEvent(event); err != nil {
		return nil, err
	}
	h, err := s.handles.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer h.Release()

	created := *event
	created.ID = 0
	created.Status = entities.EventOpen
	if err := h.Events().Create(ctx, &created); err != nil {
		return nil, err
	}
	return h.Events().FindByID(ctx, created.ID)
}

// UpdateEvent replaces the mutable fields whatever the event status.
func (s *EventService) UpdateEvent(ctx context.Context, event *entities.Event) (*entities.Event, error) {
	h, err := s.handles.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer h.Release()

	if _, err := h.Events().FindByID(ctx, event.ID); err != nil {
		return nil, err
	}
	if err := validateEvent(event); err != nil {
		return nil, err
	}
	if err := h.Events().Update(ctx, event); err != nil {
		return nil, err
	}
	return h.Events().FindByID(ctx, event.ID)
}

func validateEvent(event *entities.Event) error {
	if strings.TrimSpace(event.Title) == "" {
		return domain.Invalid("title is required")
	}
	return nil
}

// CloseEvent marks the event Closed. Closing a closed event succeeds and
// changes nothing.
func (s *EventService) CloseEvent(ctx context.Context, id int64) (*entities.Event, error) {
	event, changed, err := s.closeEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if changed && s.notifier != nil {
		if err := s.notifier.EventClosed(ctx, event); err != nil {
			log.Printf("⚠️ announce closed event %d: %v", event.ID, err)
		}
	}
	return event, nil
}

func (s *EventService) closeEvent(ctx context.Context, id int64) (*entities.Event, bool, error) {
	h, err := s.handles.Acquire(ctx)
	if err != nil {
		return nil, false, err
	}
	defer h.Release()

	changed, err := h.Events().UpdateStatus(ctx, id, entities.EventClosed)
	if err != nil {
		return nil, false, err
	}
	event, err := h.Events().FindByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return event, changed, nil
}

func (s *EventService) GetEvent(ctx context.Context, id int64) (*entities.Event, error) {
	h, err := s.handles.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer h.Release()
	return h.Events().FindByID(ctx, id)
}

func (s *EventService) ListEvents(ctx context.Context) ([]entities.Event, error) {
	h, err := s.handles.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer h.Release()
	return h.Events().FindAll(ctx)
}

// ListLiveEvents returns the events still accepting submissions.
func (s *EventService) ListLiveEvents(ctx context.Context) ([]entities.Event, error) {
	h, err := s.handles.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer h.Release()
	return h.Events().FindByStatus(ctx, entities.EventOpen)
}
