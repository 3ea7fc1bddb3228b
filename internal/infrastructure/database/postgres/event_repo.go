package postgres

import (
	"context"
	"time"

	"bootcamp/internal/domain"
	"bootcamp/internal/domain/entities"
	"bootcamp/internal/infrastructure/metrics"
	"bootcamp/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

// EventRepository implements output.EventRepository using pgx.
type EventRepository struct {
	db DBTX
}

// NewEventRepository creates an EventRepository.
func NewEventRepository(db DBTX) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	defer metrics.RecordDBOperation("insert", "events", time.Now())

	err := r.db.QueryRow(ctx, `
		INSERT INTO events (type, title, start_date, end_date, logo, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		event.Type, event.Title, event.StartDate, textOrNull(event.EndDate), event.Logo, int16(event.Status),
	).Scan(&event.ID)
	return translate("create event", err, nil)
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (*entities.Event, error) {
	defer metrics.RecordDBOperation("select", "events", time.Now())

	e, err := scanEvent(r.db.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if err != nil {
		return nil, translate("get event by id", err, domain.ErrEventNotFound)
	}
	return e, nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]entities.Event, error) {
	defer metrics.RecordDBOperation("select", "events", time.Now())
	return r.list(ctx, "list events", `SELECT `+eventColumns+` FROM events ORDER BY id`)
}

func (r *EventRepository) FindByStatus(ctx context.Context, status entities.EventStatus) ([]entities.Event, error) {
	defer metrics.RecordDBOperation("select", "events", time.Now())
	return r.list(ctx, "list events by status",
		`SELECT `+eventColumns+` FROM events WHERE status = $1 ORDER BY id`, int16(status))
}

func (r *EventRepository) list(ctx context.Context, op, query string, args ...any) ([]entities.Event, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translate(op, err, nil)
	}
	defer rows.Close()

	out := []entities.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, translate(op, err, nil)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(op, err, nil)
	}
	return out, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	defer metrics.RecordDBOperation("update", "events", time.Now())

	_, err := r.db.Exec(ctx, `
		UPDATE events
		SET type = $1, title = $2, start_date = $3, end_date = $4, logo = $5
		WHERE id = $6`,
		event.Type, event.Title, event.StartDate, textOrNull(event.EndDate), event.Logo, event.ID,
	)
	return translate("update event", err, nil)
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id int64, status entities.EventStatus) (bool, error) {
	defer metrics.RecordDBOperation("update", "events", time.Now())

	tag, err := r.db.Exec(ctx,
		`UPDATE events SET status = $1 WHERE id = $2 AND status <> $1`,
		int16(status), id,
	)
	if err != nil {
		return false, translate("update event status", err, nil)
	}
	changed := tag.RowsAffected() > 0
	if changed {
		metrics.LifecycleTransitions.WithLabelValues("event", status.String()).Inc()
	}
	return changed, nil
}
