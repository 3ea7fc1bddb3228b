package sqlite

import (
	"context"
	"time"

	"bootcamp/internal/domain"
	"bootcamp/internal/domain/entities"
	"bootcamp/internal/infrastructure/metrics"
	"bootcamp/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	db DBTX
}

func NewEventRepository(db DBTX) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	defer metrics.RecordDBOperation("insert", "events", time.Now())

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO events (type, title, start_date, end_date, logo, status)
		VALUES (?, ?, ?, ?, ?, ?)`,
		event.Type, event.Title, event.StartDate, nullString(event.EndDate), event.Logo, int64(event.Status),
	)
	if err != nil {
		return translate("create event", err, nil)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return translate("create event", err, nil)
	}
	event.ID = id
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (*entities.Event, error) {
	defer metrics.RecordDBOperation("select", "events", time.Now())

	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	e, err := scanEvent(row)
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
		`SELECT `+eventColumns+` FROM events WHERE status = ? ORDER BY id`, int64(status))
}

func (r *EventRepository) list(ctx context.Context, op, query string, args ...any) ([]entities.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
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

// Update leaves status alone; see UpdateStatus.
func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	defer metrics.RecordDBOperation("update", "events", time.Now())

	_, err := r.db.ExecContext(ctx, `
		UPDATE events
		SET type = ?, title = ?, start_date = ?, end_date = ?, logo = ?
		WHERE id = ?`,
		event.Type, event.Title, event.StartDate, nullString(event.EndDate), event.Logo, event.ID,
	)
	return translate("update event", err, nil)
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id int64, status entities.EventStatus) (bool, error) {
	defer metrics.RecordDBOperation("update", "events", time.Now())

	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET status = ? WHERE id = ? AND status <> ?`,
		int64(status), id, int64(status),
	)
	if err != nil {
		return false, translate("update event status", err, nil)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, translate("update event status", err, nil)
	}
	if n > 0 {
		metrics.LifecycleTransitions.WithLabelValues("event", status.String()).Inc()
	}
	return n > 0, nil
}
