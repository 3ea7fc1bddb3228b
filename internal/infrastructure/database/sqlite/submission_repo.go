package sqlite

import (
	"context"
	"time"

	"bootcamp/internal/domain"
	"bootcamp/internal/domain/entities"
	"bootcamp/internal/infrastructure/metrics"
	"bootcamp/internal/ports/output"
)

var _ output.SubmissionRepository = (*SubmissionRepository)(nil)

type SubmissionRepository struct {
	db DBTX
}

func NewSubmissionRepository(db DBTX) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create inserts the submission and sets its ID. created_at is filled in by
// the database; read the row back to get it.
func (r *SubmissionRepository) Create(ctx context.Context, submission *entities.Submission) error {
	defer metrics.RecordDBOperation("insert", "submissions", time.Now())

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO submissions (
			event_id, project_name, description, thumbnail, git_url,
			live_demo_url, video_demo_url, submit_by, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		submission.EventID,
		submission.ProjectName,
		submission.Description,
		nullString(submission.Thumbnail),
		submission.GitURL,
		nullString(submission.LiveDemoURL),
		submission.VideoDemoURL,
		submission.SubmitBy,
		int64(submission.Status),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Wrap(domain.ErrDuplicateKey, err)
		}
		return translate("create submission", err, nil)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return translate("create submission", err, nil)
	}
	submission.ID = id
	return nil
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id int64) (*entities.Submission, error) {
	defer metrics.RecordDBOperation("select", "submissions", time.Now())

	row := r.db.QueryRowContext(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE id = ?`, id)
	s, err := scanSubmission(row)
	if err != nil {
		return nil, translate("get submission by id", err, domain.ErrSubmissionNotFound)
	}
	return s, nil
}

func (r *SubmissionRepository) FindByUserAndEvent(ctx context.Context, address string, eventID int64) (*entities.Submission, error) {
	defer metrics.RecordDBOperation("select", "submissions", time.Now())

	row := r.db.QueryRowContext(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE submit_by = ? AND event_id = ?`,
		address, eventID)
	s, err := scanSubmission(row)
	if err != nil {
		return nil, translate("get submission by user and event", err, domain.ErrSubmissionNotFound)
	}
	return s, nil
}

func (r *SubmissionRepository) FindAll(ctx context.Context) ([]entities.Submission, error) {
	defer metrics.RecordDBOperation("select", "submissions", time.Now())
	return r.list(ctx, "list submissions", `SELECT `+submissionColumns+` FROM submissions ORDER BY id`)
}

func (r *SubmissionRepository) FindByEventID(ctx context.Context, eventID int64) ([]entities.Submission, error) {
	defer metrics.RecordDBOperation("select", "submissions", time.Now())
	return r.list(ctx, "list submissions by event",
		`SELECT `+submissionColumns+` FROM submissions WHERE event_id = ? ORDER BY id`, eventID)
}

func (r *SubmissionRepository) list(ctx context.Context, op, query string, args ...any) ([]entities.Submission, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translate(op, err, nil)
	}
	defer rows.Close()

	out := []entities.Submission{}
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, translate(op, err, nil)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(op, err, nil)
	}
	return out, nil
}

// Update replaces the content fields. event_id, submit_by and status never
// change here.
func (r *SubmissionRepository) Update(ctx context.Context, submission *entities.Submission) error {
	defer metrics.RecordDBOperation("update", "submissions", time.Now())

	_, err := r.db.ExecContext(ctx, `
		UPDATE submissions
		SET project_name = ?, description = ?, thumbnail = ?, git_url = ?,
			live_demo_url = ?, video_demo_url = ?
		WHERE id = ?`,
		submission.ProjectName,
		submission.Description,
		nullString(submission.Thumbnail),
		submission.GitURL,
		nullString(submission.LiveDemoURL),
		submission.VideoDemoURL,
		submission.ID,
	)
	return translate("update submission", err, nil)
}

func (r *SubmissionRepository) UpdateStatus(ctx context.Context, id int64, status entities.SubmissionStatus) (bool, error) {
	defer metrics.RecordDBOperation("update", "submissions", time.Now())

	res, err := r.db.ExecContext(ctx,
		`UPDATE submissions SET status = ? WHERE id = ? AND status <> ?`,
		int64(status), id, int64(status),
	)
	if err != nil {
		return false, translate("update submission status", err, nil)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, translate("update submission status", err, nil)
	}
	if n > 0 {
		metrics.LifecycleTransitions.WithLabelValues("submission", status.String()).Inc()
	}
	return n > 0, nil
}
