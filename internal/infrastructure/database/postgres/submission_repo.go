package postgres

import (
	"context"
	"time"

	"bootcamp/internal/domain"
	"bootcamp/internal/domain/entities"
	"bootcamp/internal/infrastructure/metrics"
	"bootcamp/internal/ports/output"
)

var _ output.SubmissionRepository = (*SubmissionRepository)(nil)

// SubmissionRepository implements output.SubmissionRepository using pgx.
type SubmissionRepository struct {
	db DBTX
}

// NewSubmissionRepository creates a SubmissionRepository.
func NewSubmissionRepository(db DBTX) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, submission *entities.Submission) error {
	defer metrics.RecordDBOperation("insert", "submissions", time.Now())

	err := r.db.QueryRow(ctx, `
		INSERT INTO submissions (
			event_id, project_name, description, thumbnail, git_url,
			live_demo_url, video_demo_url, submit_by, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		submission.EventID,
		submission.ProjectName,
		submission.Description,
		textOrNull(submission.Thumbnail),
		submission.GitURL,
		textOrNull(submission.LiveDemoURL),
		submission.VideoDemoURL,
		submission.SubmitBy,
		int16(submission.Status),
	).Scan(&submission.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Wrap(domain.ErrDuplicateKey, err)
		}
		return translate("create submission", err, nil)
	}
	return nil
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id int64) (*entities.Submission, error) {
	defer metrics.RecordDBOperation("select", "submissions", time.Now())

	s, err := scanSubmission(r.db.QueryRow(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE id = $1`, id))
	if err != nil {
		return nil, translate("get submission by id", err, domain.ErrSubmissionNotFound)
	}
	return s, nil
}

func (r *SubmissionRepository) FindByUserAndEvent(ctx context.Context, address string, eventID int64) (*entities.Submission, error) {
	defer metrics.RecordDBOperation("select", "submissions", time.Now())

	s, err := scanSubmission(r.db.QueryRow(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE submit_by = $1 AND event_id = $2`,
		address, eventID))
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
		`SELECT `+submissionColumns+` FROM submissions WHERE event_id = $1 ORDER BY id`, eventID)
}

func (r *SubmissionRepository) list(ctx context.Context, op, query string, args ...any) ([]entities.Submission, error) {
	rows, err := r.db.Query(ctx, query, args...)
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

func (r *SubmissionRepository) Update(ctx context.Context, submission *entities.Submission) error {
	defer metrics.RecordDBOperation("update", "submissions", time.Now())

	_, err := r.db.Exec(ctx, `
		UPDATE submissions
		SET project_name = $1, description = $2, thumbnail = $3, git_url = $4,
			live_demo_url = $5, video_demo_url = $6
		WHERE id = $7`,
		submission.ProjectName,
		submission.Description,
		textOrNull(submission.Thumbnail),
		submission.GitURL,
		textOrNull(submission.LiveDemoURL),
		submission.VideoDemoURL,
		submission.ID,
	)
	return translate("update submission", err, nil)
}

func (r *SubmissionRepository) UpdateStatus(ctx context.Context, id int64, status entities.SubmissionStatus) (bool, error) {
	defer metrics.RecordDBOperation("update", "submissions", time.Now())

	tag, err := r.db.Exec(ctx,
		`UPDATE submissions SET status = $1 WHERE id = $2 AND status <> $1`,
		int16(status), id,
	)
	if err != nil {
		return false, translate("update submission status", err, nil)
	}
	changed := tag.RowsAffected() > 0
	if changed {
		metrics.LifecycleTransitions.WithLabelValues("submission", status.String()).Inc()
	}
	return changed, nil
}
