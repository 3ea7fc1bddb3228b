package postgres

import (
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"bootcamp/internal/domain/entities"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time.UTC()
}

// textOrNull stores "" as NULL.
func textOrNull(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

const participantColumns = `near_address, email, first_name, last_name, is_student,
	country, git_handler, linkedin_handler, twitter_handler`

func scanParticipant(row pgx.Row) (*entities.Participant, error) {
	var (
		p                                        entities.Participant
		firstName, lastName, country             pgtype.Text
		gitHandler, linkedinHandler, twitterHndl pgtype.Text
	)
	err := row.Scan(&p.NearAddress, &p.Email, &firstName, &lastName, &p.IsStudent,
		&country, &gitHandler, &linkedinHandler, &twitterHndl)
	if err != nil {
		return nil, err
	}
	p.FirstName = firstName.String
	p.LastName = lastName.String
	p.Country = country.String
	p.GitHandler = gitHandler.String
	p.LinkedinHandler = linkedinHandler.String
	p.TwitterHandler = twitterHndl.String
	return &p, nil
}

const eventColumns = `id, type, title, start_date, end_date, logo, status`

func scanEvent(row pgx.Row) (*entities.Event, error) {
	var (
		e       entities.Event
		endDate pgtype.Text
		status  int16
	)
	if err := row.Scan(&e.ID, &e.Type, &e.Title, &e.StartDate, &endDate, &e.Logo, &status); err != nil {
		return nil, err
	}
	e.EndDate = endDate.String
	e.Status = entities.EventStatus(status)
	return &e, nil
}

const submissionColumns = `id, event_id, project_name, description, thumbnail, git_url,
	live_demo_url, video_demo_url, submit_by, status, created_at`

func scanSubmission(row pgx.Row) (*entities.Submission, error) {
	var (
		s                      entities.Submission
		thumbnail, liveDemoURL pgtype.Text
		status                 int16
		createdAt              pgtype.Timestamptz
	)
	err := row.Scan(&s.ID, &s.EventID, &s.ProjectName, &s.Description, &thumbnail, &s.GitURL,
		&liveDemoURL, &s.VideoDemoURL, &s.SubmitBy, &status, &createdAt)
	if err != nil {
		return nil, err
	}
	s.Thumbnail = thumbnail.String
	s.LiveDemoURL = liveDemoURL.String
	s.Status = entities.SubmissionStatus(status)
	s.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return &s, nil
}
