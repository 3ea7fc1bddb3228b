package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"bootcamp/internal/domain/entities"
)

type scanner interface {
	Scan(dest ...any) error
}

// nullString stores "" as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

const participantColumns = `near_address, email, first_name, last_name, is_student,
	country, git_handler, linkedin_handler, twitter_handler`

func scanParticipant(sc scanner) (*entities.Participant, error) {
	var (
		p                                       entities.Participant
		firstName, lastName, country            sql.NullString
		gitHandler, linkedinHandler, twitterHdl sql.NullString
		isStudent                               int64
	)
	err := sc.Scan(&p.NearAddress, &p.Email, &firstName, &lastName, &isStudent,
		&country, &gitHandler, &linkedinHandler, &twitterHdl)
	if err != nil {
		return nil, err
	}
	p.FirstName = firstName.String
	p.LastName = lastName.String
	p.IsStudent = isStudent != 0
	p.Country = country.String
	p.GitHandler = gitHandler.String
	p.LinkedinHandler = linkedinHandler.String
	p.TwitterHandler = twitterHdl.String
	return &p, nil
}

const eventColumns = `id, type, title, start_date, end_date, logo, status`

func scanEvent(sc scanner) (*entities.Event, error) {
	var (
		e       entities.Event
		endDate sql.NullString
		status  int64
	)
	if err := sc.Scan(&e.ID, &e.Type, &e.Title, &e.StartDate, &endDate, &e.Logo, &status); err != nil {
		return nil, err
	}
	e.EndDate = endDate.String
	e.Status = entities.EventStatus(status)
	return &e, nil
}

// created_at is stored by CURRENT_TIMESTAMP in UTC and read back as RFC 3339.
const submissionColumns = `id, event_id, project_name, description, thumbnail, git_url,
	live_demo_url, video_demo_url, submit_by, status,
	strftime('%Y-%m-%dT%H:%M:%SZ', created_at)`

func scanSubmission(sc scanner) (*entities.Submission, error) {
	var (
		s                      entities.Submission
		thumbnail, liveDemoURL sql.NullString
		status                 int64
		createdAt              string
	)
	err := sc.Scan(&s.ID, &s.EventID, &s.ProjectName, &s.Description, &thumbnail, &s.GitURL,
		&liveDemoURL, &s.VideoDemoURL, &s.SubmitBy, &status, &createdAt)
	if err != nil {
		return nil, err
	}
	s.Thumbnail = thumbnail.String
	s.LiveDemoURL = liveDemoURL.String
	s.Status = entities.SubmissionStatus(status)
	s.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	return &s, nil
}
