package httpapi

import (
	"time"

	"bootcamp/internal/domain/entities"
)

// Result is appended to every response body.
type Result struct {
	Success bool   `json:"success"`
	ErrMsg  string `json:"err_msg"`
}

type ParticipantBody struct {
	NearAddress     string `json:"near_address"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	IsStudent       bool   `json:"is_student"`
	Country         string `json:"country"`
	GitHandler      string `json:"git_handler"`
	LinkedinHandler string `json:"linkedin_handler"`
	TwitterHandler  string `json:"twitter_handler"`
}

type ParticipantResponse struct {
	ParticipantBody
	Result
}

type EventBody struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Logo      string `json:"logo"`
	Status    int    `json:"status"`
}

type EventResponse struct {
	EventBody
	Result
}

type EventListResponse struct {
	Items []EventBody `json:"items"`
	Result
}

type SubmissionBody struct {
	ID           int64  `json:"id"`
	EventID      int64  `json:"event_id"`
	ProjectName  string `json:"project_name"`
	Description  string `json:"description"`
	Thumbnail    string `json:"thumbnail"`
	GitURL       string `json:"git_url"`
	LiveDemoURL  string `json:"live_demo_url"`
	VideoDemoURL string `json:"video_demo_url"`
	SubmitBy     string `json:"submit_by"`
	Status       int    `json:"status"`
	// CreatedAt is RFC 3339 in UTC, empty when unknown.
	CreatedAt string `json:"created_at"`
}

type SubmissionResponse struct {
	SubmissionBody
	Result
}

type SubmissionListResponse struct {
	Items []SubmissionBody `json:"items"`
	Result
}

// RegisterRequest is the body of POST /participants.
type RegisterRequest struct {
	NearAddress string `json:"near_address"`
	Email       string `json:"email"`
}

// ProfileRequest is the body of PUT /participants/:address.
type ProfileRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	IsStudent       bool   `json:"is_student"`
	Country         string `json:"country"`
	GitHandler      string `json:"git_handler"`
	LinkedinHandler string `json:"linkedin_handler"`
	TwitterHandler  string `json:"twitter_handler"`
}

// EventRequest is the body of POST /events and PUT /events/:id.
type EventRequest struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Logo      string `json:"logo"`
}

// SubmissionRequest is the body of POST /submissions and
// PUT /submissions/:id. event_id and submit_by are ignored on update.
type SubmissionRequest struct {
	EventID      int64  `json:"event_id"`
	ProjectName  string `json:"project_name"`
	Description  string `json:"description"`
	Thumbnail    string `json:"thumbnail"`
	GitURL       string `json:"git_url"`
	LiveDemoURL  string `json:"live_demo_url"`
	VideoDemoURL string `json:"video_demo_url"`
	SubmitBy     string `json:"submit_by"`
}

func participantBody(p *entities.Participant) ParticipantBody {
	if p == nil {
		return ParticipantBody{}
	}
	return ParticipantBody{
		NearAddress:     p.NearAddress,
		Email:           p.Email,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		IsStudent:       p.IsStudent,
		Country:         p.Country,
		GitHandler:      p.GitHandler,
		LinkedinHandler: p.LinkedinHandler,
		TwitterHandler:  p.TwitterHandler,
	}
}

func eventBody(e *entities.Event) EventBody {
	if e == nil {
		return EventBody{}
	}
	return EventBody{
		ID:        e.ID,
		Type:      e.Type,
		Title:     e.Title,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		Logo:      e.Logo,
		Status:    int(e.Status),
	}
}

func eventBodies(events []entities.Event) []EventBody {
	out := make([]EventBody, len(events))
	for i := range events {
		out[i] = eventBody(&events[i])
	}
	return out
}

func submissionBody(s *entities.Submission) SubmissionBody {
	if s == nil {
		return SubmissionBody{}
	}
	body := SubmissionBody{
		ID:           s.ID,
		EventID:      s.EventID,
		ProjectName:  s.ProjectName,
		Description:  s.Description,
		Thumbnail:    s.Thumbnail,
		GitURL:       s.GitURL,
		LiveDemoURL:  s.LiveDemoURL,
		VideoDemoURL: s.VideoDemoURL,
		SubmitBy:     s.SubmitBy,
		Status:       int(s.Status),
	}
	if !s.CreatedAt.IsZero() {
		body.CreatedAt = s.CreatedAt.UTC().Format(time.RFC3339)
	}
	return body
}

func submissionBodies(submissions []entities.Submission) []SubmissionBody {
	out := make([]SubmissionBody, len(submissions))
	for i := range submissions {
		out[i] = submissionBody(&submissions[i])
	}
	return out
}
