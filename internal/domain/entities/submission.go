package entities

import "time"

// SubmissionStatus is the lifecycle state of a Submission. Draft -> Submitted
// is one way and final.
type SubmissionStatus int

const (
	SubmissionDraft     SubmissionStatus = 1
	SubmissionSubmitted SubmissionStatus = 2
)

func (s SubmissionStatus) String() string {
	switch s {
	case SubmissionDraft:
		return "draft"
	case SubmissionSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

func (s *Submission) IsDraft() bool {
	return s.Status == SubmissionDraft
}

// Submission is a participant's project entry for one event.
type Submission struct {
	ID           int64
	EventID      int64
	ProjectName  string
	Description  string
	Thumbnail    string
	GitURL       string
	LiveDemoURL  string
	VideoDemoURL string
	SubmitBy     string
	Status       SubmissionStatus
	CreatedAt    time.Time
}
