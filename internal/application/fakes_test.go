package application

import (
	"context"
	"sort"
	"sync"
	"time"

	"bootcamp/internal/domain"
	"bootcamp/internal/domain/entities"
	"bootcamp/internal/ports/output"
)

// memStore is an in-memory HandleFactory. failOn injects an error for the
// named repository call, e.g. "submissions.create".
type memStore struct {
	mu           sync.Mutex
	participants map[string]entities.Participant
	events       map[int64]entities.Event
	submissions  map[int64]entities.Submission
	nextEventID  int64
	nextSubID    int64
	acquireErr   error
	failOn       map[string]error
	acquired     int
	released     int
}

func newMemStore() *memStore {
	return &memStore{
		participants: map[string]entities.Participant{},
		events:       map[int64]entities.Event{},
		submissions:  map[int64]entities.Submission{},
		failOn:       map[string]error{},
	}
}

func (m *memStore) Acquire(context.Context) (output.Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.acquireErr != nil {
		return nil, m.acquireErr
	}
	m.acquired++
	return &memHandle{m: m}, nil
}

func (m *memStore) fail(op string) error {
	return m.failOn[op]
}

type memHandle struct {
	m *memStore
}

func (h *memHandle) Participants() output.ParticipantRepository { return memParticipants{h.m} }
func (h *memHandle) Events() output.EventRepository             { return memEvents{h.m} }
func (h *memHandle) Submissions() output.SubmissionRepository   { return memSubmissions{h.m} }

func (h *memHandle) Release() {
	h.m.mu.Lock()
	h.m.released++
	h.m.mu.Unlock()
}

type memParticipants struct{ m *memStore }

func (r memParticipants) Create(_ context.Context, p *entities.Participant) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.fail("participants.create"); err != nil {
		return err
	}
	if _, ok := r.m.participants[p.NearAddress]; ok {
		return domain.ErrParticipantExists
	}
	for _, existing := range r.m.participants {
		if existing.Email == p.Email {
			return domain.ErrParticipantExists
		}
	}
	r.m.participants[p.NearAddress] = *p
	return nil
}

func (r memParticipants) FindByAddress(_ context.Context, address string) (*entities.Participant, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.fail("participants.find"); err != nil {
		return nil, err
	}
	p, ok := r.m.participants[address]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	return &p, nil
}

func (r memParticipants) Update(_ context.Context, p *entities.Participant) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	existing, ok := r.m.participants[p.NearAddress]
	if !ok {
		return nil
	}
	updated := *p
	updated.Email = existing.Email
	r.m.participants[p.NearAddress] = updated
	return nil
}

type memEvents struct{ m *memStore }

func (r memEvents) Create(_ context.Context, e *entities.Event) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.nextEventID++
	e.ID = r.m.nextEventID
	r.m.events[e.ID] = *e
	return nil
}

func (r memEvents) FindByID(_ context.Context, id int64) (*entities.Event, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.fail("events.find"); err != nil {
		return nil, err
	}
	e, ok := r.m.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return &e, nil
}

func (r memEvents) FindAll(ctx context.Context) ([]entities.Event, error) {
	return r.filter(func(entities.Event) bool { return true }), nil
}

func (r memEvents) FindByStatus(_ context.Context, status entities.EventStatus) ([]entities.Event, error) {
	return r.filter(func(e entities.Event) bool { return e.Status == status }), nil
}

func (r memEvents) filter(keep func(entities.Event) bool) []entities.Event {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := []entities.Event{}
	for _, e := range r.m.events {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r memEvents) Update(_ context.Context, e *entities.Event) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	existing, ok := r.m.events[e.ID]
	if !ok {
		return nil
	}
	updated := *e
	updated.Status = existing.Status
	r.m.events[e.ID] = updated
	return nil
}

func (r memEvents) UpdateStatus(_ context.Context, id int64, status entities.EventStatus) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	e, ok := r.m.events[id]
	if !ok || e.Status == status {
		return false, nil
	}
	e.Status = status
	r.m.events[id] = e
	return true, nil
}

type memSubmissions struct{ m *memStore }

func (r memSubmissions) Create(_ context.Context, s *entities.Submission) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.fail("submissions.create"); err != nil {
		return err
	}
	for _, existing := range r.m.submissions {
		if existing.SubmitBy == s.SubmitBy && existing.EventID == s.EventID {
			return domain.ErrDuplicateKey
		}
	}
	r.m.nextSubID++
	s.ID = r.m.nextSubID
	s.CreatedAt = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	r.m.submissions[s.ID] = *s
	return nil
}

func (r memSubmissions) FindByID(_ context.Context, id int64) (*entities.Submission, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	s, ok := r.m.submissions[id]
	if !ok {
		return nil, domain.ErrSubmissionNotFound
	}
	return &s, nil
}

func (r memSubmissions) FindByUserAndEvent(_ context.Context, address string, eventID int64) (*entities.Submission, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.fail("submissions.find_by_user_event"); err != nil {
		return nil, err
	}
	for _, s := range r.m.submissions {
		if s.SubmitBy == address && s.EventID == eventID {
			return &s, nil
		}
	}
	return nil, domain.ErrSubmissionNotFound
}

func (r memSubmissions) FindAll(context.Context) ([]entities.Submission, error) {
	return r.filter(func(entities.Submission) bool { return true }), nil
}

func (r memSubmissions) FindByEventID(_ context.Context, eventID int64) ([]entities.Submission, error) {
	return r.filter(func(s entities.Submission) bool { return s.EventID == eventID }), nil
}

func (r memSubmissions) filter(keep func(entities.Submission) bool) []entities.Submission {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := []entities.Submission{}
	for _, s := range r.m.submissions {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r memSubmissions) Update(_ context.Context, s *entities.Submission) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	existing, ok := r.m.submissions[s.ID]
	if !ok {
		return nil
	}
	existing.ProjectName = s.ProjectName
	existing.Description = s.Description
	existing.Thumbnail = s.Thumbnail
	existing.GitURL = s.GitURL
	existing.LiveDemoURL = s.LiveDemoURL
	existing.VideoDemoURL = s.VideoDemoURL
	r.m.submissions[s.ID] = existing
	return nil
}

func (r memSubmissions) UpdateStatus(_ context.Context, id int64, status entities.SubmissionStatus) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	s, ok := r.m.submissions[id]
	if !ok || s.Status == status {
		return false, nil
	}
	s.Status = status
	r.m.submissions[id] = s
	return true, nil
}

type recordingNotifier struct {
	mu        sync.Mutex
	submitted []int64
	closed    []int64
	err       error
}

func (n *recordingNotifier) SubmissionSubmitted(_ context.Context, s *entities.Submission) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.submitted = append(n.submitted, s.ID)
	return n.err
}

func (n *recordingNotifier) EventClosed(_ context.Context, e *entities.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = append(n.closed, e.ID)
	return n.err
}

type fakeSchema struct {
	initCalls  int
	resetCalls int
	err        error
}

func (f *fakeSchema) Initialize(context.Context) error {
	f.initCalls++
	return f.err
}

func (f *fakeSchema) Reset(context.Context) error {
	f.resetCalls++
	return f.err
}
