package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"bootcamp/internal/application"
	"bootcamp/internal/domain"
	"bootcamp/internal/domain/entities"
	"bootcamp/internal/infrastructure/database"
	"bootcamp/internal/ports/output"
)

func openTempStore(t *testing.T) *database.Backend {
	t.Helper()
	ctx := context.Background()
	backend, err := database.Open(ctx, "sqlite://"+filepath.Join(t.TempDir(), "bootcamp.sqlite"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = backend.Close() })
	if err := backend.Schema.Initialize(ctx); err != nil {
		t.Fatalf("initialize schema: %v", err)
	}
	return backend
}

func acquire(t *testing.T, backend *database.Backend) output.Handle {
	t.Helper()
	h, err := backend.Handles.Acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	t.Cleanup(h.Release)
	return h
}

func seed(t *testing.T, h output.Handle) (string, int64) {
	t.Helper()
	ctx := context.Background()
	if err := h.Participants().Create(ctx, &entities.Participant{NearAddress: "alice.near", Email: "alice@example.com"}); err != nil {
		t.Fatalf("create participant: %v", err)
	}
	event := &entities.Event{Type: "hackathon", Title: "NEAR Hack", StartDate: "2024-03-01", Logo: "logo.png", Status: entities.EventOpen}
	if err := h.Events().Create(ctx, event); err != nil {
		t.Fatalf("create event: %v", err)
	}
	return "alice.near", event.ID
}

func TestParticipantRoundTrip(t *testing.T) {
	t.Parallel()
	h := acquire(t, openTempStore(t))
	ctx := context.Background()
	repo := h.Participants()

	if err := repo.Create(ctx, &entities.Participant{NearAddress: "alice.near", Email: "alice@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.FindByAddress(ctx, "alice.near")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	want := entities.Participant{NearAddress: "alice.near", Email: "alice@example.com"}
	if *got != want {
		t.Fatalf("fresh participant = %+v, want %+v", *got, want)
	}

	profile := entities.Participant{
		NearAddress:     "alice.near",
		Email:           "ignored@example.com",
		FirstName:       "Alice",
		LastName:        "Liddell",
		IsStudent:       true,
		Country:         "FR",
		GitHandler:      "alice",
		LinkedinHandler: "alice-l",
	}
	if err := repo.Update(ctx, &profile); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = repo.FindByAddress(ctx, "alice.near")
	if err != nil {
		t.Fatalf("find after update: %v", err)
	}
	profile.Email = "alice@example.com"
	if *got != profile {
		t.Fatalf("updated participant = %+v, want %+v", *got, profile)
	}
}

func TestParticipantDuplicates(t *testing.T) {
	t.Parallel()
	h := acquire(t, openTempStore(t))
	ctx := context.Background()
	repo := h.Participants()

	if err := repo.Create(ctx, &entities.Participant{NearAddress: "alice.near", Email: "alice@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	tests := []struct {
		name string
		p    entities.Participant
	}{
		{"same address", entities.Participant{NearAddress: "alice.near", Email: "other@example.com"}},
		{"same email", entities.Participant{NearAddress: "bob.near", Email: "alice@example.com"}},
	}
	for _, tt := range tests {
		err := repo.Create(ctx, &tt.p)
		if !errors.Is(err, domain.ErrParticipantExists) {
			t.Errorf("%s: err = %v, want ErrParticipantExists", tt.name, err)
		}
	}
}

func TestFindMissingRowsReturnNotFound(t *testing.T) {
	t.Parallel()
	h := acquire(t, openTempStore(t))
	ctx := context.Background()

	if _, err := h.Participants().FindByAddress(ctx, "ghost.near"); !errors.Is(err, domain.ErrParticipantNotFound) {
		t.Errorf("participant err = %v", err)
	}
	if _, err := h.Events().FindByID(ctx, 42); !errors.Is(err, domain.ErrEventNotFound) {
		t.Errorf("event err = %v", err)
	}
	if _, err := h.Submissions().FindByID(ctx, 42); !errors.Is(err, domain.ErrSubmissionNotFound) {
		t.Errorf("submission err = %v", err)
	}
	if _, err := h.Submissions().FindByUserAndEvent(ctx, "ghost.near", 42); !errors.Is(err, domain.ErrSubmissionNotFound) {
		t.Errorf("submission by user err = %v", err)
	}
}

func TestEventLifecycle(t *testing.T) {
	t.Parallel()
	h := acquire(t, openTempStore(t))
	ctx := context.Background()
	repo := h.Events()

	first := &entities.Event{Type: "hackathon", Title: "First", StartDate: "2024-01-01", Logo: "a.png", Status: entities.EventOpen}
	second := &entities.Event{Type: "bootcamp", Title: "Second", StartDate: "2024-02-01", EndDate: "2024-02-10", Logo: "b.png", Status: entities.EventOpen}
	for _, e := range []*entities.Event{first, second} {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("create %s: %v", e.Title, err)
		}
	}
	if first.ID == 0 || second.ID <= first.ID {
		t.Fatalf("ids = %d, %d", first.ID, second.ID)
	}

	changed, err := repo.UpdateStatus(ctx, first.ID, entities.EventClosed)
	if err != nil || !changed {
		t.Fatalf("close: changed=%v err=%v", changed, err)
	}
	changed, err = repo.UpdateStatus(ctx, first.ID, entities.EventClosed)
	if err != nil || changed {
		t.Fatalf("close again: changed=%v err=%v", changed, err)
	}

	first.Title = "First (renamed)"
	first.Status = entities.EventOpen
	if err := repo.Update(ctx, first); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := repo.FindByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Title != "First (renamed)" || got.Status != entities.EventClosed || got.EndDate != "" {
		t.Fatalf("event = %+v", got)
	}

	all, err := repo.FindAll(ctx)
	if err != nil || len(all) != 2 || all[0].ID != first.ID || all[1].ID != second.ID {
		t.Fatalf("all = %+v, err = %v", all, err)
	}
	open, err := repo.FindByStatus(ctx, entities.EventOpen)
	if err != nil || len(open) != 1 || open[0].ID != second.ID || open[0].EndDate != "2024-02-10" {
		t.Fatalf("open = %+v, err = %v", open, err)
	}
}

func TestSubmissionRoundTrip(t *testing.T) {
	t.Parallel()
	h := acquire(t, openTempStore(t))
	ctx := context.Background()
	user, eventID := seed(t, h)
	repo := h.Submissions()

	before := time.Now().Add(-time.Minute)
	draft := &entities.Submission{
		EventID:      eventID,
		ProjectName:  "Proj",
		Description:  "desc",
		GitURL:       "https://git.example/proj",
		VideoDemoURL: "https://video.example/proj",
		SubmitBy:     user,
		Status:       entities.SubmissionDraft,
	}
	if err := repo.Create(ctx, draft); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.FindByID(ctx, draft.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Status != entities.SubmissionDraft || got.Thumbnail != "" || got.LiveDemoURL != "" || got.SubmitBy != user {
		t.Fatalf("submission = %+v", got)
	}
	if got.CreatedAt.Before(before) || got.CreatedAt.After(time.Now().Add(time.Minute)) {
		t.Fatalf("created_at = %v", got.CreatedAt)
	}

	got.Thumbnail = "thumb.png"
	got.ProjectName = "Proj v2"
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	byUser, err := repo.FindByUserAndEvent(ctx, user, eventID)
	if err != nil || byUser.ID != draft.ID || byUser.ProjectName != "Proj v2" || byUser.Thumbnail != "thumb.png" {
		t.Fatalf("by user = %+v, err = %v", byUser, err)
	}

	changed, err := repo.UpdateStatus(ctx, draft.ID, entities.SubmissionSubmitted)
	if err != nil || !changed {
		t.Fatalf("submit: changed=%v err=%v", changed, err)
	}
	changed, err = repo.UpdateStatus(ctx, draft.ID, entities.SubmissionSubmitted)
	if err != nil || changed {
		t.Fatalf("submit again: changed=%v err=%v", changed, err)
	}

	list, err := repo.FindByEventID(ctx, eventID)
	if err != nil || len(list) != 1 || list[0].Status != entities.SubmissionSubmitted {
		t.Fatalf("by event = %+v, err = %v", list, err)
	}
	none, err := repo.FindByEventID(ctx, eventID+1)
	if err != nil || len(none) != 0 {
		t.Fatalf("other event = %+v, err = %v", none, err)
	}
}

func TestSubmissionUniquePerUserAndEvent(t *testing.T) {
	t.Parallel()
	h := acquire(t, openTempStore(t))
	ctx := context.Background()
	user, eventID := seed(t, h)

	for i, want := range []error{nil, domain.ErrDuplicateKey} {
		err := h.Submissions().Create(ctx, &entities.Submission{
			EventID: eventID, ProjectName: "P", SubmitBy: user, Status: entities.SubmissionDraft,
		})
		if want == nil && err != nil || want != nil && !errors.Is(err, want) {
			t.Fatalf("create #%d: err = %v, want %v", i, err, want)
		}
	}
}

func TestSubmissionForeignKeys(t *testing.T) {
	t.Parallel()
	h := acquire(t, openTempStore(t))
	user, eventID := seed(t, h)

	err := h.Submissions().Create(context.Background(), &entities.Submission{
		EventID: eventID + 100, ProjectName: "P", SubmitBy: user, Status: entities.SubmissionDraft,
	})
	if domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	t.Parallel()
	backend := openTempStore(t)
	h, err := backend.Handles.Acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	h.Release()
	h.Release()
}

func TestConcurrentDraftsKeepOneSubmission(t *testing.T) {
	t.Parallel()
	backend := openTempStore(t)
	ctx := context.Background()

	participants := application.NewParticipantService(backend.Handles)
	if _, err := participants.Register(ctx, "alice.near", "alice@example.com"); err != nil {
		t.Fatalf("register: %v", err)
	}
	event, err := application.NewEventService(backend.Handles, nil).AddEvent(ctx, &entities.Event{
		Type: "hackathon", Title: "Race", StartDate: "2024-01-01", Logo: "logo.png",
	})
	if err != nil {
		t.Fatalf("add event: %v", err)
	}
	submissions := application.NewSubmissionService(backend.Handles, nil, application.SubmissionOptions{})

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := submissions.Draft(ctx, &entities.Submission{
				EventID: event.ID, ProjectName: "Proj", SubmitBy: "alice.near",
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrAlreadySubmitted):
				conflicts++
			default:
				t.Errorf("draft: %v", err)
			}
		}()
	}
	wg.Wait()

	if succeeded != 1 || conflicts != workers-1 {
		t.Fatalf("succeeded = %d, conflicts = %d", succeeded, conflicts)
	}
	list, err := submissions.ListEventSubmissions(ctx, event.ID)
	if err != nil || len(list) != 1 {
		t.Fatalf("stored = %+v, err = %v", list, err)
	}
}
