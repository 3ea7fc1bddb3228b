package application

import (
	"context"
	"errors"
	"log"
	"strings"

	"bootcamp/internal/domain"
	"bootcamp/internal/domain/entities"
	"bootcamp/internal/ports/input"
	"bootcamp/internal/ports/output"
)

// EditPolicy decides what updating an already submitted submission does.
type EditPolicy string

const (
	// EditPolicySilent skips the write and reports success with the
	// unchanged submission.
	EditPolicySilent EditPolicy = "silent"
	// EditPolicyStrict rejects the edit with domain.ErrSubmissionLocked.
	EditPolicyStrict EditPolicy = "strict"
)

type SubmissionOptions struct {
	EditPolicy EditPolicy
	// BlockClosedEvents rejects drafts into a Closed event.
	BlockClosedEvents bool
}

var _ input.SubmissionUseCase = (*SubmissionService)(nil)

// SubmissionService enforces the rules spanning participants, events and
// submissions: one submission per participant per event, and edits only
// while a submission is a draft.
type SubmissionService struct {
	handles  output.HandleFactory
	notifier output.Notifier
	opts     SubmissionOptions
}

// NewSubmissionService builds a SubmissionService. notifier may be nil.
func NewSubmissionService(handles output.HandleFactory, notifier output.Notifier, opts SubmissionOptions) *SubmissionService {
	if opts.EditPolicy == "" {
		opts.EditPolicy = EditPolicySilent
	}
	return &SubmissionService{
		handles:  handles,
		notifier: notifier,
		opts:     opts,
	}
}

// Draft creates the Draft submission of submission.SubmitBy for
// submission.EventID. Checks run in order and stop at the first failure:
// participant, event, closed event (when blocked), existing submission,
// then the content itself.
func (s *SubmissionService) Draft(ctx context.Context, submission *entities.Submission) (*entities.Submission, error) {
	h, err := s.handles.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer h.Release()

	if _, err := h.Participants().FindByAddress(ctx, submission.SubmitBy); err != nil {
		if errors.Is(err, domain.ErrParticipantNotFound) {
			return nil, domain.Wrap(domain.ErrUnknownParticipant, err)
		}
		return nil, err
	}
	event, err := h.Events().FindByID(ctx, submission.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.Wrap(domain.ErrUnknownEvent, err)
		}
		return nil, err
	}
	if s.opts.BlockClosedEvents && !event.IsOpen() {
		return nil, domain.ErrEventClosed
	}

	_, err = h.Submissions().FindByUserAndEvent(ctx, submission.SubmitBy, submission.EventID)
	switch {
	case err == nil:
		return nil, domain.ErrAlreadySubmitted
	case !errors.Is(err, domain.ErrSubmissionNotFound):
		return nil, err
	}
	if err := validateSubmission(submission); err != nil {
		return nil, err
	}

	draft := *submission
	draft.ID = 0
	draft.Status = entities.SubmissionDraft
	if err := h.Submissions().Create(ctx, &draft); err != nil {
		// A concurrent draft won the race to the unique index.
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.Wrap(domain.ErrAlreadySubmitted, err)
		}
		return nil, err
	}
	return h.Submissions().FindByID(ctx, draft.ID)
}

// UpdateSubmission replaces the content of a Draft submission. What happens
// to a Submitted one depends on the EditPolicy.
func (s *SubmissionService) UpdateSubmission(ctx context.Context, submission *entities.Submission) (*entities.Submission, error) {
	h, err := s.handles.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer h.Release()

	current, err := h.Submissions().FindByID(ctx, submission.ID)
	if err != nil {
		return nil, err
	}
	if !current.IsDraft() {
		if s.opts.EditPolicy == EditPolicyStrict {
			return nil, domain.ErrSubmissionLocked
		}
		return current, nil
	}
	if err := validateSubmission(submission); err != nil {
		return nil, err
	}

	if err := h.Submissions().Update(ctx, submission); err != nil {
		return nil, err
	}
	return h.Submissions().FindByID(ctx, submission.ID)
}

func validateSubmission(submission *entities.Submission) error {
	if strings.TrimSpace(submission.ProjectName) == "" {
		return domain.Invalid("project_name is required")
	}
	return nil
}

// Submit moves a submission to Submitted. Submitting twice is a no-op.
func (s *SubmissionService) Submit(ctx context.Context, id int64) (*entities.Submission, error) {
	submission, changed, err := s.submit(ctx, id)
	if err != nil {
		return nil, err
	}
	if changed && s.notifier != nil {
		if err := s.notifier.SubmissionSubmitted(ctx, submission); err != nil {
			log.Printf("⚠️ announce submission %d: %v", submission.ID, err)
		}
	}
	return submission, nil
}

func (s *SubmissionService) submit(ctx context.Context, id int64) (*entities.Submission, bool, error) {
	h, err := s.handles.Acquire(ctx)
	if err != nil {
		return nil, false, err
	}
	defer h.Release()

	changed, err := h.Submissions().UpdateStatus(ctx, id, entities.SubmissionSubmitted)
	if err != nil {
		return nil, false, err
	}
	submission, err := h.Submissions().FindByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return submission, changed, nil
}

func (s *SubmissionService) GetSubmission(ctx context.Context, id int64) (*entities.Submission, error) {
	h, err := s.handles.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer h.Release()
	return h.Submissions().FindByID(ctx, id)
}

func (s *SubmissionService) GetUserEventSubmission(ctx context.Context, address string, eventID int64) (*entities.Submission, error) {
	h, err := s.handles.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer h.Release()
	return h.Submissions().FindByUserAndEvent(ctx, address, eventID)
}

func (s *SubmissionService) ListSubmissions(ctx context.Context) ([]entities.Submission, error) {
	h, err := s.handles.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer h.Release()
	return h.Submissions().FindAll(ctx)
}

func (s *SubmissionService) ListEventSubmissions(ctx context.Context, eventID int64) ([]entities.Submission, error) {
	h, err := s.handles.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer h.Release()
	return h.Submissions().FindByEventID(ctx, eventID)
}
