package application

import (
	"context"
	"strings"

	"bootcamp/internal/domain"
	"bootcamp/internal/domain/entities"
	"bootcamp/internal/ports/input"
	"bootcamp/internal/ports/output"
)

var _ input.ParticipantUseCase = (*ParticipantService)(nil)

type ParticipantService struct {
	handles output.HandleFactory
}

func NewParticipantService(handles output.HandleFactory) *ParticipantService {
	return &ParticipantService{handles: handles}
}

// Register inserts a participant and returns the stored row.
func (s *ParticipantService) Register(ctx context.Context, address, email string) (*entities.Participant, error) {
	if strings.TrimSpace(address) == "" {
		return nil, domain.Invalid("near_address is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, domain.Invalid("email is required")
	}
	h, err := s.handles.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer h.Release()

	participant := &entities.Participant{NearAddress: address, Email: email}
	if err := h.Participants().Create(ctx, participant); err != nil {
		return nil, err
	}
	return h.Participants().FindByAddress(ctx, address)
}

func (s *ParticipantService) GetParticipant(ctx context.Context, address string) (*entities.Participant, error) {
	h, err := s.handles.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer h.Release()
	return h.Participants().FindByAddress(ctx, address)
}

// UpdateProfile replaces every profile field of the participant keyed by
// NearAddress. The email is not touched. An unknown address surfaces from the
// read-back, not from the update.
func (s *ParticipantService) UpdateProfile(ctx context.Context, participant *entities.Participant) (*entities.Participant, error) {
	h, err := s.handles.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer h.Release()

	if err := h.Participants().Update(ctx, participant); err != nil {
		return nil, err
	}
	return h.Participants().FindByAddress(ctx, participant.NearAddress)
}
