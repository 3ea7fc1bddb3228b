package input

import (
	"context"

	"bootcamp/internal/domain/entities"
)

type ParticipantUseCase interface {
	Register(ctx context.Context, address, email string) (*entities.Participant, error)
	GetParticipant(ctx context.Context, address string) (*entities.Participant, error)
	UpdateProfile(ctx context.Context, participant *entities.Participant) (*entities.Participant, error)
}
