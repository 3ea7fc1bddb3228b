package output

import (
	"context"

	"bootcamp/internal/domain/entities"
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant *entities.Participant) error
	FindByAddress(ctx context.Context, address string) (*entities.Participant, error)
	// Update replaces the profile fields. Zero rows affected is not an error.
	Update(ctx context.Context, participant *entities.Participant) error
}
