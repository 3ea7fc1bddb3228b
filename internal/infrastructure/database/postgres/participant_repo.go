package postgres

import (
	"context"
	"time"

	"bootcamp/internal/domain"
	"bootcamp/internal/domain/entities"
	"bootcamp/internal/infrastructure/metrics"
	"bootcamp/internal/ports/output"
)

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

// ParticipantRepository implements output.ParticipantRepository using pgx.
type ParticipantRepository struct {
	db DBTX
}

// NewParticipantRepository creates a ParticipantRepository.
func NewParticipantRepository(db DBTX) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

func (r *ParticipantRepository) Create(ctx context.Context, participant *entities.Participant) error {
	defer metrics.RecordDBOperation("insert", "participants", time.Now())

	_, err := r.db.Exec(ctx,
		`INSERT INTO participants (near_address, email) VALUES ($1, $2)`,
		participant.NearAddress, participant.Email,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Wrap(domain.ErrParticipantExists, err)
		}
		return translate("create participant", err, nil)
	}
	return nil
}

func (r *ParticipantRepository) FindByAddress(ctx context.Context, address string) (*entities.Participant, error) {
	defer metrics.RecordDBOperation("select", "participants", time.Now())

	row := r.db.QueryRow(ctx,
		`SELECT `+participantColumns+` FROM participants WHERE near_address = $1`, address)
	p, err := scanParticipant(row)
	if err != nil {
		return nil, translate("get participant by address", err, domain.ErrParticipantNotFound)
	}
	return p, nil
}

func (r *ParticipantRepository) Update(ctx context.Context, participant *entities.Participant) error {
	defer metrics.RecordDBOperation("update", "participants", time.Now())

	_, err := r.db.Exec(ctx, `
		UPDATE participants
		SET first_name = $1, last_name = $2, is_student = $3, country = $4,
			git_handler = $5, linkedin_handler = $6, twitter_handler = $7
		WHERE near_address = $8`,
		textOrNull(participant.FirstName),
		textOrNull(participant.LastName),
		participant.IsStudent,
		textOrNull(participant.Country),
		textOrNull(participant.GitHandler),
		textOrNull(participant.LinkedinHandler),
		textOrNull(participant.TwitterHandler),
		participant.NearAddress,
	)
	return translate("update participant", err, nil)
}
