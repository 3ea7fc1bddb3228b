package sqlite

import (
	"context"
	"time"

	"bootcamp/internal/domain"
	"bootcamp/internal/domain/entities"
	"bootcamp/internal/infrastructure/metrics"
	"bootcamp/internal/ports/output"
)

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

type ParticipantRepository struct {
	db DBTX
}

func NewParticipantRepository(db DBTX) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

// Create stores the address and email only. Profile fields start empty.
func (r *ParticipantRepository) Create(ctx context.Context, participant *entities.Participant) error {
	defer metrics.RecordDBOperation("insert", "participants", time.Now())

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO participants (near_address, email) VALUES (?, ?)`,
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

	row := r.db.QueryRowContext(ctx,
		`SELECT `+participantColumns+` FROM participants WHERE near_address = ?`, address)
	p, err := scanParticipant(row)
	if err != nil {
		return nil, translate("get participant by address", err, domain.ErrParticipantNotFound)
	}
	return p, nil
}

func (r *ParticipantRepository) Update(ctx context.Context, participant *entities.Participant) error {
	defer metrics.RecordDBOperation("update", "participants", time.Now())

	_, err := r.db.ExecContext(ctx, `
		UPDATE participants
		SET first_name = ?, last_name = ?, is_student = ?, country = ?,
			git_handler = ?, linkedin_handler = ?, twitter_handler = ?
		WHERE near_address = ?`,
		nullString(participant.FirstName),
		nullString(participant.LastName),
		boolToInt(participant.IsStudent),
		nullString(participant.Country),
		nullString(participant.GitHandler),
		nullString(participant.LinkedinHandler),
		nullString(participant.TwitterHandler),
		participant.NearAddress,
	)
	return translate("update participant", err, nil)
}
