package httpapi

import (
	"bootcamp/internal/ports/input"
)

// Handler adapts HTTP requests to the use cases.
type Handler struct {
	participants input.ParticipantUseCase
	events       input.EventUseCase
	submissions  input.SubmissionUseCase
	admin        input.AdminUseCase
	tr           Localizer
}

func NewHandler(
	participants input.ParticipantUseCase,
	events input.EventUseCase,
	submissions input.SubmissionUseCase,
	admin input.AdminUseCase,
	tr Localizer,
) *Handler {
	return &Handler{
		participants: participants,
		events:       events,
		submissions:  submissions,
		admin:        admin,
		tr:           tr,
	}
}
