package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bootcamp/internal/domain/entities"
)

// Register creates a participant
// @Summary Register a participant
// @Tags Participants
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Address and email"
// @Success 201 {object} ParticipantResponse
// @Failure 409 {object} ParticipantResponse
// @Router /participants [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		h.participantError(c, err)
		return
	}
	p, err := h.participants.Register(c.Request.Context(), req.NearAddress, req.Email)
	if err != nil {
		h.participantError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ParticipantResponse{ParticipantBody: participantBody(p), Result: ok()})
}

// GetParticipant returns a participant by NEAR address
// @Summary Get a participant
// @Tags Participants
// @Produce json
// @Param address path string true "NEAR address"
// @Success 200 {object} ParticipantResponse
// @Failure 404 {object} ParticipantResponse
// @Router /participants/{address} [get]
func (h *Handler) GetParticipant(c *gin.Context) {
	p, err := h.participants.GetParticipant(c.Request.Context(), c.Param("address"))
	if err != nil {
		h.participantError(c, err)
		return
	}
	c.JSON(http.StatusOK, ParticipantResponse{ParticipantBody: participantBody(p), Result: ok()})
}

// UpdateProfile replaces the profile fields of a participant
// @Summary Update a participant profile
// @Tags Participants
// @Accept json
// @Produce json
// @Param address path string true "NEAR address"
// @Param body body ProfileRequest true "Profile"
// @Success 200 {object} ParticipantResponse
// @Router /participants/{address} [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := bindJSON(c, &req); err != nil {
		h.participantError(c, err)
		return
	}
	p, err := h.participants.UpdateProfile(c.Request.Context(), &entities.Participant{
		NearAddress:     c.Param("address"),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		IsStudent:       req.IsStudent,
		Country:         req.Country,
		GitHandler:      req.GitHandler,
		LinkedinHandler: req.LinkedinHandler,
		TwitterHandler:  req.TwitterHandler,
	})
	if err != nil {
		h.participantError(c, err)
		return
	}
	c.JSON(http.StatusOK, ParticipantResponse{ParticipantBody: participantBody(p), Result: ok()})
}

func (h *Handler) participantError(c *gin.Context, err error) {
	status, result := failure(c, h.tr, err)
	c.JSON(status, ParticipantResponse{Result: result})
}
