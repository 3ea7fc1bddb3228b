package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bootcamp/internal/domain/entities"
)

// Draft creates the Draft submission of a participant for an event
// @Summary Create a draft submission
// @Tags Submissions
// @Accept json
// @Produce json
// @Param body body SubmissionRequest true "Submission"
// @Success 201 {object} SubmissionResponse
// @Failure 400 {object} SubmissionResponse "unknown participant or event"
// @Failure 409 {object} SubmissionResponse "already submitted"
// @Router /submissions [post]
func (h *Handler) Draft(c *gin.Context) {
	var req SubmissionRequest
	if err := bindJSON(c, &req); err != nil {
		h.submissionError(c, err)
		return
	}
	s, err := h.submissions.Draft(c.Request.Context(), submissionFromRequest(0, req))
	if err != nil {
		h.submissionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, SubmissionResponse{SubmissionBody: submissionBody(s), Result: ok()})
}

// UpdateSubmission replaces the content of a Draft submission
// @Summary Update a submission
// @Tags Submissions
// @Accept json
// @Produce json
// @Param id path int true "Submission ID"
// @Param body body SubmissionRequest true "Submission"
// @Success 200 {object} SubmissionResponse
// @Router /submissions/{id} [put]
func (h *Handler) UpdateSubmission(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		h.submissionError(c, err)
		return
	}
	var req SubmissionRequest
	if err := bindJSON(c, &req); err != nil {
		h.submissionError(c, err)
		return
	}
	s, err := h.submissions.UpdateSubmission(c.Request.Context(), submissionFromRequest(id, req))
	if err != nil {
		h.submissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, SubmissionResponse{SubmissionBody: submissionBody(s), Result: ok()})
}

// @Summary Submit a submission
// @Tags Submissions
// @Router /submissions/{id}/submit [put]
func (h *Handler) Submit(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		h.submissionError(c, err)
		return
	}
	s, err := h.submissions.Submit(c.Request.Context(), id)
	if err != nil {
		h.submissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, SubmissionResponse{SubmissionBody: submissionBody(s), Result: ok()})
}

func (h *Handler) GetSubmission(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		h.submissionError(c, err)
		return
	}
	s, err := h.submissions.GetSubmission(c.Request.Context(), id)
	if err != nil {
		h.submissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, SubmissionResponse{SubmissionBody: submissionBody(s), Result: ok()})
}

// GetUserEventSubmission returns the submission of a participant for one event.
func (h *Handler) GetUserEventSubmission(c *gin.Context) {
	eventID, err := pathID(c, "id")
	if err != nil {
		h.submissionError(c, err)
		return
	}
	s, err := h.submissions.GetUserEventSubmission(c.Request.Context(), c.Param("address"), eventID)
	if err != nil {
		h.submissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, SubmissionResponse{SubmissionBody: submissionBody(s), Result: ok()})
}

func (h *Handler) ListSubmissions(c *gin.Context) {
	submissions, err := h.submissions.ListSubmissions(c.Request.Context())
	h.writeSubmissions(c, submissions, err)
}

func (h *Handler) ListEventSubmissions(c *gin.Context) {
	eventID, err := pathID(c, "id")
	if err != nil {
		h.writeSubmissions(c, nil, err)
		return
	}
	submissions, err := h.submissions.ListEventSubmissions(c.Request.Context(), eventID)
	h.writeSubmissions(c, submissions, err)
}

func (h *Handler) writeSubmissions(c *gin.Context, submissions []entities.Submission, err error) {
	if err != nil {
		status, result := failure(c, h.tr, err)
		c.JSON(status, SubmissionListResponse{Items: []SubmissionBody{}, Result: result})
		return
	}
	c.JSON(http.StatusOK, SubmissionListResponse{Items: submissionBodies(submissions), Result: ok()})
}

func (h *Handler) submissionError(c *gin.Context, err error) {
	status, result := failure(c, h.tr, err)
	c.JSON(status, SubmissionResponse{Result: result})
}

func submissionFromRequest(id int64, req SubmissionRequest) *entities.Submission {
	return &entities.Submission{
		ID:           id,
		EventID:      req.EventID,
		ProjectName:  req.ProjectName,
		Description:  req.Description,
		Thumbnail:    req.Thumbnail,
		GitURL:       req.GitURL,
		LiveDemoURL:  req.LiveDemoURL,
		VideoDemoURL: req.VideoDemoURL,
		SubmitBy:     req.SubmitBy,
	}
}
