package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bootcamp/internal/domain"
	"bootcamp/internal/domain/entities"
)

// AddEvent creates an Open event
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param body body EventRequest true "Event"
// @Success 201 {object} EventResponse
// @Failure 400 {object} EventResponse
// @Router /events [post]
func (h *Handler) AddEvent(c *gin.Context) {
	var req EventRequest
	if err := bindJSON(c, &req); err != nil {
		h.eventError(c, err)
		return
	}
	e, err := h.events.AddEvent(c.Request.Context(), eventFromRequest(0, req))
	if err != nil {
		h.eventError(c, err)
		return
	}
	c.JSON(http.StatusCreated, EventResponse{EventBody: eventBody(e), Result: ok()})
}

// @Summary Update an event
// @Tags Events
// @Router /events/{id} [put]
func (h *Handler) UpdateEvent(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		h.eventError(c, err)
		return
	}
	var req EventRequest
	if err := bindJSON(c, &req); err != nil {
		h.eventError(c, err)
		return
	}
	e, err := h.events.UpdateEvent(c.Request.Context(), eventFromRequest(id, req))
	if err != nil {
		h.eventError(c, err)
		return
	}
	c.JSON(http.StatusOK, EventResponse{EventBody: eventBody(e), Result: ok()})
}

// CloseEvent moves an event to Closed. Closing twice succeeds.
// @Summary Close an event
// @Tags Events
// @Router /events/{id}/close [put]
func (h *Handler) CloseEvent(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		h.eventError(c, err)
		return
	}
	e, err := h.events.CloseEvent(c.Request.Context(), id)
	if err != nil {
		h.eventError(c, err)
		return
	}
	c.JSON(http.StatusOK, EventResponse{EventBody: eventBody(e), Result: ok()})
}

// @Summary Get an event
// @Tags Events
// @Router /events/{id} [get]
func (h *Handler) GetEvent(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		h.eventError(c, err)
		return
	}
	e, err := h.events.GetEvent(c.Request.Context(), id)
	if err != nil {
		h.eventError(c, err)
		return
	}
	c.JSON(http.StatusOK, EventResponse{EventBody: eventBody(e), Result: ok()})
}

// ListEvents returns every event, or only Open ones with ?live=true
// @Summary List events
// @Tags Events
// @Param live query bool false "Only open events"
// @Success 200 {object} EventListResponse
// @Failure 400 {object} EventListResponse
// @Router /events [get]
func (h *Handler) ListEvents(c *gin.Context) {
	live := false
	if raw, set := c.GetQuery("live"); set {
		var err error
		if live, err = strconv.ParseBool(raw); err != nil {
			h.writeEvents(c, nil, domain.Invalid("live must be a boolean"))
			return
		}
	}
	if live {
		h.ListLiveEvents(c)
		return
	}
	events, err := h.events.ListEvents(c.Request.Context())
	h.writeEvents(c, events, err)
}

// @Summary List open events
// @Tags Events
// @Router /events/live [get]
func (h *Handler) ListLiveEvents(c *gin.Context) {
	events, err := h.events.ListLiveEvents(c.Request.Context())
	h.writeEvents(c, events, err)
}

func (h *Handler) writeEvents(c *gin.Context, events []entities.Event, err error) {
	if err != nil {
		status, result := failure(c, h.tr, err)
		c.JSON(status, EventListResponse{Items: []EventBody{}, Result: result})
		return
	}
	c.JSON(http.StatusOK, EventListResponse{Items: eventBodies(events), Result: ok()})
}

func (h *Handler) eventError(c *gin.Context, err error) {
	status, result := failure(c, h.tr, err)
	c.JSON(status, EventResponse{Result: result})
}

func eventFromRequest(id int64, req EventRequest) *entities.Event {
	return &entities.Event{
		ID:        id,
		Type:      req.Type,
		Title:     req.Title,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Logo:      req.Logo,
	}
}
