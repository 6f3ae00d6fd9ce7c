package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Clare-zewei/clickengineA-sub000/internal/dto"
)

// listEvents handles GET /events
// @Summary List catalog events
// @Description Built-in GA4 events and custom events ordered by funnel stage
// @Tags events
// @Produce json
// @Param stage query string false "Funnel stage filter"
// @Success 200 {object} dto.EventListResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events [get]
func (h *Handler) listEvents(c *gin.Context) {
	var req dto.ListEventsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.badRequest(c, err, "Invalid events request")
		return
	}

	resp, err := h.services.Catalog.ListEvents(c.Request.Context(), req.Stage)
	if err != nil {
		h.respondError(c, err, "invalid stage filter")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// createCustomEvent handles POST /events/custom
// @Summary Create a custom event
// @Description The id defaults to a slug of the name
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.CustomEventRequest true "Custom event"
// @Success 201 {object} domain.Event
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/custom [post]
func (h *Handler) createCustomEvent(c *gin.Context) {
	var req dto.CustomEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err, "Invalid custom event request")
		return
	}

	event, err := h.services.Catalog.CreateCustomEvent(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "invalid custom event")
		return
	}
	c.JSON(http.StatusCreated, event)
}
