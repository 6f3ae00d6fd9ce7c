package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Clare-zewei/clickengineA-sub000/internal/dto"
)

// getPerformance handles GET /funnel-templates/:id/performance
// @Summary Get template performance
// @Description Template analysis with the latest observed rate of each step
// @Tags performance
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} dto.FunnelTemplateResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /funnel-templates/{id}/performance [get]
func (h *Handler) getPerformance(c *gin.Context) {
	resp, err := h.services.Performance.GetPerformance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to get performance")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// syncPerformance handles POST /funnel-templates/:id/performance
// @Summary Sync observed step rates
// @Description Publish observed step conversion rates for asynchronous ingestion
// @Tags performance
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param actuals body dto.SyncPerformanceRequest true "Observed rates"
// @Success 202 {object} dto.SyncPerformanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /funnel-templates/{id}/performance [post]
func (h *Handler) syncPerformance(c *gin.Context) {
	var req dto.SyncPerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err, "Invalid performance sync request")
		return
	}

	resp, err := h.services.Performance.SyncActuals(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err, "performance sync rejected")
		return
	}
	c.JSON(http.StatusAccepted, resp)
}

// getPerformanceHistory handles GET /funnel-templates/:id/performance/history
// @Summary Get performance history
// @Description Average observed rate of each step per day or hour
// @Tags performance
// @Produce json
// @Param id path string true "Template ID"
// @Param from query int true "Start timestamp (Unix seconds)"
// @Param to query int true "End timestamp (Unix seconds)"
// @Param group_by query string false "Grouping (day or hour)" default(day)
// @Success 200 {object} dto.PerformanceHistoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /funnel-templates/{id}/performance/history [get]
func (h *Handler) getPerformanceHistory(c *gin.Context) {
	var req dto.PerformanceHistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.badRequest(c, err, "Invalid performance history request")
		return
	}

	resp, err := h.services.Performance.GetHistory(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err, "invalid history query")
		return
	}
	c.JSON(http.StatusOK, resp)
}
