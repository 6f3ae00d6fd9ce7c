package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Clare-zewei/clickengineA-sub000/internal/dto"
	"github.com/Clare-zewei/clickengineA-sub000/internal/middleware"
)

// listKeywords handles GET /steps/:stepId/keywords
// @Summary List step keywords
// @Tags keywords
// @Produce json
// @Param stepId path string true "Step ID"
// @Success 200 {object} dto.KeywordListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /steps/{stepId}/keywords [get]
func (h *Handler) listKeywords(c *gin.Context) {
	resp, err := h.services.Keywords.List(c.Request.Context(), c.Param("stepId"))
	if err != nil {
		h.respondError(c, err, "Failed to list keywords")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// addKeywords handles POST /steps/:stepId/keywords
// @Summary Tag a step with keywords
// @Description Keywords are trimmed and lower-cased. Keywords already on the step are skipped.
// @Tags keywords
// @Accept json
// @Produce json
// @Param stepId path string true "Step ID"
// @Param X-Actor header string false "User performing the change"
// @Param keywords body dto.AddKeywordsRequest true "Keywords"
// @Success 201 {object} dto.AddKeywordsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /steps/{stepId}/keywords [post]
func (h *Handler) addKeywords(c *gin.Context) {
	var req dto.AddKeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err, "Invalid keywords request")
		return
	}

	resp, err := h.services.Keywords.Add(c.Request.Context(), c.Param("stepId"), &req, middleware.Actor(c))
	if err != nil {
		h.respondError(c, err, "invalid keywords")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// updateKeyword handles PUT /steps/:stepId/keywords/:keywordId
// @Summary Rename a step keyword
// @Tags keywords
// @Accept json
// @Produce json
// @Param stepId path string true "Step ID"
// @Param keywordId path string true "Keyword ID"
// @Param X-Actor header string false "User performing the change"
// @Param keyword body dto.UpdateKeywordRequest true "Keyword"
// @Success 200 {object} domain.StepKeyword
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /steps/{stepId}/keywords/{keywordId} [put]
func (h *Handler) updateKeyword(c *gin.Context) {
	var req dto.UpdateKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err, "Invalid keyword request")
		return
	}

	keyword, err := h.services.Keywords.Update(c.Request.Context(), c.Param("stepId"), c.Param("keywordId"), &req, middleware.Actor(c))
	if err != nil {
		h.respondError(c, err, "invalid keyword")
		return
	}
	c.JSON(http.StatusOK, keyword)
}

// removeKeyword handles DELETE /steps/:stepId/keywords/:keywordId
// @Summary Remove a step keyword
// @Tags keywords
// @Param stepId path string true "Step ID"
// @Param keywordId path string true "Keyword ID"
// @Param X-Actor header string false "User performing the change"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /steps/{stepId}/keywords/{keywordId} [delete]
func (h *Handler) removeKeyword(c *gin.Context) {
	if err := h.services.Keywords.Remove(c.Request.Context(), c.Param("stepId"), c.Param("keywordId"), middleware.Actor(c)); err != nil {
		h.respondError(c, err, "Failed to remove keyword")
		return
	}
	c.Status(http.StatusNoContent)
}

// keywordUsageLog handles GET /steps/:stepId/keywords/usage
// @Summary Keyword audit trail
// @Description Keyword changes on a step, newest first
// @Tags keywords
// @Produce json
// @Param stepId path string true "Step ID"
// @Success 200 {object} dto.UsageLogResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /steps/{stepId}/keywords/usage [get]
func (h *Handler) keywordUsageLog(c *gin.Context) {
	resp, err := h.services.Keywords.UsageLog(c.Request.Context(), c.Param("stepId"))
	if err != nil {
		h.respondError(c, err, "Failed to get keyword usage log")
		return
	}
	c.JSON(http.StatusOK, resp)
}
