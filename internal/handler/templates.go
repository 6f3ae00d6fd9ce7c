package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Clare-zewei/clickengineA-sub000/internal/dto"
)

// listTemplates handles GET /funnel-templates
// @Summary List funnel templates
// @Description List every funnel template with its derived conversion, CAC and ROI
// @Tags templates
// @Produce json
// @Success 200 {object} dto.TemplateListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /funnel-templates [get]
func (h *Handler) listTemplates(c *gin.Context) {
	resp, err := h.services.Templates.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to list templates")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// createTemplate handles POST /funnel-templates
// @Summary Create a funnel template
// @Description Validate and store a funnel template. Every rule violation is returned at once.
// @Tags templates
// @Accept json
// @Produce json
// @Param template body dto.FunnelTemplateRequest true "Template"
// @Success 201 {object} dto.FunnelTemplateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /funnel-templates [post]
func (h *Handler) createTemplate(c *gin.Context) {
	var req dto.FunnelTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err, "Invalid template request")
		return
	}

	resp, err := h.services.Templates.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "Failed to create template")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// previewTemplate handles POST /funnel-templates/preview
// @Summary Preview a funnel template
// @Description Validate and analyze an unsaved template without storing it
// @Tags templates
// @Accept json
// @Produce json
// @Param template body dto.FunnelTemplateRequest true "Draft template"
// @Success 200 {object} dto.PreviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /funnel-templates/preview [post]
func (h *Handler) previewTemplate(c *gin.Context) {
	var req dto.FunnelTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err, "Invalid preview request")
		return
	}

	resp, err := h.services.Templates.Preview(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "Failed to preview template")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTemplate handles GET /funnel-templates/:id
// @Summary Get a funnel template
// @Tags templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} dto.FunnelTemplateResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /funnel-templates/{id} [get]
func (h *Handler) getTemplate(c *gin.Context) {
	resp, err := h.services.Templates.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to get template")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateTemplate handles PUT /funnel-templates/:id
// @Summary Update a funnel template
// @Description Replace a template and its steps. Steps sent with their id keep their keywords.
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param template body dto.FunnelTemplateRequest true "Template"
// @Success 200 {object} dto.FunnelTemplateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /funnel-templates/{id} [put]
func (h *Handler) updateTemplate(c *gin.Context) {
	var req dto.FunnelTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err, "Invalid template request")
		return
	}

	resp, err := h.services.Templates.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err, "Failed to update template")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// deleteTemplate handles DELETE /funnel-templates/:id
// @Summary Delete a funnel template
// @Description Delete a template with its steps and their keywords
// @Tags templates
// @Param id path string true "Template ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /funnel-templates/{id} [delete]
func (h *Handler) deleteTemplate(c *gin.Context) {
	id := c.Param("id")
	if err := h.services.Templates.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Failed to delete template")
		return
	}

	h.log.Info("Template deleted via API", zap.String("template_id", id))
	c.Status(http.StatusNoContent)
}
