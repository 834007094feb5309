// internal/interfaces/http/handlers/template.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/template"
)

// TemplateHandler handles email template HTTP requests
type TemplateHandler struct {
	templateService *template.Service
	logger          *logrus.Logger
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService *template.Service, logger *logrus.Logger) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
		logger:          logger,
	}
}

// GetTemplates handles GET /admin/templates
func (h *TemplateHandler) GetTemplates(c *gin.Context) {
	templates, err := h.templateService.GetTemplates(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve templates")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": templates,
	})
}

// GetTemplate handles GET /admin/templates/:id
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	tmpl, err := h.templateService.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve template")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": tmpl,
	})
}

// CreateTemplate handles POST /admin/templates
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req template.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	tmpl, err := h.templateService.CreateTemplate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create template")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Template created",
		"data":    tmpl,
	})
}

// UpdateTemplate handles PUT /admin/templates/:id
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	var req template.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	tmpl, err := h.templateService.UpdateTemplate(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update template")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Template updated",
		"data":    tmpl,
	})
}

// DeleteTemplate handles DELETE /admin/templates/:id
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	if err := h.templateService.DeleteTemplate(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err, "Failed to delete template")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Template deleted",
	})
}
