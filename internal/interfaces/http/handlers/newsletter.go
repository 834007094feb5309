// internal/interfaces/http/handlers/newsletter.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/newsletter"
)

// NewsletterHandler handles newsletter HTTP requests
type NewsletterHandler struct {
	newsletterService *newsletter.Service
	logger            *logrus.Logger
}

// NewNewsletterHandler creates a new newsletter handler
func NewNewsletterHandler(newsletterService *newsletter.Service, logger *logrus.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletterService,
		logger:            logger,
	}
}

// SubscribeRequest represents a newsletter subscription
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Subscribe handles POST /newsletter/subscribe
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sub, err := h.newsletterService.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, h.logger, err, "Failed to subscribe")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscribed to the newsletter",
		"data":    sub,
	})
}

// Unsubscribe handles POST /newsletter/unsubscribe
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.newsletterService.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		respondError(c, h.logger, err, "Failed to unsubscribe")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Unsubscribed from the newsletter",
	})
}

// GetSubscribers handles GET /admin/newsletter/subscribers
func (h *NewsletterHandler) GetSubscribers(c *gin.Context) {
	subs, err := h.newsletterService.GetSubscribers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve subscribers")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  subs,
		"total": len(subs),
	})
}

// SendRequest represents an admin newsletter send
type SendRequest struct {
	TemplateName string `json:"template_name" binding:"required"`
}

// Send handles POST /admin/newsletter/send
func (h *NewsletterHandler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := h.newsletterService.SendNewsletter(c.Request.Context(), req.TemplateName)
	if err != nil {
		respondError(c, h.logger, err, "Failed to send newsletter")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Newsletter send finished",
		"data":    result,
	})
}
