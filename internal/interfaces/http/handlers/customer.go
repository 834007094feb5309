// internal/interfaces/http/handlers/customer.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/customer"
)

// CustomerHandler handles storefront customer account HTTP requests
type CustomerHandler struct {
	customerService *customer.Service
	config          *config.Config
	logger          *logrus.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *customer.Service, cfg *config.Config, logger *logrus.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		config:          cfg,
		logger:          logger,
	}
}

// Register handles POST /customers/register
func (h *CustomerHandler) Register(c *gin.Context) {
	var req customer.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	created, err := h.customerService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created",
		"data":    created,
	})
}

// Login handles POST /customers/login. On success the gateway access token
// is written to an HTTP-only cookie; the response body never carries it.
func (h *CustomerHandler) Login(c *gin.Context) {
	var req customer.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	session, err := h.customerService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to sign in")
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(customerTokenCookie, session.AccessToken, maxAge, "/", "", h.config.IsProduction(), true)

	c.JSON(http.StatusOK, gin.H{
		"message": "Signed in",
		"data": gin.H{
			"expires_at": session.ExpiresAt,
		},
	})
}

// Logout handles POST /customers/logout
func (h *CustomerHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(customerTokenCookie, "", -1, "/", "", h.config.IsProduction(), true)

	c.JSON(http.StatusOK, gin.H{
		"message": "Signed out",
	})
}
