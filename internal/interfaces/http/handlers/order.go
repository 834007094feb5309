// internal/interfaces/http/handlers/order.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// customerTokenCookie holds the gateway-issued customer access token
const customerTokenCookie = "customerAccessToken"

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderService *order.Service
	logger       *logrus.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *order.Service, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// CancelOrder handles POST /admin/orders/cancel
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	var req order.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := h.orderService.CancelOrder(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to cancel order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order cancelled",
		"data":    result,
	})
}

// GetCustomerOrders handles GET /customers/orders for the logged-in customer
func (h *OrderHandler) GetCustomerOrders(c *gin.Context) {
	token, err := c.Cookie(customerTokenCookie)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Please sign in to view your orders",
		})
		return
	}

	first, _ := strconv.Atoi(c.DefaultQuery("first", "20"))

	customer, orders, err := h.orderService.GetCustomerOrders(c.Request.Context(), token, first)
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"customer": customer,
			"orders":   orders,
		},
	})
}
