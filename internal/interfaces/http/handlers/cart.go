// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// CartHandler handles cart-related HTTP requests. The cart id lives in an
// HTTP-only cookie; request bodies never carry it.
type CartHandler struct {
	cartService *cart.Service
	config      *config.Config
	logger      *logrus.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, cfg *config.Config, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		config:      cfg,
		logger:      logger,
	}
}

// AddItemRequest represents an add-to-cart request
type AddItemRequest struct {
	MerchandiseID string `json:"merchandise_id" binding:"required"`
	Quantity      int    `json:"quantity"`
}

// UpdateItemRequest represents a cart line quantity change
type UpdateItemRequest struct {
	MerchandiseID string `json:"merchandise_id" binding:"required"`
	Quantity      *int   `json:"quantity" binding:"required,min=0"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	cartID := h.cartID(c)
	if cartID == "" {
		// No session yet; an empty cart is not an error for the storefront
		c.JSON(http.StatusOK, gin.H{
			"data": cart.View{Lines: []cart.LineView{}},
		})
		return
	}

	view, err := h.cartService.GetCart(c.Request.Context(), cartID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": view,
	})
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	cartID, view, err := h.cartService.AddItem(c.Request.Context(), h.cartID(c), req.MerchandiseID, req.Quantity)
	if err != nil {
		respondError(c, h.logger, err, "Failed to add item to cart")
		return
	}

	h.setCartCookie(c, cartID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"data":    view,
	})
}

// UpdateItem handles PUT /cart/items
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	view, err := h.cartService.UpdateItemQuantity(c.Request.Context(), h.cartID(c), req.MerchandiseID, *req.Quantity)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update cart item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"data":    view,
	})
}

// RemoveItem handles DELETE /cart/items/:merchandiseId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	merchandiseID := c.Param("merchandiseId")

	view, err := h.cartService.RemoveItem(c.Request.Context(), h.cartID(c), merchandiseID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to remove cart item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"data":    view,
	})
}

// Checkout handles POST /cart/checkout. The customer is handed off to the
// gateway-hosted checkout; everything after the redirect is out of our hands.
func (h *CartHandler) Checkout(c *gin.Context) {
	checkoutURL, err := h.cartService.CheckoutURL(c.Request.Context(), h.cartID(c))
	if err != nil {
		respondError(c, h.logger, err, "Failed to start checkout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"checkout_url": checkoutURL,
	})
}

// cartID reads the cart session cookie, empty when no session exists
func (h *CartHandler) cartID(c *gin.Context) string {
	cartID, err := c.Cookie(h.config.Store.CartCookieName)
	if err != nil {
		return ""
	}
	return cartID
}

// setCartCookie writes the cart session cookie. HTTP-only so storefront
// scripts never see the id, Lax so top-level checkout redirects keep it.
func (h *CartHandler) setCartCookie(c *gin.Context, cartID string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		h.config.Store.CartCookieName,
		cartID,
		int(h.config.Store.CartCookieAge.Seconds()),
		"/",
		"",
		h.config.IsProduction(),
		true,
	)
}
