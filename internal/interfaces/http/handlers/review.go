// internal/interfaces/http/handlers/review.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/review"
)

// ReviewHandler handles review HTTP requests
type ReviewHandler struct {
	reviewService *review.Service
	logger        *logrus.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *review.Service, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// SubmitReview handles POST /reviews
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var req review.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	response, err := h.reviewService.SubmitReview(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to submit review")
		return
	}

	message := "Review submitted"
	if response.SkippedItems > 0 {
		message = "Review submitted; items you already reviewed were skipped"
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       message,
		"data":          response.Review,
		"skipped_items": response.SkippedItems,
	})
}

// GetExistingReviews handles GET /reviews/existing. The storefront calls
// this before rendering the review form to grey out already-reviewed items.
func (h *ReviewHandler) GetExistingReviews(c *gin.Context) {
	orderNumber := c.Query("order_number")
	customerID := c.Query("customer_id")
	if orderNumber == "" || customerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "order_number and customer_id are required",
		})
		return
	}

	items, err := h.reviewService.GetExistingReviews(c.Request.Context(), orderNumber, customerID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve existing reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": items,
	})
}

// GetReviews handles GET /admin/reviews
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	reviews, total, err := h.reviewService.GetReviews(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  reviews,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}
