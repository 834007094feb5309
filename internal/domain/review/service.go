// internal/domain/review/service.go
package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// Service handles review business logic
type Service struct {
	db     *gorm.DB
	logger *logrus.Logger
}

// NewService creates a new review service
func NewService(db *gorm.DB, logger *logrus.Logger) *Service {
	return &Service{
		db:     db,
		logger: logger,
	}
}

// SubmitReviewItem is one item in a review submission. FitRating accepts
// the five UI options and is collapsed to the stored category on insert.
type SubmitReviewItem struct {
	ProductName   string `json:"product_name" binding:"required"`
	Variant       string `json:"variant" binding:"required"`
	FitRating     string `json:"fit_rating" binding:"required"`
	Height        string `json:"height"`
	WaistSize     string `json:"waist_size"`
	PurchasedSize string `json:"purchased_size"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description" binding:"required"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
}

// SubmitReviewRequest represents a customer review submission
type SubmitReviewRequest struct {
	OrderNumber   string             `json:"order_number" binding:"required"`
	OrderID       string             `json:"order_id"`
	CustomerEmail string             `json:"customer_email" binding:"required,email"`
	CustomerID    string             `json:"customer_id" binding:"required"`
	CustomerName  string             `json:"customer_name"`
	Items         []SubmitReviewItem `json:"items" binding:"required,min=1,dive"`
}

// SubmitReviewResponse reports the created review and how many items were
// skipped because the customer had already reviewed them
type SubmitReviewResponse struct {
	Review       *Review `json:"review"`
	SkippedItems int     `json:"skipped_items"`
}

// SubmitReview validates the batch, silently filters items the customer has
// already reviewed (including repeats within the batch itself), and inserts
// a review holding the remainder. Fails with ErrAllItemsReviewed only when
// nothing is left to insert. At most one review item ever exists per
// (customer, product, variant).
func (s *Service) SubmitReview(ctx context.Context, req *SubmitReviewRequest) (*SubmitReviewResponse, error) {
	fitRatings := make([]string, len(req.Items))
	for i, item := range req.Items {
		if strings.TrimSpace(item.ProductName) == "" || strings.TrimSpace(item.Variant) == "" {
			return nil, apperrors.NewValidation("every item needs a product name and variant")
		}
		if strings.TrimSpace(item.Title) == "" || strings.TrimSpace(item.Description) == "" {
			return nil, apperrors.NewValidation("please add a title and description for each item")
		}
		if item.Rating < 1 || item.Rating > 5 {
			return nil, apperrors.NewValidation("rating must be between 1 and 5")
		}
		mapped, ok := MapFitRating(item.FitRating)
		if !ok {
			return nil, apperrors.NewValidation("unknown fit rating: %s", item.FitRating)
		}
		fitRatings[i] = mapped
	}

	reviewed, err := s.reviewedKeys(ctx, req.CustomerID, req.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing reviews: %w", err)
	}

	rev := &Review{
		ID:            uuid.NewString(),
		OrderID:       req.OrderID,
		OrderNumber:   req.OrderNumber,
		CustomerEmail: req.CustomerEmail,
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
	}

	skipped := 0
	for i, item := range req.Items {
		key := itemKey(item.ProductName, item.Variant)
		if reviewed[key] {
			skipped++
			continue
		}
		// Marks the key so a repeat inside this batch is skipped too
		reviewed[key] = true
		rev.Items = append(rev.Items, ReviewItem{
			ID:            uuid.NewString(),
			ReviewID:      rev.ID,
			ProductName:   item.ProductName,
			Variant:       item.Variant,
			FitRating:     fitRatings[i],
			Height:        item.Height,
			WaistSize:     item.WaistSize,
			PurchasedSize: item.PurchasedSize,
			Title:         strings.TrimSpace(item.Title),
			Description:   strings.TrimSpace(item.Description),
			Rating:        item.Rating,
		})
	}

	if len(rev.Items) == 0 {
		return nil, apperrors.ErrAllItemsReviewed
	}

	if err := s.db.WithContext(ctx).Create(rev).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return &SubmitReviewResponse{
		Review:       rev,
		SkippedItems: skipped,
	}, nil
}

// GetExistingReviews returns this customer's review items for an order,
// capped at 50 rows. Used to pre-filter UI selection state.
func (s *Service) GetExistingReviews(ctx context.Context, orderNumber, customerID string) ([]ReviewItem, error) {
	var items []ReviewItem
	err := s.db.WithContext(ctx).
		Joins("JOIN reviews ON reviews.id = review_items.review_id").
		Where("reviews.order_number = ? AND reviews.customer_id = ?", orderNumber, customerID).
		Limit(50).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve existing reviews: %w", err)
	}
	return items, nil
}

// GetReviews retrieves all reviews for the admin dashboard, newest first
func (s *Service) GetReviews(ctx context.Context, page, limit int) ([]Review, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&Review{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	var reviews []Review
	err := s.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve reviews: %w", err)
	}

	return reviews, total, nil
}

// reviewedKeys returns the set of (product_name, variant) pairs the customer
// has already reviewed, restricted to the pairs in the submission
func (s *Service) reviewedKeys(ctx context.Context, customerID string, items []SubmitReviewItem) (map[string]bool, error) {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.ProductName)
	}

	var existing []ReviewItem
	err := s.db.WithContext(ctx).
		Joins("JOIN reviews ON reviews.id = review_items.review_id").
		Where("reviews.customer_id = ? AND review_items.product_name IN ?", customerID, names).
		Find(&existing).Error
	if err != nil {
		return nil, err
	}

	reviewed := make(map[string]bool, len(existing))
	for _, item := range existing {
		reviewed[itemKey(item.ProductName, item.Variant)] = true
	}
	return reviewed, nil
}

func itemKey(productName, variant string) string {
	return productName + "|" + variant
}
