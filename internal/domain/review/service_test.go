// internal/domain/review/service_test.go
package review

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Review{}, &ReviewItem{}))

	require.NoError(t, db.Exec("DELETE FROM review_items").Error)
	require.NoError(t, db.Exec("DELETE FROM reviews").Error)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	return NewService(db, log)
}

func submission(items ...SubmitReviewItem) *SubmitReviewRequest {
	return &SubmitReviewRequest{
		OrderNumber:   "#2001",
		OrderID:       "gid://shopify/Order/2001",
		CustomerEmail: "sam@example.com",
		CustomerID:    "gid://shopify/Customer/77",
		Items:         items,
	}
}

func item(product, variant, fit string) SubmitReviewItem {
	return SubmitReviewItem{
		ProductName: product,
		Variant:     variant,
		FitRating:   fit,
		Title:       "Great fit",
		Description: "Exactly as described",
		Rating:      5,
	}
}

func TestMapFitRating(t *testing.T) {
	cases := map[string]string{
		"too_small":      FitRunsSmall,
		"slightly_small": FitRunsSmall,
		"perfect":        FitTrueToSize,
		"slightly_large": FitRunsLarge,
		"too_large":      FitRunsLarge,
		FitTrueToSize:    FitTrueToSize,
	}
	for input, want := range cases {
		got, ok := MapFitRating(input)
		require.True(t, ok, input)
		assert.Equal(t, want, got)
	}

	_, ok := MapFitRating("just_right")
	assert.False(t, ok)
}

func TestSubmitReviewStoresMappedFitRating(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.SubmitReview(context.Background(), submission(item("Tee", "M", "slightly_small")))
	require.NoError(t, err)

	require.Len(t, resp.Review.Items, 1)
	assert.Equal(t, FitRunsSmall, resp.Review.Items[0].FitRating)
	assert.Zero(t, resp.SkippedItems)
}

func TestSubmitReviewSkipsAlreadyReviewedItems(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SubmitReview(ctx, submission(item("Tee", "M", "perfect")))
	require.NoError(t, err)

	// Mixed batch: one duplicate, one new
	resp, err := svc.SubmitReview(ctx, submission(
		item("Tee", "M", "perfect"),
		item("Hoodie", "L", "too_large"),
	))
	require.NoError(t, err)

	assert.Equal(t, 1, resp.SkippedItems)
	require.Len(t, resp.Review.Items, 1)
	assert.Equal(t, "Hoodie", resp.Review.Items[0].ProductName)
}

func TestSubmitReviewDedupesWithinBatch(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// The same (product, variant) listed twice in one submission
	resp, err := svc.SubmitReview(ctx, submission(
		item("Tee", "M", "perfect"),
		item("Tee", "M", "slightly_small"),
	))
	require.NoError(t, err)

	assert.Equal(t, 1, resp.SkippedItems)
	require.Len(t, resp.Review.Items, 1)

	// Only one row stored for the (customer, product, variant) triple
	items, err := svc.GetExistingReviews(ctx, "#2001", "gid://shopify/Customer/77")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, FitTrueToSize, items[0].FitRating)
}

func TestSubmitReviewAllItemsAlreadyReviewed(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SubmitReview(ctx, submission(item("Tee", "M", "perfect")))
	require.NoError(t, err)

	_, err = svc.SubmitReview(ctx, submission(item("Tee", "M", "perfect")))
	assert.ErrorIs(t, err, apperrors.ErrAllItemsReviewed)
}

func TestSubmitReviewOtherCustomerNotBlocked(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SubmitReview(ctx, submission(item("Tee", "M", "perfect")))
	require.NoError(t, err)

	// Duplicate filtering is per customer
	other := submission(item("Tee", "M", "perfect"))
	other.CustomerID = "gid://shopify/Customer/88"
	_, err = svc.SubmitReview(ctx, other)
	assert.NoError(t, err)
}

func TestSubmitReviewValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	bad := item("Tee", "M", "perfect")
	bad.Rating = 6
	_, err := svc.SubmitReview(ctx, submission(bad))
	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)

	bad = item("Tee", "M", "no_such_fit")
	_, err = svc.SubmitReview(ctx, submission(bad))
	require.ErrorAs(t, err, &validation)

	bad = item("Tee", "M", "perfect")
	bad.Title = " "
	_, err = svc.SubmitReview(ctx, submission(bad))
	require.ErrorAs(t, err, &validation)
}

func TestGetExistingReviews(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SubmitReview(ctx, submission(item("Tee", "M", "perfect"), item("Hoodie", "L", "too_large")))
	require.NoError(t, err)

	items, err := svc.GetExistingReviews(ctx, "#2001", "gid://shopify/Customer/77")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = svc.GetExistingReviews(ctx, "#2001", "gid://shopify/Customer/88")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetReviewsPagination(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	products := []string{"Tee", "Hoodie", "Jeans"}
	for _, p := range products {
		_, err := svc.SubmitReview(ctx, submission(item(p, "M", "perfect")))
		require.NoError(t, err)
	}

	reviews, total, err := svc.GetReviews(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, reviews, 2)
}
