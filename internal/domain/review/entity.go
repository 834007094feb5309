// internal/domain/review/entity.go
package review

import (
	"time"
)

// Stored fit ratings. The UI offers five options which collapse onto these
// three categories; the mapping is lossy by design.
const (
	FitRunsSmall  = "RUNS_SMALL"
	FitTrueToSize = "TRUE_TO_SIZE"
	FitRunsLarge  = "RUNS_LARGE"
)

// MapFitRating collapses a five-way UI fit option onto the stored three-way
// category. Unknown values return false.
func MapFitRating(input string) (string, bool) {
	switch input {
	case "too_small", "slightly_small":
		return FitRunsSmall, true
	case "perfect":
		return FitTrueToSize, true
	case "slightly_large", "too_large":
		return FitRunsLarge, true
	case FitRunsSmall, FitTrueToSize, FitRunsLarge:
		// Already a stored category
		return input, true
	}
	return "", false
}

// Review represents one feedback submission covering one or more purchased
// items of an order
type Review struct {
	ID            string       `gorm:"primaryKey;size:36" json:"id"`
	OrderID       string       `gorm:"not null" json:"order_id"`
	OrderNumber   string       `gorm:"not null;index" json:"order_number"`
	CustomerEmail string       `gorm:"not null" json:"customer_email"`
	CustomerID    string       `gorm:"not null;index" json:"customer_id"`
	CustomerName  string       `json:"customer_name"`
	Items         []ReviewItem `gorm:"foreignKey:ReviewID" json:"items"`
	CreatedAt     time.Time    `json:"created_at"`
}

// TableName overrides the table name
func (Review) TableName() string {
	return "reviews"
}

// ReviewItem represents feedback on one purchased product variant
type ReviewItem struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	ReviewID      string `gorm:"not null;index" json:"review_id"`
	ProductName   string `gorm:"not null" json:"product_name"`
	Variant       string `gorm:"not null" json:"variant"`
	FitRating     string `gorm:"not null" json:"fit_rating"`
	Height        string `json:"height"`
	WaistSize     string `json:"waist_size"`
	PurchasedSize string `json:"purchased_size"`
	Title         string `gorm:"not null" json:"title"`
	Description   string `gorm:"not null" json:"description"`
	Rating        int    `gorm:"not null" json:"rating"`
}

// TableName overrides the table name
func (ReviewItem) TableName() string {
	return "review_items"
}
