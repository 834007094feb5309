// internal/domain/returns/entity.go
package returns

import (
	"time"
)

// Return statuses. The admin may move a return freely between these; the
// workflow is deliberately not a strict DAG.
const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCompleted = "COMPLETED"
)

// ValidStatus reports whether s is a known return status
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Return represents a customer-initiated return request
type Return struct {
	ID              string       `gorm:"primaryKey;size:36" json:"id"`
	OrderNumber     string       `gorm:"not null;index" json:"order_number"`
	OrderID         string       `gorm:"not null" json:"order_id"`
	CustomerID      string       `gorm:"index" json:"customer_id"`
	CustomerEmail   string       `gorm:"not null" json:"customer_email"`
	Status          string       `gorm:"not null;default:'PENDING';index" json:"status"`
	AdditionalNotes string       `json:"additional_notes"`
	Items           []ReturnItem `gorm:"foreignKey:ReturnID" json:"items"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// TableName overrides the table name
func (Return) TableName() string {
	return "returns"
}

// ReturnItem represents one item within a return request
type ReturnItem struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	ReturnID    string `gorm:"not null;index" json:"return_id"`
	ProductName string `gorm:"not null" json:"product_name"`
	Variant     string `gorm:"not null" json:"variant"`
	Reason      string `gorm:"not null" json:"reason"`
	Quantity    int    `gorm:"not null;default:1" json:"quantity"`
}

// TableName overrides the table name
func (ReturnItem) TableName() string {
	return "return_items"
}
