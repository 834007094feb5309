// internal/domain/newsletter/entity.go
package newsletter

import (
	"time"
)

// Subscriber represents a newsletter subscription
type Subscriber struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"not null;uniqueIndex" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name
func (Subscriber) TableName() string {
	return "subscribers"
}
