// internal/domain/template/entity.go
package template

import (
	"time"
)

// SignupTemplateName is reserved for the system welcome email. The template
// is auto-created when absent and cannot be deleted.
const SignupTemplateName = "signedup"

// CancellationTemplateName is the built-in order cancellation notice. It is
// auto-created when absent but, unlike signedup, may be deleted.
const CancellationTemplateName = "order_cancelled"

// EmailTemplate represents an admin-managed email template. Content is HTML
// with {{token}} placeholders substituted at send time.
type EmailTemplate struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex" json:"name"`
	Subject   string    `gorm:"not null" json:"subject"`
	Content   string    `gorm:"not null;type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (EmailTemplate) TableName() string {
	return "email_templates"
}
