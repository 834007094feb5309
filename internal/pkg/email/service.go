// internal/pkg/email/service.go
package email

import (
	"context"
	"fmt"

	"github.com/your-org/storefront-backend/internal/config"
)

// Service sends transactional email over SMTP
type Service struct {
	config *config.Config
}

// NewService creates a new email service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// Send sends an HTML email to a single recipient
func (s *Service) Send(ctx context.Context, to, subject, htmlBody string) error {
	if to == "" {
		return fmt.Errorf("recipient address is required")
	}

	msg := &Message{
		To:       []string{to},
		Subject:  subject,
		HTMLBody: htmlBody,
	}
	return s.sendSMTP(ctx, msg)
}

// Message represents an outbound email
type Message struct {
	To       []string
	Subject  string
	HTMLBody string
}
