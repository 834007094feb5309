// internal/domain/newsletter/service.go
package newsletter

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/template"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// Mailer sends an HTML email
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// Service handles newsletter subscriptions and sends
type Service struct {
	db        *gorm.DB
	templates *template.Service
	mailer    Mailer
	logger    *logrus.Logger
}

// NewService creates a new newsletter service
func NewService(db *gorm.DB, templates *template.Service, mailer Mailer, logger *logrus.Logger) *Service {
	return &Service{
		db:        db,
		templates: templates,
		mailer:    mailer,
		logger:    logger,
	}
}

// Subscribe adds an email to the subscriber list. Subscribing twice with the
// same email is a no-op.
func (s *Service) Subscribe(ctx context.Context, email string) (*Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.NewValidation("a valid email address is required")
	}

	var existing Subscriber
	err := s.db.WithContext(ctx).First(&existing, "email = ?", email).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to check subscription: %w", err)
	}

	sub := &Subscriber{
		ID:    uuid.NewString(),
		Email: email,
	}
	if err := s.db.WithContext(ctx).Create(sub).Error; err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	return sub, nil
}

// Unsubscribe removes an email from the subscriber list
func (s *Service) Unsubscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.db.WithContext(ctx).Delete(&Subscriber{}, "email = ?", email).Error; err != nil {
		return fmt.Errorf("failed to remove subscription: %w", err)
	}
	return nil
}

// GetSubscribers lists all subscribers
func (s *Service) GetSubscribers(ctx context.Context) ([]Subscriber, error) {
	var subs []Subscriber
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve subscribers: %w", err)
	}
	return subs, nil
}

// SendResult summarizes a newsletter send
type SendResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// SendNewsletter renders the named template per subscriber and sends it to
// every subscriber. Per-recipient failures are logged and counted, never
// aborting the run.
func (s *Service) SendNewsletter(ctx context.Context, templateName string) (*SendResult, error) {
	subs, err := s.GetSubscribers(ctx)
	if err != nil {
		return nil, err
	}

	result := &SendResult{}
	for _, sub := range subs {
		subject, body, err := s.templates.Render(ctx, templateName, map[string]string{
			"email": sub.Email,
		})
		if err != nil {
			return result, err
		}
		if err := s.mailer.Send(ctx, sub.Email, subject, body); err != nil {
			s.logger.WithError(err).WithField("email", sub.Email).Error("Failed to send newsletter email")
			result.Failed++
			continue
		}
		result.Sent++
	}
	return result, nil
}
