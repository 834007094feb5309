// internal/domain/customer/service.go
package customer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/template"
	"github.com/your-org/storefront-backend/internal/gateway/shopify"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
)

// Gateway is the slice of the commerce gateway customer accounts need
type Gateway interface {
	CreateCustomer(ctx context.Context, email, password, firstName, lastName string) (*shopify.Customer, error)
	CreateCustomerAccessToken(ctx context.Context, email, password string) (*shopify.CustomerAccessToken, error)
}

// Mailer sends an HTML email
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// Service handles customer accounts. Accounts live on the commerce gateway;
// this service only mediates registration and login.
type Service struct {
	gateway   Gateway
	templates *template.Service
	mailer    Mailer
	config    *config.Config
	logger    *logrus.Logger
}

// NewService creates a new customer service
func NewService(gateway Gateway, templates *template.Service, mailer Mailer, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		gateway:   gateway,
		templates: templates,
		mailer:    mailer,
		config:    cfg,
		logger:    logger,
	}
}

// RegisterRequest represents a customer registration
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// Register creates the customer on the gateway, then best-effort sends the
// signedup welcome email
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*shopify.Customer, error) {
	created, err := s.gateway.CreateCustomer(ctx, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	subject, body, err := s.templates.Render(ctx, template.SignupTemplateName, map[string]string{
		"name":       req.FirstName,
		"email":      req.Email,
		"store_name": s.config.Email.FromName,
	})
	if err != nil {
		s.logger.WithError(err).Error("Failed to render signup template")
		return created, nil
	}
	if err := s.mailer.Send(ctx, req.Email, subject, body); err != nil {
		s.logger.WithError(err).WithField("email", req.Email).Error("Failed to send welcome email")
	}

	return created, nil
}

// LoginRequest represents a customer login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Session is the gateway-issued customer session. The HTTP layer stores
// AccessToken in an HTTP-only cookie expiring at ExpiresAt.
type Session struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Login exchanges credentials for a gateway customer access token. A
// rejection from the gateway surfaces as the same message whether the
// account is unknown or the password is wrong.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*Session, error) {
	token, err := s.gateway.CreateCustomerAccessToken(ctx, req.Email, req.Password)
	if err != nil {
		var userErrs *shopify.UserErrorsError
		if errors.As(err, &userErrs) {
			return nil, &apperrors.UnauthorizedError{Message: "invalid email or password"}
		}
		return nil, err
	}

	expiresAt, err := time.Parse(time.RFC3339, token.ExpiresAt)
	if err != nil {
		// Fall back to the cookie default when the gateway timestamp is odd
		expiresAt = time.Now().UTC().Add(24 * time.Hour)
	}

	return &Session{
		AccessToken: token.AccessToken,
		ExpiresAt:   expiresAt,
	}, nil
}
