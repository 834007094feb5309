// internal/domain/order/service.go
package order

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/template"
	"github.com/your-org/storefront-backend/internal/gateway/shopify"
)

// Gateway is the slice of the commerce gateway order operations need
type Gateway interface {
	CancelOrder(ctx context.Context, orderID, reason string, refund, restock bool) error
	GetCustomerOrders(ctx context.Context, customerAccessToken string, first int) (*shopify.Customer, []shopify.CustomerOrder, error)
}

// Mailer sends an HTML email
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// Service handles order operations against the commerce gateway
type Service struct {
	gateway   Gateway
	templates *template.Service
	mailer    Mailer
	logger    *logrus.Logger
}

// NewService creates a new order service
func NewService(gateway Gateway, templates *template.Service, mailer Mailer, logger *logrus.Logger) *Service {
	return &Service{
		gateway:   gateway,
		templates: templates,
		mailer:    mailer,
		logger:    logger,
	}
}

// CancelOrderRequest represents an admin order cancellation
type CancelOrderRequest struct {
	OrderID       string `json:"order_id" binding:"required"`
	OrderNumber   string `json:"order_number" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerName  string `json:"customer_name"`
	Reason        string `json:"reason"`
	Refund        bool   `json:"refund"`
	Restock       bool   `json:"restock"`
}

// CancelResult reports the cancellation outcome. EmailSent is false when the
// notification failed; the cancellation itself is never compensated.
type CancelResult struct {
	OrderID    string `json:"order_id"`
	Cancelled  bool   `json:"cancelled"`
	EmailSent  bool   `json:"email_sent"`
	EmailError string `json:"email_error,omitempty"`
}

// CancelOrder cancels the order on the gateway, then best-effort sends a
// templated cancellation notice
func (s *Service) CancelOrder(ctx context.Context, req *CancelOrderRequest) (*CancelResult, error) {
	if err := s.gateway.CancelOrder(ctx, req.OrderID, req.Reason, req.Refund, req.Restock); err != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}

	result := &CancelResult{
		OrderID:   req.OrderID,
		Cancelled: true,
	}

	subject, body, err := s.templates.Render(ctx, template.CancellationTemplateName, map[string]string{
		"name":         req.CustomerName,
		"email":        req.CustomerEmail,
		"order_number": req.OrderNumber,
	})
	if err != nil {
		s.logger.WithError(err).WithField("order_id", req.OrderID).Error("Failed to render cancellation template")
		result.EmailError = "cancellation email could not be prepared"
		return result, nil
	}

	if err := s.mailer.Send(ctx, req.CustomerEmail, subject, body); err != nil {
		s.logger.WithError(err).WithField("order_id", req.OrderID).Error("Failed to send cancellation email")
		result.EmailError = "cancellation email could not be sent"
		return result, nil
	}

	result.EmailSent = true
	return result, nil
}

// GetCustomerOrders lists orders for the customer holding the access token
func (s *Service) GetCustomerOrders(ctx context.Context, customerAccessToken string, first int) (*shopify.Customer, []shopify.CustomerOrder, error) {
	if first <= 0 || first > 50 {
		first = 20
	}
	return s.gateway.GetCustomerOrders(ctx, customerAccessToken, first)
}
