// internal/domain/returns/service.go
package returns

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// Mailer sends an HTML email. Sends are best-effort: a failure is logged and
// never rolls back the committed return.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// Service handles return workflow business logic
type Service struct {
	db     *gorm.DB
	mailer Mailer
	logger *logrus.Logger
}

// NewService creates a new returns service
func NewService(db *gorm.DB, mailer Mailer, logger *logrus.Logger) *Service {
	return &Service{
		db:     db,
		mailer: mailer,
		logger: logger,
	}
}

// SubmitReturnItem is one requested item in a return submission
type SubmitReturnItem struct {
	ProductName string `json:"product_name" binding:"required"`
	Variant     string `json:"variant" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
}

// SubmitReturnRequest represents a customer return submission
type SubmitReturnRequest struct {
	OrderNumber     string             `json:"order_number" binding:"required"`
	OrderID         string             `json:"order_id" binding:"required"`
	CustomerEmail   string             `json:"customer_email" binding:"required,email"`
	CustomerID      string             `json:"customer_id"`
	AdditionalNotes string             `json:"additional_notes"`
	Items           []SubmitReturnItem `json:"items" binding:"required,min=1,dive"`
}

// ListRequest represents admin return list query parameters
type ListRequest struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=20"`
	Status string `form:"status"`
}

// ListResponse represents a page of returns
type ListResponse struct {
	Returns    []Return `json:"returns"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	TotalPages int      `json:"total_pages"`
}

// SubmitReturn validates the submission against already-returned quantities
// and creates the return with its items in one transaction. The duplicate
// check and the insert are not covered by a uniqueness constraint, so two
// concurrent submissions for the same item can both pass; see DESIGN.md.
func (s *Service) SubmitReturn(ctx context.Context, req *SubmitReturnRequest) (*Return, error) {
	seen := make(map[string]bool, len(req.Items))
	for _, item := range req.Items {
		if strings.TrimSpace(item.ProductName) == "" || strings.TrimSpace(item.Variant) == "" {
			return nil, apperrors.NewValidation("every item needs a product name and variant")
		}
		if strings.TrimSpace(item.Reason) == "" {
			return nil, apperrors.NewValidation("please select a reason for each item")
		}
		if item.Quantity < 1 {
			return nil, apperrors.NewValidation("item quantity must be at least 1")
		}
		// An item listed twice in one submission is a duplicate too
		key := itemKey(item.ProductName, item.Variant)
		if seen[key] {
			return nil, apperrors.ErrDuplicateReturn
		}
		seen[key] = true
	}

	// Cumulative already-returned quantity per (product_name, variant) over
	// all non-rejected returns for this order.
	returned, err := s.returnedQuantities(ctx, req.OrderNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing returns: %w", err)
	}

	for _, item := range req.Items {
		if returned[itemKey(item.ProductName, item.Variant)] > 0 {
			return nil, apperrors.ErrDuplicateReturn
		}
	}

	ret := &Return{
		ID:              uuid.NewString(),
		OrderNumber:     req.OrderNumber,
		OrderID:         req.OrderID,
		CustomerID:      req.CustomerID,
		CustomerEmail:   req.CustomerEmail,
		Status:          StatusPending,
		AdditionalNotes: req.AdditionalNotes,
	}
	for _, item := range req.Items {
		ret.Items = append(ret.Items, ReturnItem{
			ID:          uuid.NewString(),
			ReturnID:    ret.ID,
			ProductName: item.ProductName,
			Variant:     item.Variant,
			Reason:      item.Reason,
			Quantity:    item.Quantity,
		})
	}

	if err := s.db.WithContext(ctx).Create(ret).Error; err != nil {
		return nil, fmt.Errorf("failed to create return: %w", err)
	}

	// Notification is best-effort; the return is already committed
	s.notifySubmission(ctx, ret)

	return ret, nil
}

// GetReturns retrieves returns with pagination and optional status filter
func (s *Service) GetReturns(ctx context.Context, req *ListRequest) (*ListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}

	query := s.db.WithContext(ctx).Model(&Return{}).Preload("Items")
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count returns: %w", err)
	}

	var items []Return
	offset := (req.Page - 1) * req.Limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(req.Limit).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve returns: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))

	return &ListResponse{
		Returns:    items,
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages,
	}, nil
}

// GetReturn retrieves a single return with its items
func (s *Service) GetReturn(ctx context.Context, returnID string) (*Return, error) {
	var ret Return
	err := s.db.WithContext(ctx).Preload("Items").First(&ret, "id = ?", returnID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, &apperrors.NotFoundError{Resource: "return", ID: returnID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve return: %w", err)
	}
	return &ret, nil
}

// UpdateReturnStatus overwrites the status unconditionally and returns the
// updated record
func (s *Service) UpdateReturnStatus(ctx context.Context, returnID, status string) (*Return, error) {
	if !ValidStatus(status) {
		return nil, apperrors.NewValidation("unknown return status: %s", status)
	}

	result := s.db.WithContext(ctx).Model(&Return{}).Where("id = ?", returnID).Update("status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update return status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, &apperrors.NotFoundError{Resource: "return", ID: returnID}
	}

	return s.GetReturn(ctx, returnID)
}

// UpdateReturnCustomerInfo rewrites the stored customer email. Only the
// email is stored; any customer name shown for a return is derived from the
// email local-part at display time.
func (s *Service) UpdateReturnCustomerInfo(ctx context.Context, returnID, customerEmail string) (*Return, error) {
	if strings.TrimSpace(customerEmail) == "" {
		return nil, apperrors.NewValidation("customer email is required")
	}

	result := s.db.WithContext(ctx).Model(&Return{}).Where("id = ?", returnID).Update("customer_email", customerEmail)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update customer info: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, &apperrors.NotFoundError{Resource: "return", ID: returnID}
	}

	return s.GetReturn(ctx, returnID)
}

// UpdateItemRequest represents an admin edit of one return item
type UpdateItemRequest struct {
	ProductName string `json:"product_name" binding:"required"`
	Variant     string `json:"variant" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
}

// UpdateReturnProductInfo rewrites the fields of one return item
func (s *Service) UpdateReturnProductInfo(ctx context.Context, itemID string, req *UpdateItemRequest) (*ReturnItem, error) {
	var item ReturnItem
	err := s.db.WithContext(ctx).First(&item, "id = ?", itemID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, &apperrors.NotFoundError{Resource: "return item", ID: itemID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve return item: %w", err)
	}

	updates := map[string]interface{}{
		"product_name": req.ProductName,
		"variant":      req.Variant,
		"reason":       req.Reason,
		"quantity":     req.Quantity,
	}
	if err := s.db.WithContext(ctx).Model(&item).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update return item: %w", err)
	}

	return &item, nil
}

// returnedQuantities sums quantities per (product_name, variant) across all
// non-rejected returns of the order
func (s *Service) returnedQuantities(ctx context.Context, orderNumber string) (map[string]int, error) {
	var rows []struct {
		ProductName string
		Variant     string
		Total       int
	}
	err := s.db.WithContext(ctx).
		Table("return_items").
		Select("return_items.product_name, return_items.variant, SUM(return_items.quantity) AS total").
		Joins("JOIN returns ON returns.id = return_items.return_id").
		Where("returns.order_number = ? AND returns.status <> ?", orderNumber, StatusRejected).
		Group("return_items.product_name, return_items.variant").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	returned := make(map[string]int, len(rows))
	for _, row := range rows {
		returned[itemKey(row.ProductName, row.Variant)] = row.Total
	}
	return returned, nil
}

func itemKey(productName, variant string) string {
	return productName + "|" + variant
}

// notifySubmission sends the return-received email. Failures are logged and
// swallowed.
func (s *Service) notifySubmission(ctx context.Context, ret *Return) {
	if s.mailer == nil {
		return
	}

	subject := fmt.Sprintf("Return request received for order %s", ret.OrderNumber)
	if err := s.mailer.Send(ctx, ret.CustomerEmail, subject, s.formatSubmissionEmail(ret)); err != nil {
		s.logger.WithError(err).WithField("return_id", ret.ID).Error("Failed to send return confirmation email")
	}
}

func (s *Service) formatSubmissionEmail(ret *Return) string {
	var b strings.Builder
	b.WriteString("<h2>We received your return request</h2>")
	b.WriteString(fmt.Sprintf("<p>Order <strong>%s</strong></p>", html.EscapeString(ret.OrderNumber)))
	b.WriteString("<table border=\"1\" cellpadding=\"6\" cellspacing=\"0\">")
	b.WriteString("<tr><th>Product</th><th>Variant</th><th>Reason</th><th>Qty</th></tr>")
	for _, item := range ret.Items {
		b.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>%s</td><td>%d</td></tr>",
			html.EscapeString(item.ProductName),
			html.EscapeString(item.Variant),
			html.EscapeString(item.Reason),
			item.Quantity,
		))
	}
	b.WriteString("</table>")
	if ret.AdditionalNotes != "" {
		b.WriteString(fmt.Sprintf("<p>Notes: %s</p>", html.EscapeString(ret.AdditionalNotes)))
	}
	b.WriteString("<p>We will email you once your request has been reviewed.</p>")
	return b.String()
}
