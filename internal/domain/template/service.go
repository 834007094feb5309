// internal/domain/template/service.go
package template

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// Service handles email template management
type Service struct {
	db *gorm.DB
}

// NewService creates a new template service
func NewService(db *gorm.DB) *Service {
	return &Service{
		db: db,
	}
}

const defaultSignupSubject = "Welcome to {{store_name}}!"

const defaultSignupContent = `<h2>Welcome, {{name}}!</h2>
<p>Your account {{email}} has been created.</p>
<p>Happy shopping!</p>`

const defaultCancellationSubject = "Your order {{order_number}} has been cancelled"

const defaultCancellationContent = `<h2>Order cancelled</h2>
<p>Hi {{name}},</p>
<p>Your order <strong>{{order_number}}</strong> has been cancelled.
If you were charged, the refund is on its way.</p>`

// EnsureSystemTemplates creates the built-in templates when absent. Called
// at startup; idempotent.
func (s *Service) EnsureSystemTemplates(ctx context.Context) error {
	defaults := []EmailTemplate{
		{Name: SignupTemplateName, Subject: defaultSignupSubject, Content: defaultSignupContent},
		{Name: CancellationTemplateName, Subject: defaultCancellationSubject, Content: defaultCancellationContent},
	}

	for _, def := range defaults {
		var count int64
		if err := s.db.WithContext(ctx).Model(&EmailTemplate{}).Where("name = ?", def.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check system templates: %w", err)
		}
		if count > 0 {
			continue
		}

		tmpl := &EmailTemplate{
			ID:      uuid.NewString(),
			Name:    def.Name,
			Subject: def.Subject,
			Content: def.Content,
		}
		if err := s.db.WithContext(ctx).Create(tmpl).Error; err != nil {
			return fmt.Errorf("failed to create %s template: %w", def.Name, err)
		}
	}
	return nil
}

// CreateTemplateRequest represents template creation data
type CreateTemplateRequest struct {
	Name    string `json:"name" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreateTemplate creates a new template with a unique name
func (s *Service) CreateTemplate(ctx context.Context, req *CreateTemplateRequest) (*EmailTemplate, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidation("template name is required")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&EmailTemplate{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check template name: %w", err)
	}
	if count > 0 {
		return nil, apperrors.NewValidation("a template named %q already exists", name)
	}

	tmpl := &EmailTemplate{
		ID:      uuid.NewString(),
		Name:    name,
		Subject: req.Subject,
		Content: req.Content,
	}
	if err := s.db.WithContext(ctx).Create(tmpl).Error; err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return tmpl, nil
}

// UpdateTemplateRequest represents template update data
type UpdateTemplateRequest struct {
	Subject string `json:"subject" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdateTemplate rewrites a template's subject and content
func (s *Service) UpdateTemplate(ctx context.Context, templateID string, req *UpdateTemplateRequest) (*EmailTemplate, error) {
	tmpl, err := s.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"subject": req.Subject,
		"content": req.Content,
	}
	if err := s.db.WithContext(ctx).Model(tmpl).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	return tmpl, nil
}

// DeleteTemplate removes a template. The signedup system template is
// protected.
func (s *Service) DeleteTemplate(ctx context.Context, templateID string) error {
	tmpl, err := s.GetTemplate(ctx, templateID)
	if err != nil {
		return err
	}
	if tmpl.Name == SignupTemplateName {
		return apperrors.ErrProtectedTemplate
	}
	if err := s.db.WithContext(ctx).Delete(tmpl).Error; err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}

// GetTemplates lists all templates
func (s *Service) GetTemplates(ctx context.Context) ([]EmailTemplate, error) {
	var templates []EmailTemplate
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve templates: %w", err)
	}
	return templates, nil
}

// GetTemplate retrieves a template by id
func (s *Service) GetTemplate(ctx context.Context, templateID string) (*EmailTemplate, error) {
	var tmpl EmailTemplate
	err := s.db.WithContext(ctx).First(&tmpl, "id = ?", templateID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, &apperrors.NotFoundError{Resource: "email template", ID: templateID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve template: %w", err)
	}
	return &tmpl, nil
}

// GetTemplateByName retrieves a template by its unique name
func (s *Service) GetTemplateByName(ctx context.Context, name string) (*EmailTemplate, error) {
	var tmpl EmailTemplate
	err := s.db.WithContext(ctx).First(&tmpl, "name = ?", name).Error
	if err == gorm.ErrRecordNotFound {
		return nil, &apperrors.NotFoundError{Resource: "email template", ID: name}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve template: %w", err)
	}
	return &tmpl, nil
}

// Render substitutes {{token}} placeholders in the named template and
// returns the rendered subject and HTML body
func (s *Service) Render(ctx context.Context, name string, tokens map[string]string) (string, string, error) {
	tmpl, err := s.GetTemplateByName(ctx, name)
	if err != nil {
		return "", "", err
	}

	subject := tmpl.Subject
	content := tmpl.Content
	for token, value := range tokens {
		placeholder := "{{" + token + "}}"
		subject = strings.ReplaceAll(subject, placeholder, value)
		content = strings.ReplaceAll(content, placeholder, value)
	}
	return subject, content, nil
}
