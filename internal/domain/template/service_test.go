// internal/domain/template/service_test.go
package template

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&EmailTemplate{}))
	require.NoError(t, db.Exec("DELETE FROM email_templates").Error)

	return NewService(db)
}

func TestEnsureSystemTemplatesIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureSystemTemplates(ctx))
	require.NoError(t, svc.EnsureSystemTemplates(ctx))

	templates, err := svc.GetTemplates(ctx)
	require.NoError(t, err)
	assert.Len(t, templates, 2)

	_, err = svc.GetTemplateByName(ctx, SignupTemplateName)
	assert.NoError(t, err)
	_, err = svc.GetTemplateByName(ctx, CancellationTemplateName)
	assert.NoError(t, err)
}

func TestCreateTemplateUniqueName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateTemplate(ctx, &CreateTemplateRequest{Name: "promo", Subject: "Hi", Content: "<p>Hi</p>"})
	require.NoError(t, err)

	_, err = svc.CreateTemplate(ctx, &CreateTemplateRequest{Name: "promo", Subject: "Hi again", Content: "<p>Hi</p>"})
	var validation *apperrors.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestDeleteTemplateProtectsSignup(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureSystemTemplates(ctx))

	signup, err := svc.GetTemplateByName(ctx, SignupTemplateName)
	require.NoError(t, err)

	err = svc.DeleteTemplate(ctx, signup.ID)
	assert.ErrorIs(t, err, apperrors.ErrProtectedTemplate)

	// The cancellation template is seeded but not protected
	cancel, err := svc.GetTemplateByName(ctx, CancellationTemplateName)
	require.NoError(t, err)
	assert.NoError(t, svc.DeleteTemplate(ctx, cancel.ID))
}

func TestUpdateTemplate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tmpl, err := svc.CreateTemplate(ctx, &CreateTemplateRequest{Name: "promo", Subject: "Hi", Content: "<p>Hi</p>"})
	require.NoError(t, err)

	_, err = svc.UpdateTemplate(ctx, tmpl.ID, &UpdateTemplateRequest{Subject: "Hello", Content: "<p>Hello</p>"})
	require.NoError(t, err)

	stored, err := svc.GetTemplate(ctx, tmpl.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", stored.Subject)
}

func TestRenderSubstitutesTokens(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateTemplate(ctx, &CreateTemplateRequest{
		Name:    "promo",
		Subject: "Hello {{name}}",
		Content: "<p>{{name}}, your code is {{code}}. Use it, {{name}}!</p>",
	})
	require.NoError(t, err)

	subject, body, err := svc.Render(ctx, "promo", map[string]string{
		"name": "Jo",
		"code": "SAVE10",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello Jo", subject)
	assert.Equal(t, "<p>Jo, your code is SAVE10. Use it, Jo!</p>", body)

	// Unknown tokens stay verbatim
	_, body, err = svc.Render(ctx, "promo", map[string]string{"name": "Jo"})
	require.NoError(t, err)
	assert.Contains(t, body, "{{code}}")

	var notFound *apperrors.NotFoundError
	_, _, err = svc.Render(ctx, "missing", nil)
	assert.ErrorAs(t, err, &notFound)
}
