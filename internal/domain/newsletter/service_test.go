// internal/domain/newsletter/service_test.go
package newsletter

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/domain/template"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type recordingMailer struct {
	sent    []string
	failFor map[string]error
}

func (m *recordingMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := m.failFor[to]; err != nil {
		return err
	}
	m.sent = append(m.sent, to)
	return nil
}

func newTestService(t *testing.T) (*Service, *recordingMailer, *template.Service) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Subscriber{}, &template.EmailTemplate{}))
	require.NoError(t, db.Exec("DELETE FROM subscribers").Error)
	require.NoError(t, db.Exec("DELETE FROM email_templates").Error)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	templates := template.NewService(db)
	mailer := &recordingMailer{failFor: map[string]error{}}
	return NewService(db, templates, mailer, log), mailer, templates
}

func TestSubscribeIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Subscribe(ctx, " Jo@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "jo@example.com", first.Email)

	second, err := svc.Subscribe(ctx, "jo@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	subs, err := svc.GetSubscribers(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Subscribe(context.Background(), "not-an-email")
	var validation *apperrors.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestUnsubscribe(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "jo@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe(ctx, "JO@example.com"))

	subs, err := svc.GetSubscribers(ctx)
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestSendNewsletterCountsFailures(t *testing.T) {
	svc, mailer, templates := newTestService(t)
	ctx := context.Background()

	_, err := templates.CreateTemplate(ctx, &template.CreateTemplateRequest{
		Name:    "weekly",
		Subject: "News for {{email}}",
		Content: "<p>Hello {{email}}</p>",
	})
	require.NoError(t, err)

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := svc.Subscribe(ctx, email)
		require.NoError(t, err)
	}
	mailer.failFor["b@example.com"] = errors.New("mailbox full")

	result, err := svc.SendNewsletter(ctx, "weekly")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.NotContains(t, mailer.sent, "b@example.com")
}

func TestSendNewsletterUnknownTemplate(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "a@example.com")
	require.NoError(t, err)

	_, err = svc.SendNewsletter(ctx, "missing")
	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
