// internal/domain/user/service_test.go
package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
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
	require.NoError(t, db.AutoMigrate(&User{}))
	require.NoError(t, db.Exec("DELETE FROM users").Error)

	cfg := &config.Config{}
	cfg.Security.BcryptCost = bcrypt.MinCost

	return NewService(db, cfg)
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc := newTestService(t)

	u, err := svc.CreateUser(context.Background(), &CreateUserRequest{
		Name:     "Alex",
		Email:    "Alex@Example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	// Email is normalized, password never stored as given
	assert.Equal(t, "alex@example.com", u.Email)
	assert.NotEqual(t, "supersecret", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("supersecret")))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, &CreateUserRequest{Name: "Alex", Email: "alex@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, &CreateUserRequest{Name: "Sam", Email: "ALEX@example.com", Password: "supersecret"})
	var validation *apperrors.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestUpdateUserKeepsPasswordWhenEmpty(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, &CreateUserRequest{Name: "Alex", Email: "alex@example.com", Password: "supersecret"})
	require.NoError(t, err)
	originalHash := u.Password

	_, err = svc.UpdateUser(ctx, u.ID, &UpdateUserRequest{Name: "Alexis", Email: "alex@example.com"})
	require.NoError(t, err)

	stored, err := svc.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alexis", stored.Name)
	assert.Equal(t, originalHash, stored.Password)
}

func TestDeleteLastUserRefused(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, &CreateUserRequest{Name: "Alex", Email: "alex@example.com", Password: "supersecret"})
	require.NoError(t, err)

	err = svc.DeleteUser(ctx, u.ID)
	assert.ErrorIs(t, err, apperrors.ErrLastUser)

	// With a second account the delete goes through
	second, err := svc.CreateUser(ctx, &CreateUserRequest{Name: "Sam", Email: "sam@example.com", Password: "supersecret"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, u.ID))

	users, err := svc.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, second.ID, users[0].ID)
}

func TestAuthenticate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, &CreateUserRequest{Name: "Alex", Email: "alex@example.com", Password: "supersecret"})
	require.NoError(t, err)

	u, err := svc.Authenticate(ctx, "alex@example.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, "Alex", u.Name)

	var unauthorized *apperrors.UnauthorizedError
	_, err = svc.Authenticate(ctx, "alex@example.com", "wrongpass")
	require.ErrorAs(t, err, &unauthorized)

	// Unknown accounts fail with the same message as bad passwords
	_, err = svc.Authenticate(ctx, "nobody@example.com", "supersecret")
	require.ErrorAs(t, err, &unauthorized)
}
