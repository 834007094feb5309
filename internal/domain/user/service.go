// internal/domain/user/service.go
package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
	"gorm.io/gorm"
)

// Service handles team user management
type Service struct {
	db        *gorm.DB
	passwords *auth.PasswordManager
	config    *config.Config
}

// NewService creates a new user service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:        db,
		passwords: auth.NewPasswordManager(cfg),
		config:    cfg,
	}
}

// CreateUserRequest represents team user creation data
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateUserRequest represents team user update data. Password is optional;
// when empty the stored hash is kept.
type UpdateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

// CreateUser creates a team user with a unique email and hashed password
func (s *Service) CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error) {
	email := normalizeEmail(req.Email)

	taken, err := s.emailTaken(ctx, email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewValidation("a user with email %s already exists", email)
	}

	hashed, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hashed,
	}
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// UpdateUser updates a team user, re-checking email uniqueness and hashing
// any new password
func (s *Service) UpdateUser(ctx context.Context, userID string, req *UpdateUserRequest) (*User, error) {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)
	taken, err := s.emailTaken(ctx, email, userID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewValidation("a user with email %s already exists", email)
	}

	updates := map[string]interface{}{
		"name":  strings.TrimSpace(req.Name),
		"email": email,
	}
	if req.Password != "" {
		hashed, err := s.passwords.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}

	if err := s.db.WithContext(ctx).Model(u).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return u, nil
}

// DeleteUser removes a team user. Refused when it would leave zero accounts.
func (s *Service) DeleteUser(ctx context.Context, userID string) error {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count <= 1 {
		return apperrors.ErrLastUser
	}

	if err := s.db.WithContext(ctx).Delete(u).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// GetUsers lists all team users
func (s *Service) GetUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	return users, nil
}

// GetUser retrieves a team user by id
func (s *Service) GetUser(ctx context.Context, userID string) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).First(&u, "id = ?", userID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, &apperrors.NotFoundError{Resource: "user", ID: userID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return &u, nil
}

// Authenticate verifies team user credentials and returns the account
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).First(&u, "email = ?", normalizeEmail(email)).Error
	if err == gorm.ErrRecordNotFound {
		return nil, &apperrors.UnauthorizedError{Message: "invalid email or password"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	if err := s.passwords.VerifyPassword(password, u.Password); err != nil {
		return nil, &apperrors.UnauthorizedError{Message: "invalid email or password"}
	}
	return &u, nil
}

func (s *Service) emailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	query := s.db.WithContext(ctx).Model(&User{}).Where("email = ?", email)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	return count > 0, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
