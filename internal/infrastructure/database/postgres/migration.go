// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/domain/newsletter"
	"github.com/your-org/storefront-backend/internal/domain/returns"
	"github.com/your-org/storefront-backend/internal/domain/review"
	"github.com/your-org/storefront-backend/internal/domain/template"
	"github.com/your-org/storefront-backend/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Define all models that need migration in dependency order
	models := []interface{}{
		&user.User{},
		&template.EmailTemplate{},
		&newsletter.Subscriber{},

		&returns.Return{},
		&returns.ReturnItem{},

		&review.Review{},
		&review.ReviewItem{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_return_items_product ON return_items (product_name, variant)",
		"CREATE INDEX IF NOT EXISTS idx_review_items_product ON review_items (product_name, variant)",
		"CREATE INDEX IF NOT EXISTS idx_returns_order_status ON returns (order_number, status)",
	}

	for _, stmt := range indexes {
		if err := m.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

// SeedInitialData creates the reserved system template and a first admin
// account when the user table is empty. Development convenience only.
func (m *Migration) SeedInitialData() error {
	if err := template.NewService(m.db).EnsureSystemTemplates(context.Background()); err != nil {
		return err
	}

	var count int64
	if err := m.db.Model(&user.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	admin := &user.User{
		ID:       uuid.NewString(),
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: string(hashed),
	}
	if err := m.db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Println("🌱 Seeded initial admin user (admin@example.com)")
	return nil
}
