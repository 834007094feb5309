// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/gateway/shopify"
)

// Sizes provisioned for every new product, in creation order
var Sizes = []string{"XS", "S", "M", "L", "XL"}

// DefaultSizeQuantities is the fixed per-size on-hand table applied when the
// form does not override a size
var DefaultSizeQuantities = map[string]int{
	"XS": 10,
	"S":  20,
	"M":  30,
	"L":  40,
	"XL": 50,
}

// Gateway is the slice of the commerce gateway product provisioning needs
type Gateway interface {
	CreateProduct(ctx context.Context, title, description, productType string) (*shopify.Product, error)
	CreateVariant(ctx context.Context, productID, title, price, sku string) error
	GetProductWithVariants(ctx context.Context, productID string) (*shopify.Product, error)
	GetDefaultLocation(ctx context.Context) (*shopify.Location, error)
	SetInventoryTracking(ctx context.Context, inventoryItemID string, tracked bool) error
	SetOnHandQuantity(ctx context.Context, inventoryItemID, locationID string, quantity int) error
}

// Service handles admin product provisioning
type Service struct {
	gateway Gateway
	logger  *logrus.Logger
}

// NewService creates a new catalog service
func NewService(gateway Gateway, logger *logrus.Logger) *Service {
	return &Service{
		gateway: gateway,
		logger:  logger,
	}
}

// CreateProductRequest represents the admin product creation form
type CreateProductRequest struct {
	Title          string         `json:"title" binding:"required"`
	Description    string         `json:"description"`
	ProductType    string         `json:"product_type"`
	Price          string         `json:"price" binding:"required"`
	SKUPrefix      string         `json:"sku_prefix"`
	SizeQuantities map[string]int `json:"size_quantities"`
}

// StepResult records the outcome of one provisioning step
type StepResult struct {
	Step    string `json:"step"`
	Size    string `json:"size,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ProvisioningResult summarizes a product provisioning run. Success is true
// whenever the base product exists, even when some variant inventory steps
// failed; the gateway offers no cross-resource transaction, so partial
// success is preferred over losing the whole product.
type ProvisioningResult struct {
	Success   bool         `json:"success"`
	ProductID string       `json:"product_id"`
	Steps     []StepResult `json:"steps"`
}

// CreateProduct provisions a product end to end: base product, one variant
// per size, a re-fetch for canonical variant ids, then per-variant inventory
// tracking and on-hand quantity at the default location. Every step after
// the base product is independently fallible and recorded in the result.
func (s *Service) CreateProduct(ctx context.Context, req *CreateProductRequest) (*ProvisioningResult, error) {
	result := &ProvisioningResult{}

	product, err := s.gateway.CreateProduct(ctx, req.Title, req.Description, req.ProductType)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	result.ProductID = product.ID
	result.Success = true
	result.Steps = append(result.Steps, StepResult{Step: "product_create", Success: true})

	// Variants are created sequentially so the gateway keeps the size order
	for _, size := range Sizes {
		sku := ""
		if req.SKUPrefix != "" {
			sku = fmt.Sprintf("%s-%s", req.SKUPrefix, size)
		}
		if err := s.gateway.CreateVariant(ctx, product.ID, size, req.Price, sku); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"product_id": product.ID,
				"size":       size,
			}).Error("Failed to create variant")
			result.Steps = append(result.Steps, StepResult{Step: "variant_create", Size: size, Error: err.Error()})
			continue
		}
		result.Steps = append(result.Steps, StepResult{Step: "variant_create", Size: size, Success: true})
	}

	// Re-fetch for canonical variant and inventory item ids
	fresh, err := s.gateway.GetProductWithVariants(ctx, product.ID)
	if err != nil {
		s.logger.WithError(err).WithField("product_id", product.ID).Error("Failed to re-fetch product after variant creation")
		result.Steps = append(result.Steps, StepResult{Step: "product_refetch", Error: err.Error()})
		return result, nil
	}
	result.Steps = append(result.Steps, StepResult{Step: "product_refetch", Success: true})

	location, err := s.gateway.GetDefaultLocation(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("product_id", product.ID).Error("Failed to resolve default inventory location")
		result.Steps = append(result.Steps, StepResult{Step: "location_resolve", Error: err.Error()})
		return result, nil
	}
	result.Steps = append(result.Steps, StepResult{Step: "location_resolve", Success: true})

	for _, variant := range fresh.Variants {
		if err := s.provisionVariantInventory(ctx, &variant, location, req.SizeQuantities); err != nil {
			// A failed variant is skipped, the remaining ones still get provisioned
			s.logger.WithError(err).WithFields(logrus.Fields{
				"product_id": product.ID,
				"variant_id": variant.ID,
				"size":       variant.Title,
			}).Error("Failed to provision variant inventory")
			result.Steps = append(result.Steps, StepResult{Step: "inventory_setup", Size: variant.Title, Error: err.Error()})
			continue
		}
		result.Steps = append(result.Steps, StepResult{Step: "inventory_setup", Size: variant.Title, Success: true})
	}

	return result, nil
}

func (s *Service) provisionVariantInventory(ctx context.Context, variant *shopify.ProductVariant, location *shopify.Location, overrides map[string]int) error {
	if variant.InventoryItemID == "" {
		return fmt.Errorf("variant %s has no inventory item", variant.ID)
	}

	if !variant.Tracked {
		if err := s.gateway.SetInventoryTracking(ctx, variant.InventoryItemID, true); err != nil {
			return fmt.Errorf("failed to enable tracking: %w", err)
		}
	}

	quantity, ok := overrides[variant.Title]
	if !ok {
		quantity = DefaultSizeQuantities[variant.Title]
	}

	if err := s.gateway.SetOnHandQuantity(ctx, variant.InventoryItemID, location.ID, quantity); err != nil {
		return fmt.Errorf("failed to set on-hand quantity: %w", err)
	}

	return nil
}
