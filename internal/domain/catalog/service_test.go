// internal/domain/catalog/service_test.go
package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/gateway/shopify"
)

// fakeGateway records provisioning calls and supports failing individual
// steps to exercise the partial-success behavior
type fakeGateway struct {
	createdVariants []string
	quantities      map[string]int
	tracked         map[string]bool

	createProductErr error
	variantErrs      map[string]error
	refetchErr       error
	locationErr      error
	onHandErrs       map[string]error
	alreadyTracked   bool
	trackingCalls    int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		quantities:  map[string]int{},
		tracked:     map[string]bool{},
		variantErrs: map[string]error{},
		onHandErrs:  map[string]error{},
	}
}

func (f *fakeGateway) CreateProduct(ctx context.Context, title, description, productType string) (*shopify.Product, error) {
	if f.createProductErr != nil {
		return nil, f.createProductErr
	}
	return &shopify.Product{ID: "gid://shopify/Product/1", Title: title}, nil
}

func (f *fakeGateway) CreateVariant(ctx context.Context, productID, title, price, sku string) error {
	if err := f.variantErrs[title]; err != nil {
		return err
	}
	f.createdVariants = append(f.createdVariants, title)
	return nil
}

func (f *fakeGateway) GetProductWithVariants(ctx context.Context, productID string) (*shopify.Product, error) {
	if f.refetchErr != nil {
		return nil, f.refetchErr
	}
	product := &shopify.Product{ID: productID}
	for _, size := range f.createdVariants {
		product.Variants = append(product.Variants, shopify.ProductVariant{
			ID:              "gid://shopify/ProductVariant/" + size,
			Title:           size,
			InventoryItemID: "gid://shopify/InventoryItem/" + size,
			Tracked:         f.alreadyTracked,
		})
	}
	return product, nil
}

func (f *fakeGateway) GetDefaultLocation(ctx context.Context) (*shopify.Location, error) {
	if f.locationErr != nil {
		return nil, f.locationErr
	}
	return &shopify.Location{ID: "gid://shopify/Location/1", Name: "Main"}, nil
}

func (f *fakeGateway) SetInventoryTracking(ctx context.Context, inventoryItemID string, tracked bool) error {
	f.trackingCalls++
	f.tracked[inventoryItemID] = tracked
	return nil
}

func (f *fakeGateway) SetOnHandQuantity(ctx context.Context, inventoryItemID, locationID string, quantity int) error {
	if err := f.onHandErrs[inventoryItemID]; err != nil {
		return err
	}
	f.quantities[inventoryItemID] = quantity
	return nil
}

func newTestService(gw Gateway) *Service {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewService(gw, logger)
}

func request() *CreateProductRequest {
	return &CreateProductRequest{
		Title:     "Straight Jeans",
		Price:     "79.00",
		SKUPrefix: "SJ",
	}
}

func TestCreateProductProvisionsAllSizes(t *testing.T) {
	gw := newFakeGateway()
	svc := newTestService(gw)

	result, err := svc.CreateProduct(context.Background(), request())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "gid://shopify/Product/1", result.ProductID)
	assert.Equal(t, Sizes, gw.createdVariants)

	// Default on-hand table applied per size
	assert.Equal(t, 10, gw.quantities["gid://shopify/InventoryItem/XS"])
	assert.Equal(t, 50, gw.quantities["gid://shopify/InventoryItem/XL"])

	// product, 5 variants, refetch, location, 5 inventory setups
	assert.Len(t, result.Steps, 13)
	for _, step := range result.Steps {
		assert.True(t, step.Success, step.Step+" "+step.Size)
	}
}

func TestCreateProductQuantityOverrides(t *testing.T) {
	gw := newFakeGateway()
	svc := newTestService(gw)

	req := request()
	req.SizeQuantities = map[string]int{"M": 99}

	_, err := svc.CreateProduct(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 99, gw.quantities["gid://shopify/InventoryItem/M"])
	assert.Equal(t, 20, gw.quantities["gid://shopify/InventoryItem/S"])
}

func TestCreateProductBaseFailureIsFatal(t *testing.T) {
	gw := newFakeGateway()
	gw.createProductErr = errors.New("shop is locked")
	svc := newTestService(gw)

	_, err := svc.CreateProduct(context.Background(), request())
	assert.Error(t, err)
	assert.Empty(t, gw.createdVariants)
}

func TestCreateProductVariantFailureIsPartial(t *testing.T) {
	gw := newFakeGateway()
	gw.variantErrs["M"] = errors.New("variant rejected")
	svc := newTestService(gw)

	result, err := svc.CreateProduct(context.Background(), request())
	require.NoError(t, err)

	// The run still counts as a success; the failed size is recorded
	assert.True(t, result.Success)
	assert.NotContains(t, gw.createdVariants, "M")

	var failed []string
	for _, step := range result.Steps {
		if !step.Success {
			failed = append(failed, step.Step+":"+step.Size)
		}
	}
	assert.Equal(t, []string{"variant_create:M"}, failed)
}

func TestCreateProductInventoryFailureSkipsVariantOnly(t *testing.T) {
	gw := newFakeGateway()
	gw.onHandErrs["gid://shopify/InventoryItem/L"] = errors.New("location offline")
	svc := newTestService(gw)

	result, err := svc.CreateProduct(context.Background(), request())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.NotContains(t, gw.quantities, "gid://shopify/InventoryItem/L")
	assert.Equal(t, 50, gw.quantities["gid://shopify/InventoryItem/XL"])
}

func TestCreateProductRefetchFailureStopsInventory(t *testing.T) {
	gw := newFakeGateway()
	gw.refetchErr = errors.New("timeout")
	svc := newTestService(gw)

	result, err := svc.CreateProduct(context.Background(), request())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Empty(t, gw.quantities)
}

func TestCreateProductSkipsTrackingWhenAlreadyTracked(t *testing.T) {
	gw := newFakeGateway()
	gw.alreadyTracked = true
	svc := newTestService(gw)

	_, err := svc.CreateProduct(context.Background(), request())
	require.NoError(t, err)

	assert.Zero(t, gw.trackingCalls)
	assert.Len(t, gw.quantities, 5)
}
