// internal/domain/cart/service_test.go
package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/gateway/shopify"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
)

// fakeGateway keeps an in-memory cart and mimics the gateway's merge
// behavior: adding an existing merchandise id bumps the line instead of
// creating a second one.
type fakeGateway struct {
	cart       *shopify.Cart
	nextLine   int
	getErr     error
	mutateErr  error
	getCalls   int
	expireCart bool
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{}
}

func (f *fakeGateway) CreateCart(ctx context.Context, lines []shopify.CartLineInput) (*shopify.Cart, error) {
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	f.cart = &shopify.Cart{ID: "gid://shopify/Cart/test", CheckoutURL: "https://shop.example/checkout"}
	for _, line := range lines {
		f.addLine(line.MerchandiseID, line.Quantity)
	}
	return f.cart, nil
}

func (f *fakeGateway) GetCart(ctx context.Context, cartID string) (*shopify.Cart, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.expireCart || f.cart == nil || f.cart.ID != cartID {
		return nil, nil
	}
	return f.cart, nil
}

func (f *fakeGateway) AddCartLines(ctx context.Context, cartID string, lines []shopify.CartLineInput) (*shopify.Cart, error) {
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	for _, line := range lines {
		f.addLine(line.MerchandiseID, line.Quantity)
	}
	return f.cart, nil
}

func (f *fakeGateway) UpdateCartLines(ctx context.Context, cartID string, lines []shopify.CartLineUpdateInput) (*shopify.Cart, error) {
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	for _, update := range lines {
		for i := range f.cart.Lines.Edges {
			if f.cart.Lines.Edges[i].Node.ID == update.ID {
				f.cart.Lines.Edges[i].Node.Quantity = update.Quantity
			}
		}
	}
	f.recount()
	return f.cart, nil
}

func (f *fakeGateway) RemoveCartLines(ctx context.Context, cartID string, lineIDs []string) (*shopify.Cart, error) {
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	for _, id := range lineIDs {
		for i := range f.cart.Lines.Edges {
			if f.cart.Lines.Edges[i].Node.ID == id {
				f.cart.Lines.Edges = append(f.cart.Lines.Edges[:i], f.cart.Lines.Edges[i+1:]...)
				break
			}
		}
	}
	f.recount()
	return f.cart, nil
}

func (f *fakeGateway) addLine(merchandiseID string, quantity int) {
	for i := range f.cart.Lines.Edges {
		if f.cart.Lines.Edges[i].Node.Merchandise.ID == merchandiseID {
			f.cart.Lines.Edges[i].Node.Quantity += quantity
			f.recount()
			return
		}
	}
	f.nextLine++
	var line shopify.CartLine
	line.ID = "line-" + string(rune('0'+f.nextLine))
	line.Quantity = quantity
	line.Merchandise.ID = merchandiseID
	f.cart.Lines.Edges = append(f.cart.Lines.Edges, struct {
		Node shopify.CartLine `json:"node"`
	}{Node: line})
	f.recount()
}

func (f *fakeGateway) recount() {
	total := 0
	for _, edge := range f.cart.Lines.Edges {
		total += edge.Node.Quantity
	}
	f.cart.TotalQuantity = total
}

func newTestService(gw Gateway) *Service {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewService(gw, nil, &config.Config{}, logger)
}

func TestAddItemCreatesCartLazily(t *testing.T) {
	gw := newFakeGateway()
	svc := newTestService(gw)

	cartID, view, err := svc.AddItem(context.Background(), "", "var-1", 2)
	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/Cart/test", cartID)
	assert.Equal(t, 2, view.TotalQuantity)
	require.Len(t, view.Lines, 1)
}

func TestAddItemMergesDuplicateMerchandise(t *testing.T) {
	gw := newFakeGateway()
	svc := newTestService(gw)
	ctx := context.Background()

	cartID, _, err := svc.AddItem(ctx, "", "var-1", 1)
	require.NoError(t, err)

	_, view, err := svc.AddItem(ctx, cartID, "var-1", 2)
	require.NoError(t, err)

	// Still one line per merchandise id
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 3, view.Lines[0].Quantity)
}

func TestUpdateItemQuantityLifecycle(t *testing.T) {
	gw := newFakeGateway()
	svc := newTestService(gw)
	ctx := context.Background()

	cartID, _, err := svc.AddItem(ctx, "", "var-1", 1)
	require.NoError(t, err)

	view, err := svc.UpdateItemQuantity(ctx, cartID, "var-1", 3)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 3, view.Lines[0].Quantity)

	// Quantity zero removes the line
	view, err = svc.UpdateItemQuantity(ctx, cartID, "var-1", 0)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Equal(t, 0, view.TotalQuantity)
}

func TestUpdateItemQuantityAddsMissingLine(t *testing.T) {
	gw := newFakeGateway()
	svc := newTestService(gw)
	ctx := context.Background()

	cartID, _, err := svc.AddItem(ctx, "", "var-1", 1)
	require.NoError(t, err)

	view, err := svc.UpdateItemQuantity(ctx, cartID, "var-2", 4)
	require.NoError(t, err)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, 5, view.TotalQuantity)
}

func TestUpdateItemQuantityZeroOnMissingLineIsNoOp(t *testing.T) {
	gw := newFakeGateway()
	svc := newTestService(gw)
	ctx := context.Background()

	cartID, _, err := svc.AddItem(ctx, "", "var-1", 1)
	require.NoError(t, err)

	view, err := svc.UpdateItemQuantity(ctx, cartID, "var-9", 0)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
}

func TestRemoveItemMissingLine(t *testing.T) {
	gw := newFakeGateway()
	svc := newTestService(gw)
	ctx := context.Background()

	cartID, _, err := svc.AddItem(ctx, "", "var-1", 1)
	require.NoError(t, err)

	_, err = svc.RemoveItem(ctx, cartID, "var-9")
	assert.ErrorIs(t, err, apperrors.ErrItemNotFound)
}

func TestOperationsWithoutCartSession(t *testing.T) {
	svc := newTestService(newFakeGateway())
	ctx := context.Background()

	_, err := svc.GetCart(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrMissingCart)

	_, err = svc.UpdateItemQuantity(ctx, "", "var-1", 1)
	assert.ErrorIs(t, err, apperrors.ErrMissingCart)

	_, err = svc.RemoveItem(ctx, "", "var-1")
	assert.ErrorIs(t, err, apperrors.ErrMissingCart)

	_, err = svc.CheckoutURL(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrMissingCart)
}

func TestExpiredRemoteCartTreatedAsMissing(t *testing.T) {
	gw := newFakeGateway()
	svc := newTestService(gw)
	ctx := context.Background()

	cartID, _, err := svc.AddItem(ctx, "", "var-1", 1)
	require.NoError(t, err)

	gw.expireCart = true
	_, err = svc.GetCart(ctx, cartID)
	assert.ErrorIs(t, err, apperrors.ErrMissingCart)
}

func TestGatewayFailureWrapsMutationError(t *testing.T) {
	gw := newFakeGateway()
	svc := newTestService(gw)
	ctx := context.Background()

	cartID, _, err := svc.AddItem(ctx, "", "var-1", 1)
	require.NoError(t, err)

	gw.mutateErr = errors.New("boom")
	_, _, err = svc.AddItem(ctx, cartID, "var-2", 1)

	var mutation *apperrors.CartMutationError
	require.ErrorAs(t, err, &mutation)
	assert.False(t, apperrors.IsUserSafe(err))
}

func TestCheckoutURL(t *testing.T) {
	gw := newFakeGateway()
	svc := newTestService(gw)
	ctx := context.Background()

	cartID, _, err := svc.AddItem(ctx, "", "var-1", 1)
	require.NoError(t, err)

	url, err := svc.CheckoutURL(ctx, cartID)
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example/checkout", url)
}
