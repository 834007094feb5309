// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/gateway/shopify"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
)

// Gateway is the slice of the commerce gateway the cart service needs
type Gateway interface {
	CreateCart(ctx context.Context, lines []shopify.CartLineInput) (*shopify.Cart, error)
	GetCart(ctx context.Context, cartID string) (*shopify.Cart, error)
	AddCartLines(ctx context.Context, cartID string, lines []shopify.CartLineInput) (*shopify.Cart, error)
	UpdateCartLines(ctx context.Context, cartID string, lines []shopify.CartLineUpdateInput) (*shopify.Cart, error)
	RemoveCartLines(ctx context.Context, cartID string, lineIDs []string) (*shopify.Cart, error)
}

// Service owns the mapping between a browser session's cart id and the
// remote cart resource, and applies line mutations idempotently
type Service struct {
	gateway     Gateway
	redisClient *redis.Client
	config      *config.Config
	logger      *logrus.Logger
}

// NewService creates a new cart service
func NewService(gateway Gateway, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		gateway:     gateway,
		redisClient: redisClient,
		config:      cfg,
		logger:      logger,
	}
}

// AddItem adds quantity of a merchandise id to the session's cart. When no
// cart exists yet, a remote cart is created lazily and its id returned for
// the cookie write. The gateway merges onto an existing line when the
// merchandise id matches, so the cart keeps at most one line per variant.
func (s *Service) AddItem(ctx context.Context, cartID, merchandiseID string, quantity int) (string, *View, error) {
	if quantity <= 0 {
		quantity = 1
	}

	line := shopify.CartLineInput{MerchandiseID: merchandiseID, Quantity: quantity}

	var remote *shopify.Cart
	var err error
	if cartID == "" {
		remote, err = s.gateway.CreateCart(ctx, []shopify.CartLineInput{line})
		if err != nil {
			return "", nil, &apperrors.CartCreationError{Err: err}
		}
		cartID = remote.ID
	} else {
		remote, err = s.gateway.AddCartLines(ctx, cartID, []shopify.CartLineInput{line})
		if err != nil {
			return "", nil, &apperrors.CartMutationError{Op: "add", Err: err}
		}
	}

	s.invalidateView(ctx, cartID)
	return cartID, viewFromRemote(remote), nil
}

// UpdateItemQuantity sets the quantity of the line holding merchandiseID.
// Zero removes the line, a positive quantity updates it, and a missing line
// with positive quantity is added as new.
func (s *Service) UpdateItemQuantity(ctx context.Context, cartID, merchandiseID string, quantity int) (*View, error) {
	if cartID == "" {
		return nil, apperrors.ErrMissingCart
	}

	remote, err := s.fetchRemote(ctx, cartID)
	if err != nil {
		return nil, err
	}

	existing := remote.LineForMerchandise(merchandiseID)

	var updated *shopify.Cart
	switch {
	case existing == nil && quantity > 0:
		updated, err = s.gateway.AddCartLines(ctx, cartID, []shopify.CartLineInput{
			{MerchandiseID: merchandiseID, Quantity: quantity},
		})
	case existing == nil:
		// Nothing to remove
		return viewFromRemote(remote), nil
	case quantity == 0:
		updated, err = s.gateway.RemoveCartLines(ctx, cartID, []string{existing.ID})
	default:
		updated, err = s.gateway.UpdateCartLines(ctx, cartID, []shopify.CartLineUpdateInput{
			{ID: existing.ID, MerchandiseID: merchandiseID, Quantity: quantity},
		})
	}
	if err != nil {
		return nil, &apperrors.CartMutationError{Op: "update", Err: err}
	}

	s.invalidateView(ctx, cartID)
	return viewFromRemote(updated), nil
}

// RemoveItem removes the line holding merchandiseID from the cart
func (s *Service) RemoveItem(ctx context.Context, cartID, merchandiseID string) (*View, error) {
	if cartID == "" {
		return nil, apperrors.ErrMissingCart
	}

	remote, err := s.fetchRemote(ctx, cartID)
	if err != nil {
		return nil, err
	}

	existing := remote.LineForMerchandise(merchandiseID)
	if existing == nil {
		return nil, apperrors.ErrItemNotFound
	}

	updated, err := s.gateway.RemoveCartLines(ctx, cartID, []string{existing.ID})
	if err != nil {
		return nil, &apperrors.CartMutationError{Op: "remove", Err: err}
	}

	s.invalidateView(ctx, cartID)
	return viewFromRemote(updated), nil
}

// GetCart returns the cart view, served from the Redis cache when fresh
func (s *Service) GetCart(ctx context.Context, cartID string) (*View, error) {
	if cartID == "" {
		return nil, apperrors.ErrMissingCart
	}

	if view := s.cachedView(ctx, cartID); view != nil {
		return view, nil
	}

	remote, err := s.fetchRemote(ctx, cartID)
	if err != nil {
		return nil, err
	}

	view := viewFromRemote(remote)
	s.cacheView(ctx, cartID, view)
	return view, nil
}

// CheckoutURL returns the gateway-provided checkout URL. This is a one-way
// handoff: once the customer lands there, the external checkout owns the
// purchase flow.
func (s *Service) CheckoutURL(ctx context.Context, cartID string) (string, error) {
	if cartID == "" {
		return "", apperrors.ErrMissingCart
	}

	remote, err := s.fetchRemote(ctx, cartID)
	if err != nil {
		return "", err
	}

	return remote.CheckoutURL, nil
}

// fetchRemote reads the authoritative cart from the gateway
func (s *Service) fetchRemote(ctx context.Context, cartID string) (*shopify.Cart, error) {
	remote, err := s.gateway.GetCart(ctx, cartID)
	if err != nil {
		return nil, &apperrors.CartFetchError{CartID: cartID, Err: err}
	}
	if remote == nil {
		// Gateway expired the cart; the stale cookie is treated as no cart
		return nil, apperrors.ErrMissingCart
	}
	return remote, nil
}

// Cache helpers. The cached view is only a read accelerator; every mutation
// deletes it so the next read refetches from the gateway.

func (s *Service) cacheKey(cartID string) string {
	return fmt.Sprintf("cart:view:%s", cartID)
}

func (s *Service) cachedView(ctx context.Context, cartID string) *View {
	if s.redisClient == nil {
		return nil
	}
	data, err := s.redisClient.Get(ctx, s.cacheKey(cartID)).Result()
	if err != nil {
		return nil
	}
	var view View
	if err := json.Unmarshal([]byte(data), &view); err != nil {
		return nil
	}
	return &view
}

func (s *Service) cacheView(ctx context.Context, cartID string, view *View) {
	if s.redisClient == nil {
		return
	}
	data, err := json.Marshal(view)
	if err != nil {
		return
	}
	ttl := s.config.Store.CartCacheTTL
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	if err := s.redisClient.Set(ctx, s.cacheKey(cartID), data, ttl).Err(); err != nil {
		s.logger.WithError(err).Warn("Failed to cache cart view")
	}
}

func (s *Service) invalidateView(ctx context.Context, cartID string) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, s.cacheKey(cartID)).Err(); err != nil {
		s.logger.WithError(err).Warn("Failed to invalidate cart view cache")
	}
}

// viewFromRemote maps the gateway cart shape to the storefront view
func viewFromRemote(remote *shopify.Cart) *View {
	view := &View{
		CartID:        remote.ID,
		CheckoutURL:   remote.CheckoutURL,
		TotalQuantity: remote.TotalQuantity,
		SubTotal:      remote.Cost.SubtotalAmount.Amount,
		TotalAmount:   remote.Cost.TotalAmount.Amount,
		CurrencyCode:  remote.Cost.TotalAmount.CurrencyCode,
		Lines:         []LineView{},
	}
	for _, edge := range remote.Lines.Edges {
		node := edge.Node
		view.Lines = append(view.Lines, LineView{
			LineID:        node.ID,
			MerchandiseID: node.Merchandise.ID,
			ProductTitle:  node.Merchandise.Product.Title,
			VariantTitle:  node.Merchandise.Title,
			Quantity:      node.Quantity,
			UnitCost:      node.Cost.AmountPerQuantity.Amount,
			CurrencyCode:  node.Cost.AmountPerQuantity.CurrencyCode,
		})
	}
	return view
}
