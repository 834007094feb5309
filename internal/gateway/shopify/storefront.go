// internal/gateway/shopify/storefront.go
package shopify

import (
	"context"
	"fmt"
)

// CreateCart creates a new remote cart, optionally seeded with lines
func (c *Client) CreateCart(ctx context.Context, lines []CartLineInput) (*Cart, error) {
	variables := map[string]interface{}{}
	if len(lines) > 0 {
		variables["lines"] = lines
	}

	resp, err := c.Execute(ctx, ScopeStorefront, CartCreateMutation, variables)
	if err != nil {
		return nil, err
	}

	var payload struct {
		CartCreate struct {
			Cart       *Cart       `json:"cart"`
			UserErrors []UserError `json:"userErrors"`
		} `json:"cartCreate"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	if err := userErrorsToError(payload.CartCreate.UserErrors); err != nil {
		return nil, err
	}
	if payload.CartCreate.Cart == nil {
		return nil, fmt.Errorf("gateway returned no cart")
	}

	return payload.CartCreate.Cart, nil
}

// GetCart fetches a cart by id. Returns nil when the gateway no longer
// knows the cart (expired or bogus id).
func (c *Client) GetCart(ctx context.Context, cartID string) (*Cart, error) {
	resp, err := c.Execute(ctx, ScopeStorefront, CartQuery, map[string]interface{}{
		"cartId": cartID,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Cart *Cart `json:"cart"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}

	return payload.Cart, nil
}

// AddCartLines adds lines to an existing cart
func (c *Client) AddCartLines(ctx context.Context, cartID string, lines []CartLineInput) (*Cart, error) {
	resp, err := c.Execute(ctx, ScopeStorefront, CartLinesAddMutation, map[string]interface{}{
		"cartId": cartID,
		"lines":  lines,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		CartLinesAdd struct {
			Cart       *Cart       `json:"cart"`
			UserErrors []UserError `json:"userErrors"`
		} `json:"cartLinesAdd"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	if err := userErrorsToError(payload.CartLinesAdd.UserErrors); err != nil {
		return nil, err
	}

	return payload.CartLinesAdd.Cart, nil
}

// UpdateCartLines updates quantities of existing cart lines
func (c *Client) UpdateCartLines(ctx context.Context, cartID string, lines []CartLineUpdateInput) (*Cart, error) {
	resp, err := c.Execute(ctx, ScopeStorefront, CartLinesUpdateMutation, map[string]interface{}{
		"cartId": cartID,
		"lines":  lines,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		CartLinesUpdate struct {
			Cart       *Cart       `json:"cart"`
			UserErrors []UserError `json:"userErrors"`
		} `json:"cartLinesUpdate"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	if err := userErrorsToError(payload.CartLinesUpdate.UserErrors); err != nil {
		return nil, err
	}

	return payload.CartLinesUpdate.Cart, nil
}

// RemoveCartLines removes lines from a cart by line id
func (c *Client) RemoveCartLines(ctx context.Context, cartID string, lineIDs []string) (*Cart, error) {
	resp, err := c.Execute(ctx, ScopeStorefront, CartLinesRemoveMutation, map[string]interface{}{
		"cartId":  cartID,
		"lineIds": lineIDs,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		CartLinesRemove struct {
			Cart       *Cart       `json:"cart"`
			UserErrors []UserError `json:"userErrors"`
		} `json:"cartLinesRemove"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	if err := userErrorsToError(payload.CartLinesRemove.UserErrors); err != nil {
		return nil, err
	}

	return payload.CartLinesRemove.Cart, nil
}

// CreateCustomer registers a new customer account on the gateway
func (c *Client) CreateCustomer(ctx context.Context, email, password, firstName, lastName string) (*Customer, error) {
	resp, err := c.Execute(ctx, ScopeStorefront, CustomerCreateMutation, map[string]interface{}{
		"input": map[string]interface{}{
			"email":     email,
			"password":  password,
			"firstName": firstName,
			"lastName":  lastName,
		},
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		CustomerCreate struct {
			Customer   *Customer   `json:"customer"`
			UserErrors []UserError `json:"customerUserErrors"`
		} `json:"customerCreate"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	if err := userErrorsToError(payload.CustomerCreate.UserErrors); err != nil {
		return nil, err
	}
	if payload.CustomerCreate.Customer == nil {
		return nil, fmt.Errorf("gateway returned no customer")
	}

	return payload.CustomerCreate.Customer, nil
}

// CreateCustomerAccessToken exchanges customer credentials for a session token
func (c *Client) CreateCustomerAccessToken(ctx context.Context, email, password string) (*CustomerAccessToken, error) {
	resp, err := c.Execute(ctx, ScopeStorefront, CustomerAccessTokenCreateMutation, map[string]interface{}{
		"input": map[string]interface{}{
			"email":    email,
			"password": password,
		},
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		CustomerAccessTokenCreate struct {
			CustomerAccessToken *CustomerAccessToken `json:"customerAccessToken"`
			UserErrors          []UserError          `json:"customerUserErrors"`
		} `json:"customerAccessTokenCreate"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	if err := userErrorsToError(payload.CustomerAccessTokenCreate.UserErrors); err != nil {
		return nil, err
	}
	if payload.CustomerAccessTokenCreate.CustomerAccessToken == nil {
		return nil, fmt.Errorf("gateway returned no access token")
	}

	return payload.CustomerAccessTokenCreate.CustomerAccessToken, nil
}

// GetCustomerOrders lists orders for the customer holding the given token
func (c *Client) GetCustomerOrders(ctx context.Context, customerAccessToken string, first int) (*Customer, []CustomerOrder, error) {
	resp, err := c.Execute(ctx, ScopeStorefront, CustomerOrdersQuery, map[string]interface{}{
		"customerAccessToken": customerAccessToken,
		"first":               first,
	})
	if err != nil {
		return nil, nil, err
	}

	var payload struct {
		Customer *struct {
			Customer
			Orders struct {
				Edges []struct {
					Node struct {
						CustomerOrder
						LineItems struct {
							Edges []struct {
								Node struct {
									Title        string `json:"title"`
									VariantTitle string `json:"variantTitle"`
									Quantity     int    `json:"quantity"`
								} `json:"node"`
							} `json:"edges"`
						} `json:"lineItems"`
					} `json:"node"`
				} `json:"edges"`
			} `json:"orders"`
		} `json:"customer"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, nil, err
	}
	if payload.Customer == nil {
		return nil, nil, fmt.Errorf("customer not found or token expired")
	}

	orders := make([]CustomerOrder, 0, len(payload.Customer.Orders.Edges))
	for _, edge := range payload.Customer.Orders.Edges {
		order := edge.Node.CustomerOrder
		for _, item := range edge.Node.LineItems.Edges {
			order.LineItems = append(order.LineItems, struct {
				Title        string `json:"title"`
				VariantTitle string `json:"variantTitle"`
				Quantity     int    `json:"quantity"`
			}{item.Node.Title, item.Node.VariantTitle, item.Node.Quantity})
		}
		orders = append(orders, order)
	}

	return &payload.Customer.Customer, orders, nil
}
