// internal/gateway/shopify/admin.go
package shopify

import (
	"context"
	"fmt"
)

// CreateProduct creates a base product without variants. Variant and
// inventory provisioning are separate calls; the gateway offers no
// cross-resource transaction.
func (c *Client) CreateProduct(ctx context.Context, title, description, productType string) (*Product, error) {
	resp, err := c.Execute(ctx, ScopeAdmin, ProductCreateMutation, map[string]interface{}{
		"input": map[string]interface{}{
			"title":           title,
			"descriptionHtml": description,
			"productType":     productType,
			"status":          "ACTIVE",
		},
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		ProductCreate struct {
			Product    *Product    `json:"product"`
			UserErrors []UserError `json:"userErrors"`
		} `json:"productCreate"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	if err := userErrorsToError(payload.ProductCreate.UserErrors); err != nil {
		return nil, err
	}
	if payload.ProductCreate.Product == nil {
		return nil, fmt.Errorf("gateway returned no product")
	}

	return payload.ProductCreate.Product, nil
}

// CreateVariant creates a single variant on an existing product
func (c *Client) CreateVariant(ctx context.Context, productID, title, price, sku string) error {
	resp, err := c.Execute(ctx, ScopeAdmin, ProductVariantsBulkCreateMutation, map[string]interface{}{
		"productId": productID,
		"variants": []map[string]interface{}{
			{
				"optionValues": []map[string]interface{}{
					{"optionName": "Size", "name": title},
				},
				"price": price,
				"inventoryItem": map[string]interface{}{
					"sku": sku,
				},
			},
		},
	})
	if err != nil {
		return err
	}

	var payload struct {
		ProductVariantsBulkCreate struct {
			UserErrors []UserError `json:"userErrors"`
		} `json:"productVariantsBulkCreate"`
	}
	if err := decode(resp, &payload); err != nil {
		return err
	}

	return userErrorsToError(payload.ProductVariantsBulkCreate.UserErrors)
}

// GetProductWithVariants re-fetches a product to obtain canonical variant
// and inventory item ids after variant creation
func (c *Client) GetProductWithVariants(ctx context.Context, productID string) (*Product, error) {
	resp, err := c.Execute(ctx, ScopeAdmin, ProductWithVariantsQuery, map[string]interface{}{
		"id": productID,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Product *struct {
			ID       string `json:"id"`
			Title    string `json:"title"`
			Handle   string `json:"handle"`
			Status   string `json:"status"`
			Variants struct {
				Edges []struct {
					Node struct {
						ID            string `json:"id"`
						Title         string `json:"title"`
						Price         string `json:"price"`
						SKU           string `json:"sku"`
						InventoryItem struct {
							ID      string `json:"id"`
							Tracked bool   `json:"tracked"`
						} `json:"inventoryItem"`
					} `json:"node"`
				} `json:"edges"`
			} `json:"variants"`
		} `json:"product"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	if payload.Product == nil {
		return nil, fmt.Errorf("product not found: %s", productID)
	}

	product := &Product{
		ID:     payload.Product.ID,
		Title:  payload.Product.Title,
		Handle: payload.Product.Handle,
		Status: payload.Product.Status,
	}
	for _, edge := range payload.Product.Variants.Edges {
		product.Variants = append(product.Variants, ProductVariant{
			ID:              edge.Node.ID,
			Title:           edge.Node.Title,
			Price:           edge.Node.Price,
			SKU:             edge.Node.SKU,
			InventoryItemID: edge.Node.InventoryItem.ID,
			Tracked:         edge.Node.InventoryItem.Tracked,
		})
	}

	return product, nil
}

// GetDefaultLocation resolves the first inventory location of the shop
func (c *Client) GetDefaultLocation(ctx context.Context) (*Location, error) {
	resp, err := c.Execute(ctx, ScopeAdmin, LocationsQuery, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Locations struct {
			Edges []struct {
				Node Location `json:"node"`
			} `json:"edges"`
		} `json:"locations"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	if len(payload.Locations.Edges) == 0 {
		return nil, fmt.Errorf("no inventory locations configured")
	}

	return &payload.Locations.Edges[0].Node, nil
}

// SetInventoryTracking enables or disables tracking on an inventory item
func (c *Client) SetInventoryTracking(ctx context.Context, inventoryItemID string, tracked bool) error {
	resp, err := c.Execute(ctx, ScopeAdmin, InventoryItemUpdateMutation, map[string]interface{}{
		"id": inventoryItemID,
		"input": map[string]interface{}{
			"tracked": tracked,
		},
	})
	if err != nil {
		return err
	}

	var payload struct {
		InventoryItemUpdate struct {
			UserErrors []UserError `json:"userErrors"`
		} `json:"inventoryItemUpdate"`
	}
	if err := decode(resp, &payload); err != nil {
		return err
	}

	return userErrorsToError(payload.InventoryItemUpdate.UserErrors)
}

// SetOnHandQuantity sets the absolute on-hand quantity for an inventory
// item at a location
func (c *Client) SetOnHandQuantity(ctx context.Context, inventoryItemID, locationID string, quantity int) error {
	resp, err := c.Execute(ctx, ScopeAdmin, InventorySetOnHandQuantitiesMutation, map[string]interface{}{
		"input": map[string]interface{}{
			"reason": "correction",
			"setQuantities": []map[string]interface{}{
				{
					"inventoryItemId": inventoryItemID,
					"locationId":      locationID,
					"quantity":        quantity,
				},
			},
		},
	})
	if err != nil {
		return err
	}

	var payload struct {
		InventorySetOnHandQuantities struct {
			UserErrors []UserError `json:"userErrors"`
		} `json:"inventorySetOnHandQuantities"`
	}
	if err := decode(resp, &payload); err != nil {
		return err
	}

	return userErrorsToError(payload.InventorySetOnHandQuantities.UserErrors)
}

// CancelOrder cancels the order on the gateway. There is no compensation
// path; callers must not attempt to un-cancel on downstream failures.
func (c *Client) CancelOrder(ctx context.Context, orderID, reason string, refund, restock bool) error {
	if reason == "" {
		reason = "OTHER"
	}

	resp, err := c.Execute(ctx, ScopeAdmin, OrderCancelMutation, map[string]interface{}{
		"orderId": orderID,
		"reason":  reason,
		"refund":  refund,
		"restock": restock,
	})
	if err != nil {
		return err
	}

	var payload struct {
		OrderCancel struct {
			UserErrors []UserError `json:"orderCancelUserErrors"`
		} `json:"orderCancel"`
	}
	if err := decode(resp, &payload); err != nil {
		return err
	}

	return userErrorsToError(payload.OrderCancel.UserErrors)
}
