// internal/gateway/shopify/types.go
package shopify

// Money represents a gateway money value
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// CartLine represents one line of a remote cart
type CartLine struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
	Cost     struct {
		AmountPerQuantity Money `json:"amountPerQuantity"`
	} `json:"cost"`
	Merchandise struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Product struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"product"`
	} `json:"merchandise"`
}

// Cart represents a remote cart resource
type Cart struct {
	ID          string `json:"id"`
	CheckoutURL string `json:"checkoutUrl"`
	TotalQuantity int  `json:"totalQuantity"`
	Cost        struct {
		SubtotalAmount Money `json:"subtotalAmount"`
		TotalAmount    Money `json:"totalAmount"`
	} `json:"cost"`
	Lines struct {
		Edges []struct {
			Node CartLine `json:"node"`
		} `json:"edges"`
	} `json:"lines"`
}

// LineForMerchandise returns the cart line holding the given merchandise id,
// or nil when the cart has no such line.
func (c *Cart) LineForMerchandise(merchandiseID string) *CartLine {
	for i := range c.Lines.Edges {
		if c.Lines.Edges[i].Node.Merchandise.ID == merchandiseID {
			return &c.Lines.Edges[i].Node
		}
	}
	return nil
}

// CartLineInput is the input for adding a line to a cart
type CartLineInput struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
}

// CartLineUpdateInput is the input for updating an existing cart line
type CartLineUpdateInput struct {
	ID            string `json:"id"`
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
}

// ProductVariant represents one purchasable variant of a product
type ProductVariant struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Price           string `json:"price"`
	SKU             string `json:"sku"`
	InventoryItemID string `json:"inventoryItemId"`
	Tracked         bool   `json:"tracked"`
}

// Product represents a product resource on the gateway
type Product struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Handle   string           `json:"handle"`
	Status   string           `json:"status"`
	Variants []ProductVariant `json:"variants"`
}

// Location represents an inventory location
type Location struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerAccessToken is the gateway-issued customer session token
type CustomerAccessToken struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   string `json:"expiresAt"`
}

// Customer represents a customer account on the gateway
type Customer struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// CustomerOrder represents one order in a customer's order history
type CustomerOrder struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	OrderNumber       int    `json:"orderNumber"`
	ProcessedAt       string `json:"processedAt"`
	FinancialStatus   string `json:"financialStatus"`
	FulfillmentStatus string `json:"fulfillmentStatus"`
	TotalPrice        Money  `json:"totalPrice"`
	LineItems         []struct {
		Title        string `json:"title"`
		VariantTitle string `json:"variantTitle"`
		Quantity     int    `json:"quantity"`
	} `json:"lineItems"`
}
