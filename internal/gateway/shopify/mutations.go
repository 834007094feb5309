// internal/gateway/shopify/mutations.go
package shopify

// CartCreateMutation creates a new cart, optionally with initial lines
const CartCreateMutation = cartFragment + `
mutation cartCreate($lines: [CartLineInput!]) {
  cartCreate(input: { lines: $lines }) {
    cart {
      ...cart
    }
    userErrors {
      field
      message
    }
  }
}
`

// CartLinesAddMutation adds lines to an existing cart. The gateway merges
// onto an existing line when the merchandise id matches.
const CartLinesAddMutation = cartFragment + `
mutation cartLinesAdd($cartId: ID!, $lines: [CartLineInput!]!) {
  cartLinesAdd(cartId: $cartId, lines: $lines) {
    cart {
      ...cart
    }
    userErrors {
      field
      message
    }
  }
}
`

// CartLinesUpdateMutation updates the quantity of existing cart lines
const CartLinesUpdateMutation = cartFragment + `
mutation cartLinesUpdate($cartId: ID!, $lines: [CartLineUpdateInput!]!) {
  cartLinesUpdate(cartId: $cartId, lines: $lines) {
    cart {
      ...cart
    }
    userErrors {
      field
      message
    }
  }
}
`

// CartLinesRemoveMutation removes cart lines by line id
const CartLinesRemoveMutation = cartFragment + `
mutation cartLinesRemove($cartId: ID!, $lineIds: [ID!]!) {
  cartLinesRemove(cartId: $cartId, lineIds: $lineIds) {
    cart {
      ...cart
    }
    userErrors {
      field
      message
    }
  }
}
`

// ProductCreateMutation creates a base product without variants
const ProductCreateMutation = `
mutation productCreate($input: ProductInput!) {
  productCreate(input: $input) {
    product {
      id
      title
      handle
      status
    }
    userErrors {
      field
      message
    }
  }
}
`

// ProductVariantsBulkCreateMutation creates variants on an existing product
const ProductVariantsBulkCreateMutation = `
mutation productVariantsBulkCreate($productId: ID!, $variants: [ProductVariantsBulkInput!]!) {
  productVariantsBulkCreate(productId: $productId, variants: $variants) {
    productVariants {
      id
      title
    }
    userErrors {
      field
      message
    }
  }
}
`

// InventoryItemUpdateMutation enables or disables inventory tracking
const InventoryItemUpdateMutation = `
mutation inventoryItemUpdate($id: ID!, $input: InventoryItemInput!) {
  inventoryItemUpdate(id: $id, input: $input) {
    inventoryItem {
      id
      tracked
    }
    userErrors {
      field
      message
    }
  }
}
`

// InventorySetOnHandQuantitiesMutation sets absolute on-hand quantities
const InventorySetOnHandQuantitiesMutation = `
mutation inventorySetOnHandQuantities($input: InventorySetOnHandQuantitiesInput!) {
  inventorySetOnHandQuantities(input: $input) {
    inventoryAdjustmentGroup {
      createdAt
    }
    userErrors {
      field
      message
    }
  }
}
`

// OrderCancelMutation cancels an order. Restocking and customer notification
// are delegated to the gateway; our own cancellation email goes out separately.
const OrderCancelMutation = `
mutation orderCancel($orderId: ID!, $reason: OrderCancelReason!, $refund: Boolean!, $restock: Boolean!) {
  orderCancel(orderId: $orderId, reason: $reason, refund: $refund, restock: $restock) {
    job {
      id
    }
    orderCancelUserErrors {
      field
      message
    }
  }
}
`

// CustomerCreateMutation registers a new customer account
const CustomerCreateMutation = `
mutation customerCreate($input: CustomerCreateInput!) {
  customerCreate(input: $input) {
    customer {
      id
      email
      firstName
      lastName
    }
    customerUserErrors {
      field
      message
    }
  }
}
`

// CustomerAccessTokenCreateMutation exchanges credentials for a session token
const CustomerAccessTokenCreateMutation = `
mutation customerAccessTokenCreate($input: CustomerAccessTokenCreateInput!) {
  customerAccessTokenCreate(input: $input) {
    customerAccessToken {
      accessToken
      expiresAt
    }
    customerUserErrors {
      field
      message
    }
  }
}
`
