// internal/gateway/shopify/queries.go
package shopify

// cartFragment is shared by every cart query and mutation response
const cartFragment = `
fragment cart on Cart {
  id
  checkoutUrl
  totalQuantity
  cost {
    subtotalAmount { amount currencyCode }
    totalAmount { amount currencyCode }
  }
  lines(first: 100) {
    edges {
      node {
        id
        quantity
        cost { amountPerQuantity { amount currencyCode } }
        merchandise {
          ... on ProductVariant {
            id
            title
            product { id title }
          }
        }
      }
    }
  }
}
`

// CartQuery fetches a cart by id
const CartQuery = cartFragment + `
query getCart($cartId: ID!) {
  cart(id: $cartId) {
    ...cart
  }
}
`

// ProductWithVariantsQuery fetches a product with its canonical variant ids
// and inventory item ids. Used after variant creation to resolve ids the
// bulk-create response does not guarantee.
const ProductWithVariantsQuery = `
query getProduct($id: ID!) {
  product(id: $id) {
    id
    title
    handle
    status
    variants(first: 25) {
      edges {
        node {
          id
          title
          price
          sku
          inventoryItem { id tracked }
        }
      }
    }
  }
}
`

// LocationsQuery resolves the shop's inventory locations. The first active
// location is used as the default for on-hand quantity writes.
const LocationsQuery = `
query getLocations {
  locations(first: 5) {
    edges {
      node { id name }
    }
  }
}
`

// CustomerOrdersQuery lists a customer's orders for account pages
const CustomerOrdersQuery = `
query getCustomerOrders($customerAccessToken: String!, $first: Int!) {
  customer(customerAccessToken: $customerAccessToken) {
    id
    email
    firstName
    lastName
    orders(first: $first, sortKey: PROCESSED_AT, reverse: true) {
      edges {
        node {
          id
          name
          orderNumber
          processedAt
          financialStatus
          fulfillmentStatus
          totalPrice { amount currencyCode }
          lineItems(first: 50) {
            edges {
              node { title variantTitle quantity }
            }
          }
        }
      }
    }
  }
}
`
