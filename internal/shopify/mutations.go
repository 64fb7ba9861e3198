package shopify

// CreateCartMutation creates an empty cart. The checkout URL in the result is
// issued by the upstream and never constructed locally.
const CreateCartMutation = `
  mutation createCart($lineItems: [CartLineInput!]) {
    cartCreate(input: { lines: $lineItems }) {
      cart {` + cartFields + `}
    }
  }
`

// AddToCartMutation adds merchandise lines to an existing cart.
const AddToCartMutation = `
  mutation addToCart($cartId: ID!, $lines: [CartLineInput!]!) {
    cartLinesAdd(cartId: $cartId, lines: $lines) {
      cart {` + cartFields + `}
    }
  }
`

// RemoveFromCartMutation removes lines from a cart by line id.
const RemoveFromCartMutation = `
  mutation removeFromCart($cartId: ID!, $lineIds: [ID!]!) {
    cartLinesRemove(cartId: $cartId, lineIds: $lineIds) {
      cart {` + cartFields + `}
    }
  }
`

// UpdateCartMutation updates line quantities. A zero quantity is the caller's
// responsibility to translate into a removal first.
const UpdateCartMutation = `
  mutation updateCart($cartId: ID!, $lines: [CartLineUpdateInput!]!) {
    cartLinesUpdate(cartId: $cartId, lines: $lines) {
      cart {` + cartFields + `}
    }
  }
`
