package shopify

// productFields is the product selection shared by every product-returning
// query. Variants and images arrive connection-wrapped and are flattened by
// the reshape step.
const productFields = `
      id
      handle
      availableForSale
      title
      description
      descriptionHtml
      options {
        id
        name
        values
      }
      priceRange {
        maxVariantPrice {
          amount
          currencyCode
        }
        minVariantPrice {
          amount
          currencyCode
        }
      }
      variants(first: 250) {
        edges {
          node {
            id
            title
            availableForSale
            selectedOptions {
              name
              value
            }
            price {
              amount
              currencyCode
            }
          }
        }
      }
      featuredImage {
        url
        altText
        width
        height
      }
      images(first: 20) {
        edges {
          node {
            url
            altText
            width
            height
          }
        }
      }
      seo {
        title
        description
      }
      tags
      updatedAt
`

// cartFields is the cart selection shared by the cart query and all four cart
// mutations.
const cartFields = `
      id
      checkoutUrl
      cost {
        subtotalAmount {
          amount
          currencyCode
        }
        totalAmount {
          amount
          currencyCode
        }
        totalTaxAmount {
          amount
          currencyCode
        }
      }
      lines(first: 100) {
        edges {
          node {
            id
            quantity
            cost {
              totalAmount {
                amount
                currencyCode
              }
            }
            merchandise {
              ... on ProductVariant {
                id
                title
                selectedOptions {
                  name
                  value
                }
                product {
                  id
                  handle
                  title
                  featuredImage {
                    url
                    altText
                    width
                    height
                  }
                }
              }
            }
          }
        }
      }
      totalQuantity
`

// GetProductsQuery fetches the catalog, optionally filtered and sorted.
// The upstream page size caps the result at 100 products.
const GetProductsQuery = `
  query getProducts($query: String, $reverse: Boolean, $sortKey: ProductSortKeys) {
    products(first: 100, query: $query, reverse: $reverse, sortKey: $sortKey) {
      edges {
        node {` + productFields + `}
      }
    }
  }
`

// GetProductQuery fetches a single product by handle.
const GetProductQuery = `
  query getProduct($handle: String!) {
    product(handle: $handle) {` + productFields + `}
  }
`

// GetCollectionsQuery fetches up to 100 collections sorted by title.
const GetCollectionsQuery = `
  query getCollections {
    collections(first: 100, sortKey: TITLE) {
      edges {
        node {
          handle
          title
          description
          seo {
            title
            description
          }
          updatedAt
        }
      }
    }
  }
`

// GetCollectionQuery fetches a single collection by handle.
const GetCollectionQuery = `
  query getCollection($handle: String!) {
    collection(handle: $handle) {
      handle
      title
      description
      seo {
        title
        description
      }
      updatedAt
    }
  }
`

// GetCollectionProductsQuery fetches the products of one collection.
const GetCollectionProductsQuery = `
  query getCollectionProducts($handle: String!, $reverse: Boolean, $sortKey: ProductCollectionSortKeys) {
    collection(handle: $handle) {
      products(first: 100, reverse: $reverse, sortKey: $sortKey) {
        edges {
          node {` + productFields + `}
        }
      }
    }
  }
`

// GetCartQuery fetches a cart by id.
const GetCartQuery = `
  query getCart($cartId: ID!) {
    cart(id: $cartId) {` + cartFields + `}
  }
`
