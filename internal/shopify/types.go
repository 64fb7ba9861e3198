package shopify

import "github.com/jafarshop/storefront/internal/domain"

// Wire shapes as the Storefront API returns them: products and carts carry
// connection-wrapped lists that the reshape step flattens into domain types.

type Product struct {
	ID               string                            `json:"id"`
	Handle           string                            `json:"handle"`
	AvailableForSale bool                              `json:"availableForSale"`
	Title            string                            `json:"title"`
	Description      string                            `json:"description"`
	DescriptionHTML  string                            `json:"descriptionHtml"`
	Options          []domain.ProductOption            `json:"options"`
	PriceRange       domain.PriceRange                 `json:"priceRange"`
	Variants         Connection[domain.ProductVariant] `json:"variants"`
	FeaturedImage    domain.Image                      `json:"featuredImage"`
	Images           Connection[domain.Image]          `json:"images"`
	SEO              domain.SEO                        `json:"seo"`
	Tags             []string                          `json:"tags"`
	UpdatedAt        string                            `json:"updatedAt"`
}

type Cart struct {
	ID            string                      `json:"id"`
	CheckoutURL   string                      `json:"checkoutUrl"`
	Cost          domain.CartCost             `json:"cost"`
	Lines         Connection[domain.CartLine] `json:"lines"`
	TotalQuantity int                         `json:"totalQuantity"`
}
