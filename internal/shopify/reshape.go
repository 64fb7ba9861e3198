package shopify

import "github.com/jafarshop/storefront/internal/domain"

// ReshapeProduct flattens a wire product's connection-wrapped images and
// variants into the normalized shape. A nil product stays nil.
func ReshapeProduct(p *Product) *domain.Product {
	if p == nil {
		return nil
	}
	return &domain.Product{
		ID:               p.ID,
		Handle:           p.Handle,
		AvailableForSale: p.AvailableForSale,
		Title:            p.Title,
		Description:      p.Description,
		DescriptionHTML:  p.DescriptionHTML,
		Options:          p.Options,
		PriceRange:       p.PriceRange,
		Variants:         p.Variants.Nodes(),
		FeaturedImage:    p.FeaturedImage,
		Images:           p.Images.Nodes(),
		SEO:              p.SEO,
		Tags:             p.Tags,
		UpdatedAt:        p.UpdatedAt,
	}
}

// ReshapeProducts reshapes each entry, dropping nils. The upstream can return
// partially-null edges; surviving entries keep their relative order.
func ReshapeProducts(products []*Product) []domain.Product {
	reshaped := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if r := ReshapeProduct(p); r != nil {
			reshaped = append(reshaped, *r)
		}
	}
	return reshaped
}

// ReshapeCart flattens the cart's line connection and fills in a zero tax
// amount when the upstream omits it. The zero value is a display-safety
// default, not an upstream contract.
func ReshapeCart(c Cart) domain.Cart {
	cost := c.Cost
	if cost.TotalTaxAmount == nil {
		cost.TotalTaxAmount = &domain.Money{Amount: "0.0", CurrencyCode: "USD"}
	}
	lines := c.Lines.Nodes()
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return domain.Cart{
		ID:            c.ID,
		CheckoutURL:   c.CheckoutURL,
		Cost:          cost,
		Lines:         lines,
		TotalQuantity: c.TotalQuantity,
	}
}
