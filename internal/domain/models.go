package domain

import (
	"fmt"
	"strconv"
)

// Money is a decimal amount as issued by the Storefront API. Amount stays a
// decimal string end to end; it is parsed to a float only for display.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// Format renders the money value for display, e.g. "12.50 USD".
func (m Money) Format() string {
	f, err := strconv.ParseFloat(m.Amount, 64)
	if err != nil {
		return m.Amount + " " + m.CurrencyCode
	}
	return fmt.Sprintf("%.2f %s", f, m.CurrencyCode)
}

type Image struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ProductOption struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ProductVariant struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	AvailableForSale bool             `json:"availableForSale"`
	SelectedOptions  []SelectedOption `json:"selectedOptions"`
	Price            Money            `json:"price"`
}

type PriceRange struct {
	MaxVariantPrice Money `json:"maxVariantPrice"`
	MinVariantPrice Money `json:"minVariantPrice"`
}

// Product is the normalized product shape: images and variants are plain
// ordered slices, never connection-wrapped.
type Product struct {
	ID               string           `json:"id"`
	Handle           string           `json:"handle"`
	AvailableForSale bool             `json:"availableForSale"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	DescriptionHTML  string           `json:"descriptionHtml"`
	Options          []ProductOption  `json:"options"`
	PriceRange       PriceRange       `json:"priceRange"`
	Variants         []ProductVariant `json:"variants"`
	FeaturedImage    Image            `json:"featuredImage"`
	Images           []Image          `json:"images"`
	SEO              SEO              `json:"seo"`
	Tags             []string         `json:"tags"`
	UpdatedAt        string           `json:"updatedAt"`
}

type Collection struct {
	Handle      string `json:"handle"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SEO         SEO    `json:"seo"`
	UpdatedAt   string `json:"updatedAt"`
}

// CartProduct is the minimal projection of the product owning a cart line's
// merchandise.
type CartProduct struct {
	ID            string `json:"id"`
	Handle        string `json:"handle"`
	Title         string `json:"title"`
	FeaturedImage Image  `json:"featuredImage"`
}

type Merchandise struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	SelectedOptions []SelectedOption `json:"selectedOptions"`
	Product         CartProduct      `json:"product"`
}

type CartLineCost struct {
	TotalAmount Money `json:"totalAmount"`
}

type CartLine struct {
	ID          string       `json:"id"`
	Quantity    int          `json:"quantity"`
	Cost        CartLineCost `json:"cost"`
	Merchandise Merchandise  `json:"merchandise"`
}

type CartCost struct {
	SubtotalAmount Money  `json:"subtotalAmount"`
	TotalAmount    Money  `json:"totalAmount"`
	TotalTaxAmount *Money `json:"totalTaxAmount"`
}

// Cart is the normalized cart shape. CheckoutURL is issued by the upstream
// and never constructed locally; TotalQuantity is the upstream's denormalized
// count and is not recomputed here.
type Cart struct {
	ID            string     `json:"id"`
	CheckoutURL   string     `json:"checkoutUrl"`
	Cost          CartCost   `json:"cost"`
	Lines         []CartLine `json:"lines"`
	TotalQuantity int        `json:"totalQuantity"`
}
