package shopify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jafarshop/storefront/internal/domain"
)

func wireProduct(id string) *Product {
	return &Product{
		ID:     id,
		Handle: "handle-" + id,
		Title:  "Product " + id,
		Variants: FromNodes([]domain.ProductVariant{
			{ID: id + "-v1", Title: "Default"},
		}),
		Images: FromNodes([]domain.Image{
			{URL: "https://cdn.example.com/" + id + ".jpg"},
		}),
	}
}

func TestReshapeProduct_FlattensVariantsAndImages(t *testing.T) {
	p := ReshapeProduct(wireProduct("p1"))
	require.NotNil(t, p)
	assert.Equal(t, "p1", p.ID)
	require.Len(t, p.Variants, 1)
	assert.Equal(t, "p1-v1", p.Variants[0].ID)
	require.Len(t, p.Images, 1)
	assert.Equal(t, "https://cdn.example.com/p1.jpg", p.Images[0].URL)
}

func TestReshapeProduct_NilStaysNil(t *testing.T) {
	assert.Nil(t, ReshapeProduct(nil))
}

func TestReshapeProducts_SkipsNilEntriesPreservingOrder(t *testing.T) {
	products := ReshapeProducts([]*Product{wireProduct("a"), nil, wireProduct("b"), nil, wireProduct("c")})
	require.Len(t, products, 3)
	assert.Equal(t, "a", products[0].ID)
	assert.Equal(t, "b", products[1].ID)
	assert.Equal(t, "c", products[2].ID)
}

func TestReshapeCart_DefaultsMissingTax(t *testing.T) {
	cart := ReshapeCart(Cart{
		ID:          "gid://cart/1",
		CheckoutURL: "https://checkout.example.com/1",
		Cost: domain.CartCost{
			SubtotalAmount: domain.Money{Amount: "10.0", CurrencyCode: "USD"},
			TotalAmount:    domain.Money{Amount: "10.0", CurrencyCode: "USD"},
		},
	})

	require.NotNil(t, cart.Cost.TotalTaxAmount)
	assert.Equal(t, domain.Money{Amount: "0.0", CurrencyCode: "USD"}, *cart.Cost.TotalTaxAmount)
}

func TestReshapeCart_PreservesExistingTax(t *testing.T) {
	tax := domain.Money{Amount: "1.25", CurrencyCode: "EUR"}
	cart := ReshapeCart(Cart{
		ID:   "gid://cart/2",
		Cost: domain.CartCost{TotalTaxAmount: &tax},
	})

	require.NotNil(t, cart.Cost.TotalTaxAmount)
	assert.Equal(t, tax, *cart.Cost.TotalTaxAmount)
}

func TestReshapeCart_FlattensLines(t *testing.T) {
	cart := ReshapeCart(Cart{
		ID: "gid://cart/3",
		Lines: FromNodes([]domain.CartLine{
			{ID: "line-1", Quantity: 2},
		}),
		TotalQuantity: 2,
	})

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "line-1", cart.Lines[0].ID)
	assert.Equal(t, 2, cart.TotalQuantity)
}

func TestReshapeCart_EmptyLinesStayEmptyList(t *testing.T) {
	cart := ReshapeCart(Cart{ID: "gid://cart/4"})
	assert.NotNil(t, cart.Lines)
	assert.Empty(t, cart.Lines)
}
