package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/pkg/errors"
)

// fakeUpstream answers GraphQL documents with canned data keyed by operation
// name and counts the calls it receives.
type fakeUpstream struct {
	t         *testing.T
	responses map[string]string
	calls     int
}

func (f *fakeUpstream) handler(w http.ResponseWriter, r *http.Request) {
	f.calls++
	var req struct {
		Query string `json:"query"`
	}
	require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))
	for op, data := range f.responses {
		if strings.Contains(req.Query, op) {
			w.Write([]byte(`{"data":` + data + `}`))
			return
		}
	}
	f.t.Fatalf("unexpected query: %s", req.Query)
}

func newTestStorefront(t *testing.T, responses map[string]string) (Storefront, *fakeUpstream) {
	t.Helper()
	fake := &fakeUpstream{t: t, responses: responses}
	ts := httptest.NewServer(http.HandlerFunc(fake.handler))
	t.Cleanup(ts.Close)
	sf := NewStorefront(config.ShopifyConfig{
		StoreDomain: ts.URL,
		AccessToken: "test-token",
		APIVersion:  "2024-01",
	}, zap.NewNop())
	return sf, fake
}

func TestGetProducts_NormalizesConnections(t *testing.T) {
	sf, _ := newTestStorefront(t, map[string]string{
		"query getProducts": `{"products":{"edges":[
			{"node":{"id":"p1","handle":"shirt","title":"Shirt",
				"variants":{"edges":[{"node":{"id":"v1","title":"S"}}]},
				"images":{"edges":[{"node":{"url":"https://cdn/x.jpg"}}]}}},
			{"node":null},
			{"node":{"id":"p2","handle":"hat","title":"Hat",
				"variants":{"edges":[]},"images":{"edges":[]}}}
		]}}`,
	})

	products, err := sf.GetProducts(context.Background(), "", "", false)
	require.NoError(t, err)

	// Null entries are dropped; surviving order is preserved.
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "p2", products[1].ID)
	require.Len(t, products[0].Variants, 1)
	assert.Equal(t, "v1", products[0].Variants[0].ID)
}

func TestGetProduct_AbsentStaysAbsent(t *testing.T) {
	sf, _ := newTestStorefront(t, map[string]string{
		"query getProduct(": `{"product":null}`,
	})

	product, err := sf.GetProduct(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestGetProduct_RequiresHandle(t *testing.T) {
	sf, fake := newTestStorefront(t, nil)

	_, err := sf.GetProduct(context.Background(), "")
	require.Error(t, err)
	assert.Zero(t, fake.calls)
}

func TestGetCollections(t *testing.T) {
	sf, _ := newTestStorefront(t, map[string]string{
		"query getCollections": `{"collections":{"edges":[
			{"node":{"handle":"all","title":"All"}},
			{"node":{"handle":"sale","title":"Sale"}}
		]}}`,
	})

	collections, err := sf.GetCollections(context.Background())
	require.NoError(t, err)
	require.Len(t, collections, 2)
	assert.Equal(t, "all", collections[0].Handle)
}

func TestGetCollectionProducts_UnresolvedCollectionIsEmptyNotError(t *testing.T) {
	sf, _ := newTestStorefront(t, map[string]string{
		"query getCollectionProducts": `{"collection":null}`,
	})

	products, err := sf.GetCollectionProducts(context.Background(), "ghost", "", false)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestCreateCart_DefaultsMissingTax(t *testing.T) {
	sf, _ := newTestStorefront(t, map[string]string{
		"mutation createCart": `{"cartCreate":{"cart":{
			"id":"gid://cart/1",
			"checkoutUrl":"https://checkout/1",
			"cost":{"subtotalAmount":{"amount":"0.0","currencyCode":"USD"},
				"totalAmount":{"amount":"0.0","currencyCode":"USD"}},
			"lines":{"edges":[]},
			"totalQuantity":0}}}`,
	})

	cart, err := sf.CreateCart(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "gid://cart/1", cart.ID)
	require.NotNil(t, cart.Cost.TotalTaxAmount)
	assert.Equal(t, "0.0", cart.Cost.TotalTaxAmount.Amount)
	assert.Equal(t, "USD", cart.Cost.TotalTaxAmount.CurrencyCode)
}

func TestGetCart_NotFound(t *testing.T) {
	sf, _ := newTestStorefront(t, map[string]string{
		"query getCart": `{"cart":null}`,
	})

	_, err := sf.GetCart(context.Background(), "gid://cart/expired")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestAddToCart_RejectsNonPositiveQuantity(t *testing.T) {
	sf, fake := newTestStorefront(t, nil)

	_, err := sf.AddToCart(context.Background(), "gid://cart/1", []CartLineInput{
		{MerchandiseID: "gid://variant/1", Quantity: 0},
	})
	require.Error(t, err)
	assert.Zero(t, fake.calls)
}

func TestAddToCart_ReturnsUpdatedCart(t *testing.T) {
	sf, _ := newTestStorefront(t, map[string]string{
		"mutation addToCart": `{"cartLinesAdd":{"cart":{
			"id":"gid://cart/1",
			"checkoutUrl":"https://checkout/1",
			"cost":{"subtotalAmount":{"amount":"12.00","currencyCode":"USD"},
				"totalAmount":{"amount":"12.00","currencyCode":"USD"},
				"totalTaxAmount":{"amount":"0.96","currencyCode":"USD"}},
			"lines":{"edges":[{"node":{"id":"line-1","quantity":1,
				"cost":{"totalAmount":{"amount":"12.00","currencyCode":"USD"}},
				"merchandise":{"id":"gid://variant/1","title":"S"}}}]},
			"totalQuantity":1}}}`,
	})

	cart, err := sf.AddToCart(context.Background(), "gid://cart/1", []CartLineInput{
		{MerchandiseID: "gid://variant/1", Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "line-1", cart.Lines[0].ID)
	assert.Equal(t, 1, cart.TotalQuantity)
	assert.Equal(t, "0.96", cart.Cost.TotalTaxAmount.Amount)
}

func TestRemoveFromCart_ReturnsUpdatedCart(t *testing.T) {
	sf, _ := newTestStorefront(t, map[string]string{
		"mutation removeFromCart": `{"cartLinesRemove":{"cart":{
			"id":"gid://cart/1","checkoutUrl":"https://checkout/1",
			"cost":{"subtotalAmount":{"amount":"0.0","currencyCode":"USD"},
				"totalAmount":{"amount":"0.0","currencyCode":"USD"}},
			"lines":{"edges":[]},"totalQuantity":0}}}`,
	})

	cart, err := sf.RemoveFromCart(context.Background(), "gid://cart/1", []string{"line-1"})
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestUpdateCart_PropagatesUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":null,"errors":[{"message":"cart is locked"}]}`))
	}))
	t.Cleanup(ts.Close)

	sf := NewStorefront(config.ShopifyConfig{
		StoreDomain: ts.URL,
		AccessToken: "test-token",
		APIVersion:  "2024-01",
	}, zap.NewNop())

	_, err := sf.UpdateCart(context.Background(), "gid://cart/1", []CartLineUpdateInput{
		{ID: "line-1", Quantity: 2},
	})
	require.Error(t, err)

	var shopifyErr *errors.ShopifyError
	require.ErrorAs(t, err, &shopifyErr)
	assert.Equal(t, "cart is locked", shopifyErr.Message)
}
