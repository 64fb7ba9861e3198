package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/service"
)

type fakeStorefront struct {
	products    []domain.Product
	collections []domain.Collection
}

func (f *fakeStorefront) GetProducts(context.Context, string, string, bool) ([]domain.Product, error) {
	return f.products, nil
}

func (f *fakeStorefront) GetProduct(_ context.Context, handle string) (*domain.Product, error) {
	for i := range f.products {
		if f.products[i].Handle == handle {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStorefront) GetCollections(context.Context) ([]domain.Collection, error) {
	return f.collections, nil
}

func (f *fakeStorefront) GetCollection(context.Context, string) (*domain.Collection, error) {
	return nil, nil
}

func (f *fakeStorefront) GetCollectionProducts(context.Context, string, string, bool) ([]domain.Product, error) {
	return []domain.Product{}, nil
}

func (f *fakeStorefront) CreateCart(context.Context) (*domain.Cart, error) { return nil, nil }

func (f *fakeStorefront) GetCart(context.Context, string) (*domain.Cart, error) { return nil, nil }

func (f *fakeStorefront) AddToCart(context.Context, string, []service.CartLineInput) (*domain.Cart, error) {
	return nil, nil
}

func (f *fakeStorefront) RemoveFromCart(context.Context, string, []string) (*domain.Cart, error) {
	return nil, nil
}

func (f *fakeStorefront) UpdateCart(context.Context, string, []service.CartLineUpdateInput) (*domain.Cart, error) {
	return nil, nil
}

func testRouter(sf service.Storefront) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Environment: "test",
		CORS:        config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
	return NewRouter(cfg, sf, zap.NewNop())
}

func TestHealth(t *testing.T) {
	router := testRouter(&fakeStorefront{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestListProducts(t *testing.T) {
	router := testRouter(&fakeStorefront{
		products: []domain.Product{{ID: "p1", Handle: "shirt", Title: "Shirt"}},
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products?sortKey=TITLE&reverse=true", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var body struct {
		Products []domain.Product `json:"products"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Products) != 1 || body.Products[0].Handle != "shirt" {
		t.Fatalf("unexpected products %+v", body.Products)
	}
}

func TestGetProduct_UnknownHandleIs404(t *testing.T) {
	router := testRouter(&fakeStorefront{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/ghost", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestCollectionProducts_UnresolvedCollectionIsEmptyList(t *testing.T) {
	router := testRouter(&fakeStorefront{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/collections/ghost/products", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var body struct {
		Products []domain.Product `json:"products"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Products == nil || len(body.Products) != 0 {
		t.Fatalf("expected empty product list, got %+v", body.Products)
	}
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	router := testRouter(&fakeStorefront{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID header on the response")
	}
}
