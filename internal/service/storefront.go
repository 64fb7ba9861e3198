package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/shopify"
	"github.com/jafarshop/storefront/pkg/errors"
)

// CartLineInput identifies merchandise to add and how many of it.
type CartLineInput struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
}

// CartLineUpdateInput sets the quantity of an existing cart line.
type CartLineUpdateInput struct {
	ID            string `json:"id"`
	MerchandiseID string `json:"merchandiseId,omitempty"`
	Quantity      int    `json:"quantity"`
}

// Storefront is the data-access facade over the Storefront API: one method
// per upstream capability. Implementations perform no local caching; cart
// reads and writes always bypass upstream caches.
type Storefront interface {
	GetProducts(ctx context.Context, query, sortKey string, reverse bool) ([]domain.Product, error)
	GetProduct(ctx context.Context, handle string) (*domain.Product, error)
	GetCollections(ctx context.Context) ([]domain.Collection, error)
	GetCollection(ctx context.Context, handle string) (*domain.Collection, error)
	GetCollectionProducts(ctx context.Context, handle, sortKey string, reverse bool) ([]domain.Product, error)
	CreateCart(ctx context.Context) (*domain.Cart, error)
	GetCart(ctx context.Context, cartID string) (*domain.Cart, error)
	AddToCart(ctx context.Context, cartID string, lines []CartLineInput) (*domain.Cart, error)
	RemoveFromCart(ctx context.Context, cartID string, lineIDs []string) (*domain.Cart, error)
	UpdateCart(ctx context.Context, cartID string, lines []CartLineUpdateInput) (*domain.Cart, error)
}

type storefrontService struct {
	client *shopify.Client
	logger *zap.Logger
}

// NewStorefront creates the Storefront facade backed by the GraphQL client.
func NewStorefront(cfg config.ShopifyConfig, logger *zap.Logger) Storefront {
	return &storefrontService{
		client: shopify.NewClient(cfg, logger),
		logger: logger,
	}
}

// cacheNoStore marks cart operations: a cart must never be served stale.
const cacheNoStore = "no-store"

func (s *storefrontService) GetProducts(ctx context.Context, query, sortKey string, reverse bool) ([]domain.Product, error) {
	variables := map[string]interface{}{}
	if query != "" {
		variables["query"] = query
	}
	if sortKey != "" {
		variables["sortKey"] = sortKey
	}
	if reverse {
		variables["reverse"] = true
	}

	resp, err := s.client.Execute(ctx, shopify.Request{
		Query:     shopify.GetProductsQuery,
		Variables: variables,
		Tags:      []string{"products"},
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		Products shopify.Connection[*shopify.Product] `json:"products"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse products response: %w", err)
	}

	return shopify.ReshapeProducts(result.Products.Nodes()), nil
}

func (s *storefrontService) GetProduct(ctx context.Context, handle string) (*domain.Product, error) {
	if handle == "" {
		return nil, fmt.Errorf("product handle is required")
	}

	resp, err := s.client.Execute(ctx, shopify.Request{
		Query:     shopify.GetProductQuery,
		Variables: map[string]interface{}{"handle": handle},
		Tags:      []string{"products"},
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		Product *shopify.Product `json:"product"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse product response: %w", err)
	}

	// Absent product stays absent, not an error.
	return shopify.ReshapeProduct(result.Product), nil
}

func (s *storefrontService) GetCollections(ctx context.Context) ([]domain.Collection, error) {
	resp, err := s.client.Execute(ctx, shopify.Request{
		Query: shopify.GetCollectionsQuery,
		Tags:  []string{"collections"},
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		Collections shopify.Connection[domain.Collection] `json:"collections"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse collections response: %w", err)
	}

	collections := result.Collections.Nodes()
	if collections == nil {
		collections = []domain.Collection{}
	}
	return collections, nil
}

func (s *storefrontService) GetCollection(ctx context.Context, handle string) (*domain.Collection, error) {
	if handle == "" {
		return nil, fmt.Errorf("collection handle is required")
	}

	resp, err := s.client.Execute(ctx, shopify.Request{
		Query:     shopify.GetCollectionQuery,
		Variables: map[string]interface{}{"handle": handle},
		Tags:      []string{"collections"},
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		Collection *domain.Collection `json:"collection"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse collection response: %w", err)
	}

	return result.Collection, nil
}

func (s *storefrontService) GetCollectionProducts(ctx context.Context, handle, sortKey string, reverse bool) ([]domain.Product, error) {
	if handle == "" {
		return nil, fmt.Errorf("collection handle is required")
	}

	variables := map[string]interface{}{"handle": handle}
	if sortKey != "" {
		variables["sortKey"] = sortKey
	}
	if reverse {
		variables["reverse"] = true
	}

	resp, err := s.client.Execute(ctx, shopify.Request{
		Query:     shopify.GetCollectionProductsQuery,
		Variables: variables,
		Tags:      []string{"collections", "products"},
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		Collection *struct {
			Products shopify.Connection[*shopify.Product] `json:"products"`
		} `json:"collection"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse collection products response: %w", err)
	}

	// An unresolved collection yields an empty catalog, not an error.
	if result.Collection == nil {
		s.logger.Info("No collection found", zap.String("handle", handle))
		return []domain.Product{}, nil
	}

	return shopify.ReshapeProducts(result.Collection.Products.Nodes()), nil
}

func (s *storefrontService) CreateCart(ctx context.Context) (*domain.Cart, error) {
	resp, err := s.client.Execute(ctx, shopify.Request{
		Query: shopify.CreateCartMutation,
		Cache: cacheNoStore,
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		CartCreate struct {
			Cart shopify.Cart `json:"cart"`
		} `json:"cartCreate"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse cart create response: %w", err)
	}

	cart := shopify.ReshapeCart(result.CartCreate.Cart)
	return &cart, nil
}

func (s *storefrontService) GetCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	resp, err := s.client.Execute(ctx, shopify.Request{
		Query:     shopify.GetCartQuery,
		Variables: map[string]interface{}{"cartId": cartID},
		Cache:     cacheNoStore,
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		Cart *shopify.Cart `json:"cart"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse cart response: %w", err)
	}

	// An expired or unknown id simply stops resolving upstream.
	if result.Cart == nil {
		return nil, &errors.ErrNotFound{Resource: "cart", ID: cartID}
	}

	cart := shopify.ReshapeCart(*result.Cart)
	return &cart, nil
}

func (s *storefrontService) AddToCart(ctx context.Context, cartID string, lines []CartLineInput) (*domain.Cart, error) {
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be a positive integer, got %d", line.Quantity)
		}
	}

	resp, err := s.client.Execute(ctx, shopify.Request{
		Query: shopify.AddToCartMutation,
		Variables: map[string]interface{}{
			"cartId": cartID,
			"lines":  lines,
		},
		Cache: cacheNoStore,
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		CartLinesAdd struct {
			Cart shopify.Cart `json:"cart"`
		} `json:"cartLinesAdd"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse cart add response: %w", err)
	}

	cart := shopify.ReshapeCart(result.CartLinesAdd.Cart)
	return &cart, nil
}

func (s *storefrontService) RemoveFromCart(ctx context.Context, cartID string, lineIDs []string) (*domain.Cart, error) {
	resp, err := s.client.Execute(ctx, shopify.Request{
		Query: shopify.RemoveFromCartMutation,
		Variables: map[string]interface{}{
			"cartId":  cartID,
			"lineIds": lineIDs,
		},
		Cache: cacheNoStore,
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		CartLinesRemove struct {
			Cart shopify.Cart `json:"cart"`
		} `json:"cartLinesRemove"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse cart remove response: %w", err)
	}

	cart := shopify.ReshapeCart(result.CartLinesRemove.Cart)
	return &cart, nil
}

func (s *storefrontService) UpdateCart(ctx context.Context, cartID string, lines []CartLineUpdateInput) (*domain.Cart, error) {
	resp, err := s.client.Execute(ctx, shopify.Request{
		Query: shopify.UpdateCartMutation,
		Variables: map[string]interface{}{
			"cartId": cartID,
			"lines":  lines,
		},
		Cache: cacheNoStore,
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		CartLinesUpdate struct {
			Cart shopify.Cart `json:"cart"`
		} `json:"cartLinesUpdate"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse cart update response: %w", err)
	}

	cart := shopify.ReshapeCart(result.CartLinesUpdate.Cart)
	return &cart, nil
}
