package cartstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
)

const defaultStatusTTL = 3 * time.Second

// Store models one client session's view of the cart: a current cart-or-
// absent value, a loading flag, and a per-line "mutation in flight" marker.
// It talks to the storefront's own cart routes, persists the cart id through
// an IDStore, and announces successful mutations on the injected Bus.
type Store struct {
	baseURL    string
	httpClient *http.Client
	ids        IDStore
	bus        *Bus
	logger     *zap.Logger
	statusTTL  time.Duration

	mu       sync.Mutex
	cart     *domain.Cart
	loading  bool
	updating string
	status   string
}

func New(baseURL string, ids IDStore, bus *Bus, logger *zap.Logger) *Store {
	return &Store{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		ids:        ids,
		bus:        bus,
		logger:     logger,
		statusTTL:  defaultStatusTTL,
	}
}

// Cart returns the current cart, or nil when none is loaded.
func (s *Store) Cart() *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// Loading reports whether the initial fetch is still in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Updating returns the id of the line with a pending mutation, if any.
// Per-line controls are disabled while their line is updating.
func (s *Store) Updating() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updating
}

// Status returns the transient user-facing message, which auto-clears a few
// seconds after it is set.
func (s *Store) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Load fetches the cart identified by the persisted id. No persisted id means
// the empty-cart state with no network call. Any failure leaves the cart
// state empty without surfacing an error; the only retry path is the user
// re-invoking the action.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	cartID, ok := s.ids.Get()
	if !ok {
		return
	}

	cart, err := s.fetchCart(ctx, cartID)
	if err != nil {
		s.logger.Debug("Failed to load cart", zap.Error(err), zap.String("cart_id", cartID))
		return
	}

	s.mu.Lock()
	s.cart = cart
	s.mu.Unlock()
}

// Watch subscribes to the bus and re-fetches the cart on every signal until
// the context is canceled. The subscription is registered before Watch
// returns, so no signal published afterwards is missed.
func (s *Store) Watch(ctx context.Context) {
	ch, cancel := s.bus.Subscribe()
	go func() {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ch:
				s.Load(ctx)
			}
		}
	}()
}

// AddToCart adds one unit of the given merchandise, creating a cart first
// when no id is persisted yet.
func (s *Store) AddToCart(ctx context.Context, merchandiseID string, quantity int) error {
	cartID, ok := s.ids.Get()
	if !ok {
		cart, err := s.createCart(ctx)
		if err != nil {
			s.setStatus("Failed to add to cart")
			return err
		}
		cartID = cart.ID
		if err := s.ids.Set(cartID); err != nil {
			return fmt.Errorf("persist cart id: %w", err)
		}
	}

	body := map[string]interface{}{
		"cartId": cartID,
		"lines": []map[string]interface{}{
			{"merchandiseId": merchandiseID, "quantity": quantity},
		},
	}
	if _, err := s.postCart(ctx, "/api/cart/add", body); err != nil {
		s.setStatus("Failed to add to cart")
		return err
	}

	s.setStatus("Added to cart")
	s.bus.Publish()
	return nil
}

// UpdateQuantity sets a line's quantity. Zero means removal, never a
// zero-quantity line; negative values are ignored.
func (s *Store) UpdateQuantity(ctx context.Context, lineID string, quantity int) error {
	if quantity < 0 {
		return nil
	}
	if quantity == 0 {
		return s.RemoveLine(ctx, lineID)
	}

	s.mu.Lock()
	if s.cart == nil {
		s.mu.Unlock()
		return nil
	}
	cartID := s.cart.ID
	s.updating = lineID
	s.mu.Unlock()
	defer s.clearUpdating()

	body := map[string]interface{}{
		"cartId": cartID,
		"lines": []map[string]interface{}{
			{"id": lineID, "quantity": quantity},
		},
	}
	if _, err := s.postCart(ctx, "/api/cart/update", body); err != nil {
		s.setStatus("Failed to update cart")
		return err
	}

	s.Load(ctx)
	s.bus.Publish()
	return nil
}

// RemoveLine removes a single line from the cart.
func (s *Store) RemoveLine(ctx context.Context, lineID string) error {
	s.mu.Lock()
	if s.cart == nil {
		s.mu.Unlock()
		return nil
	}
	cartID := s.cart.ID
	s.updating = lineID
	s.mu.Unlock()
	defer s.clearUpdating()

	body := map[string]interface{}{
		"cartId":  cartID,
		"lineIds": []string{lineID},
	}
	if _, err := s.postCart(ctx, "/api/cart/remove", body); err != nil {
		s.setStatus("Failed to remove from cart")
		return err
	}

	s.Load(ctx)
	s.bus.Publish()
	return nil
}

func (s *Store) clearUpdating() {
	s.mu.Lock()
	s.updating = ""
	s.mu.Unlock()
}

func (s *Store) setStatus(msg string) {
	s.mu.Lock()
	s.status = msg
	s.mu.Unlock()

	time.AfterFunc(s.statusTTL, func() {
		s.mu.Lock()
		if s.status == msg {
			s.status = ""
		}
		s.mu.Unlock()
	})
}

func (s *Store) fetchCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	u := s.baseURL + "/api/cart?cartId=" + url.QueryEscape(cartID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	return s.doCart(req)
}

func (s *Store) createCart(ctx context.Context) (*domain.Cart, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/cart/create", nil)
	if err != nil {
		return nil, err
	}
	return s.doCart(req)
}

func (s *Store) postCart(ctx context.Context, path string, body map[string]interface{}) (*domain.Cart, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return s.doCart(req)
}

func (s *Store) doCart(req *http.Request) (*domain.Cart, error) {
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("cart request %s failed: status %d", req.URL.Path, resp.StatusCode)
	}

	var result struct {
		Cart *domain.Cart `json:"cart"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode cart response: %w", err)
	}
	if result.Cart == nil {
		return nil, fmt.Errorf("cart response %s had no cart", req.URL.Path)
	}
	return result.Cart, nil
}
