// internal/domain/cart/client.go
package cart

import (
	"context"
	"sync"
)

// ClientState is the presentation state of the client-side cart.
// Exactly one state is active at any time.
type ClientState string

const (
	StateLoading ClientState = "loading"
	StateError   ClientState = "error"
	StateReady   ClientState = "ready"
)

// API is the cart surface the client consumes. *Service implements it;
// tests substitute fakes.
type API interface {
	GetCart(ctx context.Context, sessionID string) (*View, error)
	AddItem(ctx context.Context, sessionID string, req *AddItemRequest) (*View, error)
	UpdateItem(ctx context.Context, sessionID, itemID string, req *UpdateItemRequest) (*View, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (*View, error)
	Clear(ctx context.Context, sessionID string) (*View, error)
}

// SessionSource supplies the session identifier the client operates
// under. session.Provider satisfies it.
type SessionSource interface {
	SessionID() (string, error)
}

// Client is a thin, always-in-sync facade over the cart API for one
// session. After every mutation it reloads the authoritative cart and
// swaps in the new snapshot in a single assignment, so readers never
// observe a half-applied state. A failed mutation leaves the previous
// snapshot untouched and parks the client in the error state.
type Client struct {
	api     API
	session SessionSource

	mu       sync.RWMutex
	snapshot *View
	state    ClientState
	errMsg   string
}

// Snapshot is one consistent read of the client: the cart as last
// loaded plus the current presentation state.
type Snapshot struct {
	Cart    *View
	State   ClientState
	Message string
}

// NewClient creates a cart client. Call Load before reading.
func NewClient(api API, source SessionSource) *Client {
	return &Client{
		api:     api,
		session: source,
		state:   StateLoading,
	}
}

// Load fetches the authoritative cart for the session.
func (c *Client) Load(ctx context.Context) error {
	return c.refresh(ctx, func(sessionID string) (*View, error) {
		return c.api.GetCart(ctx, sessionID)
	})
}

// AddItem adds a line item, then reloads.
func (c *Client) AddItem(ctx context.Context, req *AddItemRequest) error {
	return c.mutate(ctx, func(sessionID string) (*View, error) {
		return c.api.AddItem(ctx, sessionID, req)
	})
}

// UpdateItem patches a line item, then reloads.
func (c *Client) UpdateItem(ctx context.Context, itemID string, req *UpdateItemRequest) error {
	return c.mutate(ctx, func(sessionID string) (*View, error) {
		return c.api.UpdateItem(ctx, sessionID, itemID, req)
	})
}

// RemoveItem removes a line item, then reloads.
func (c *Client) RemoveItem(ctx context.Context, itemID string) error {
	return c.mutate(ctx, func(sessionID string) (*View, error) {
		return c.api.RemoveItem(ctx, sessionID, itemID)
	})
}

// Clear empties the cart, then reloads.
func (c *Client) Clear(ctx context.Context) error {
	return c.mutate(ctx, func(sessionID string) (*View, error) {
		return c.api.Clear(ctx, sessionID)
	})
}

// Snapshot returns the current cart and state in one atomic read.
func (c *Client) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		Cart:    c.snapshot,
		State:   c.state,
		Message: c.errMsg,
	}
}

// ItemsCount returns the sum of quantities in the last-known cart;
// zero when nothing has loaded yet.
func (c *Client) ItemsCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snapshot == nil {
		return 0
	}
	return c.snapshot.Totals.TotalQuantity
}

// Total returns the derived total of the last-known cart in cents.
// Items whose product no longer resolves have already been priced at
// zero by the service.
func (c *Client) Total() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snapshot == nil {
		return 0
	}
	return c.snapshot.Totals.TotalAmount
}

// mutate performs the mutation and then a full reload rather than
// patching the local copy, trading a round trip for zero drift from
// the store.
func (c *Client) mutate(ctx context.Context, op func(sessionID string) (*View, error)) error {
	sessionID, err := c.session.SessionID()
	if err != nil {
		c.fail(err)
		return err
	}

	c.setLoading()

	if _, err := op(sessionID); err != nil {
		c.fail(err)
		return err
	}

	view, err := c.api.GetCart(ctx, sessionID)
	if err != nil {
		c.fail(err)
		return err
	}

	c.swap(view)
	return nil
}

func (c *Client) refresh(ctx context.Context, fetch func(sessionID string) (*View, error)) error {
	sessionID, err := c.session.SessionID()
	if err != nil {
		c.fail(err)
		return err
	}

	c.setLoading()

	view, err := fetch(sessionID)
	if err != nil {
		c.fail(err)
		return err
	}

	c.swap(view)
	return nil
}

func (c *Client) setLoading() {
	c.mu.Lock()
	c.state = StateLoading
	c.errMsg = ""
	c.mu.Unlock()
}

func (c *Client) swap(view *View) {
	c.mu.Lock()
	c.snapshot = view
	c.state = StateReady
	c.errMsg = ""
	c.mu.Unlock()
}

func (c *Client) fail(err error) {
	c.mu.Lock()
	c.state = StateError
	c.errMsg = err.Error()
	c.mu.Unlock()
}
