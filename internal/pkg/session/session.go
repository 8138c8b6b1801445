// internal/pkg/session/session.go
package session

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// The session identifier is the only identity the storefront has: an
// opaque token generated once per client and used as the partition key
// for that client's cart. The server never validates its format.

// Store persists a session identifier across runs. The HTTP layer backs
// this with a cookie; tests inject whatever they need.
type Store interface {
	// Load returns the persisted identifier, or "" if none exists.
	Load() (string, error)
	// Save persists the identifier.
	Save(id string) error
}

// Provider hands out the session identifier, generating and persisting
// one on first use. Safe for concurrent use.
type Provider struct {
	mu    sync.Mutex
	store Store
	id    string
	now   func() time.Time
	rng   *rand.Rand
}

// NewProvider creates a session provider over the given store.
func NewProvider(store Store) *Provider {
	return &Provider{
		store: store,
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SessionID returns the session identifier, generating one the first
// time it is called and keeping it for the life of the store. The
// identifier is only regenerated if the backing store is cleared.
func (p *Provider) SessionID() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.id != "" {
		return p.id, nil
	}

	stored, err := p.store.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load session id: %w", err)
	}
	if stored != "" {
		p.id = stored
		return p.id, nil
	}

	id := p.generate()
	if err := p.store.Save(id); err != nil {
		return "", fmt.Errorf("failed to persist session id: %w", err)
	}
	p.id = id
	return p.id, nil
}

// Reset drops the cached identifier so the next SessionID call reads
// the store again. Used when the backing storage is externally cleared.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.id = ""
}

// generate builds a "session_" token from a random component and a
// time component, both base36, to keep collision odds negligible.
func (p *Provider) generate() string {
	random := strconv.FormatInt(p.rng.Int63n(1<<47), 36)
	stamp := strconv.FormatInt(p.now().UnixMilli(), 36)
	return "session_" + random + stamp
}

// NewID generates a fresh session identifier without a provider. The
// HTTP layer uses this when a request arrives without a session cookie.
func NewID() string {
	random := strconv.FormatInt(rand.Int63n(1<<47), 36)
	stamp := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return "session_" + random + stamp
}

// MemoryStore is an in-memory Store for tests and single-process use.
type MemoryStore struct {
	mu sync.Mutex
	id string
}

// NewMemoryStore creates an empty in-memory store. Seed is optional;
// a non-empty seed makes the provider return that fixed identifier.
func NewMemoryStore(seed string) *MemoryStore {
	return &MemoryStore{id: seed}
}

func (m *MemoryStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id, nil
}

func (m *MemoryStore) Save(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.id = id
	return nil
}

// Clear empties the store, simulating the client wiping its storage.
func (m *MemoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.id = ""
}
