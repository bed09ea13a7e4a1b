package storage

import (
	"context"
	"maps"
	"sync"

	"github.com/mo7amedgom3a/storefront/internal/models"
)

// memoryStore is the no-infrastructure backend, used in tests and as the
// default when neither redis nor postgres is configured.
type memoryStore struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
}

func NewMemoryStore() CartStore {
	return &memoryStore{carts: make(map[string]*models.Cart)}
}

func (m *memoryStore) Load(ctx context.Context, sessionID string) (*models.Cart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cart, ok := m.carts[sessionID]
	if !ok {
		return models.NewCart(sessionID), nil
	}

	return copyCart(cart), nil
}

func (m *memoryStore) Save(ctx context.Context, cart *models.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.carts[cart.SessionID] = copyCart(cart)

	return nil
}

func (m *memoryStore) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.carts, sessionID)

	return nil
}

func (m *memoryStore) Close() error {
	return nil
}

// copies keep callers from mutating the stored cart behind the lock
func copyCart(cart *models.Cart) *models.Cart {
	clone := *cart
	clone.Lines = maps.Clone(cart.Lines)

	return &clone
}
