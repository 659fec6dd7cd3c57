package cartstore

import (
	"context"
	"sync"
	"time"

	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase/interfaces"
)

// MemoryCartStore keeps carts in process. Used when Redis is disabled; carts
// do not survive a restart and are not shared between instances.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

type memoryEntry struct {
	cart      entities.Cart
	expiresAt time.Time
}

var _ interfaces.ICartStore = (*MemoryCartStore)(nil)

func NewMemoryCartStore(ttl time.Duration) *MemoryCartStore {
	return &MemoryCartStore{
		carts: make(map[string]memoryEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *MemoryCartStore) Get(_ context.Context, cartID string) (entities.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.carts[cartID]
	if !ok {
		return emptyCart(cartID), nil
	}
	if s.ttl > 0 && s.now().After(e.expiresAt) {
		delete(s.carts, cartID)
		return emptyCart(cartID), nil
	}
	return copyCart(e.cart), nil
}

func (s *MemoryCartStore) Save(_ context.Context, cart entities.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[cart.ID] = memoryEntry{
		cart:      copyCart(cart),
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryCartStore) Delete(_ context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, cartID)
	return nil
}

// copyCart detaches the items slice so callers cannot mutate stored carts.
func copyCart(c entities.Cart) entities.Cart {
	items := make([]entities.CartItem, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c
}
