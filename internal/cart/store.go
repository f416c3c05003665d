package cart

import "sync"

// Store hands out one cart per customer so the HTTP layer can serve
// multiple clients. Carts are created lazily on first access.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Get returns the customer's cart, creating an empty one if needed.
func (s *Store) Get(customerID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[customerID]
	if !ok {
		c = New()
		s.carts[customerID] = c
	}
	return c
}
