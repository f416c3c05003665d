package order

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AkinDevProject/oneeats-ordering-go/internal/cart"
)

var (
	// ErrNotFound is returned when an order id matches nothing. Callers
	// that want the legacy silent no-op can ignore it.
	ErrNotFound = errors.New("order not found")
	// ErrInvalidTransition is returned when the requested status does not
	// follow from the order's current status. The order is left untouched.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Manager owns the order collection and the current-order key. The current
// order is tracked as a lookup key into the collection, never a second
// copy, so the two views cannot diverge.
type Manager struct {
	mu        sync.Mutex
	orders    map[string]*Order
	sequence  []string // creation order, oldest first
	currentID string

	hooks []func(Order)

	now            func() time.Time
	estimatedReady time.Duration
}

func NewManager(estimatedReady time.Duration) *Manager {
	return &Manager{
		orders:         make(map[string]*Order),
		now:            time.Now,
		estimatedReady: estimatedReady,
	}
}

// OnStatusChange registers a hook invoked after every applied status
// change, in registration order, with a copy of the updated order.
func (m *Manager) OnStatusChange(fn func(Order)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, fn)
}

// Create builds an order from a cart snapshot. The lines are copied, the
// total computed once, and the order becomes the current order. The call
// returns immediately; kitchen progress is driven elsewhere.
func (m *Manager) Create(lines []cart.Line, fulfillment FulfillmentType) Order {
	now := m.now()

	o := &Order{
		ID:             uuid.NewString(),
		Lines:          make([]Line, 0, len(lines)),
		Status:         StatusPending,
		Fulfillment:    fulfillment,
		OrderTime:      now,
		EstimatedReady: now.Add(m.estimatedReady),
	}
	for _, l := range lines {
		o.Lines = append(o.Lines, Line{
			ItemID:         l.ItemID,
			Name:           l.Name,
			Price:          l.Price,
			ImageURL:       l.ImageURL,
			RestaurantID:   l.RestaurantID,
			RestaurantName: l.RestaurantName,
			Quantity:       l.Quantity,
		})
		o.Total += l.Price * float64(l.Quantity)
	}
	if len(o.Lines) > 0 {
		o.RestaurantName = o.Lines[0].RestaurantName
	}

	m.mu.Lock()
	m.orders[o.ID] = o
	m.sequence = append(m.sequence, o.ID)
	m.currentID = o.ID
	m.mu.Unlock()

	return snapshot(o)
}

// UpdateStatus applies the transition if the table allows it and returns
// the updated order. ErrNotFound for unknown ids, ErrInvalidTransition
// when the requested status does not follow the current one; in both
// cases nothing is modified. Hooks run after the lock is released.
func (m *Manager) UpdateStatus(orderID string, status Status) (Order, error) {
	m.mu.Lock()

	o, ok := m.orders[orderID]
	if !ok {
		m.mu.Unlock()
		return Order{}, ErrNotFound
	}
	if !o.Status.CanTransition(status) {
		m.mu.Unlock()
		return Order{}, ErrInvalidTransition
	}

	o.Status = status
	updated := snapshot(o)
	hooks := make([]func(Order), len(m.hooks))
	copy(hooks, m.hooks)
	m.mu.Unlock()

	for _, fn := range hooks {
		fn(updated)
	}
	return updated, nil
}

// GetByID returns a copy of the order and whether it exists.
func (m *Manager) GetByID(orderID string) (Order, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[orderID]
	if !ok {
		return Order{}, false
	}
	return snapshot(o), true
}

// Current returns the most recently created order, resolved through the
// collection so it always reflects the latest status.
func (m *Manager) Current() (Order, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[m.currentID]
	if !ok {
		return Order{}, false
	}
	return snapshot(o), true
}

// List returns all orders, newest first. Orders are never deleted within
// a session; this is the session history.
func (m *Manager) List() []Order {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Order, 0, len(m.sequence))
	for i := len(m.sequence) - 1; i >= 0; i-- {
		out = append(out, snapshot(m.orders[m.sequence[i]]))
	}
	return out
}

func snapshot(o *Order) Order {
	cp := *o
	cp.Lines = make([]Line, len(o.Lines))
	copy(cp.Lines, o.Lines)
	return cp
}
