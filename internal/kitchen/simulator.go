// Package kitchen drives the development-time simulation of kitchen
// progress: without a real backend, each new order is advanced to
// preparing and then ready on timers.
package kitchen

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/AkinDevProject/oneeats-ordering-go/internal/order"
)

// Simulator schedules the delayed status transitions for each tracked
// order. Timers are kept in a per-order registry so a cancelled or
// completed order drops its pending transitions instead of having them
// fire into a terminal state.
type Simulator struct {
	mgr            *order.Manager
	preparingAfter time.Duration
	readyAfter     time.Duration
	logger         *slog.Logger

	mu     sync.Mutex
	timers map[string][]*time.Timer
}

func NewSimulator(mgr *order.Manager, preparingAfter, readyAfter time.Duration, logger *slog.Logger) *Simulator {
	s := &Simulator{
		mgr:            mgr,
		preparingAfter: preparingAfter,
		readyAfter:     readyAfter,
		logger:         logger,
		timers:         make(map[string][]*time.Timer),
	}
	// Reaching a terminal state by any path cancels what is still queued.
	mgr.OnStatusChange(func(o order.Order) {
		if o.Status.Terminal() {
			s.Cancel(o.ID)
		}
	})
	return s
}

// Track schedules the preparing and ready transitions for the order.
func (s *Simulator) Track(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.timers[orderID] = []*time.Timer{
		time.AfterFunc(s.preparingAfter, func() { s.advance(orderID, order.StatusPreparing) }),
		time.AfterFunc(s.readyAfter, func() { s.advance(orderID, order.StatusReady) }),
	}
}

// Cancel stops any pending transitions for the order. Unknown ids are
// no-ops.
func (s *Simulator) Cancel(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.timers[orderID] {
		t.Stop()
	}
	delete(s.timers, orderID)
}

// Stop cancels every pending transition; used on shutdown.
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timers := range s.timers {
		for _, t := range timers {
			t.Stop()
		}
		delete(s.timers, id)
	}
}

func (s *Simulator) advance(orderID string, status order.Status) {
	_, err := s.mgr.UpdateStatus(orderID, status)
	switch {
	case err == nil:
		s.logger.Info("kitchen transition applied",
			"order_id", orderID, "status", string(status))
	case errors.Is(err, order.ErrInvalidTransition):
		// The order moved on (cancelled, completed) before this timer
		// fired; the stale transition is dropped.
		s.logger.Debug("kitchen transition skipped",
			"order_id", orderID, "status", string(status))
	default:
		s.logger.Warn("kitchen transition failed",
			"order_id", orderID, "status", string(status), "error", err)
	}
}
