// Package notify fans order status changes out to registered listeners.
// It stands in for a push-notification backend during development.
package notify

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/AkinDevProject/oneeats-ordering-go/internal/order"
)

// TypeOrderStatusUpdate is the only notification type emitted today.
const TypeOrderStatusUpdate = "order_status_update"

// alertDelay is how long the dev alert surface waits before printing,
// mimicking the client-side alert popping up after the push arrives.
const alertDelay = time.Second

// Notification is the payload every listener receives.
type Notification struct {
	Type           string `json:"type"`
	OrderID        string `json:"orderId"`
	Status         string `json:"status"`
	RestaurantName string `json:"restaurantName"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	Timestamp      int64  `json:"timestamp"`
}

type Listener func(Notification)

type registration struct {
	id int
	fn Listener
}

// Notifier is an explicit publish-subscribe object: listeners register and
// get an unsubscribe handle back, and fan-out walks them in registration
// order. A panicking listener is isolated and logged; the rest still run.
type Notifier struct {
	mu        sync.Mutex
	listeners []registration
	nextID    int

	logger *slog.Logger
	alerts io.Writer // nil outside dev builds
	now    func() time.Time
}

func New(logger *slog.Logger) *Notifier {
	return &Notifier{logger: logger, now: time.Now}
}

// EnableAlerts turns on the dev-only user-facing alert surface, written to
// w shortly after each notification.
func (n *Notifier) EnableAlerts(w io.Writer) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = w
}

// AddListener registers fn and returns its unsubscribe function. The
// returned function is idempotent.
func (n *Notifier) AddListener(fn Listener) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.listeners = append(n.listeners, registration{id: id, fn: fn})

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, reg := range n.listeners {
			if reg.id == id {
				n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

// OrderStatusUpdate builds the payload for the status change and invokes
// every listener synchronously, in registration order.
func (n *Notifier) OrderStatusUpdate(orderID string, status order.Status, restaurantName string) {
	n.mu.Lock()
	regs := make([]registration, len(n.listeners))
	copy(regs, n.listeners)
	alerts := n.alerts
	n.mu.Unlock()

	note := Notification{
		Type:           TypeOrderStatusUpdate,
		OrderID:        orderID,
		Status:         string(status),
		RestaurantName: restaurantName,
		Title:          "Order update",
		Message:        statusMessage(status, restaurantName),
		Timestamp:      n.now().UnixMilli(),
	}

	for _, reg := range regs {
		n.invoke(reg.fn, note)
	}

	if alerts != nil {
		time.AfterFunc(alertDelay, func() {
			fmt.Fprintf(alerts, "[%s] %s\n", note.Title, note.Message)
		})
	}
}

func (n *Notifier) invoke(fn Listener, note Notification) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("notification listener panicked",
				"order_id", note.OrderID, "panic", fmt.Sprint(r))
		}
	}()
	fn(note)
}

func statusMessage(status order.Status, restaurantName string) string {
	switch status {
	case order.StatusPending:
		return fmt.Sprintf("%s received your order.", restaurantName)
	case order.StatusPreparing:
		return fmt.Sprintf("%s is preparing your order.", restaurantName)
	case order.StatusReady:
		return fmt.Sprintf("Your order from %s is ready for pickup!", restaurantName)
	case order.StatusCompleted:
		return "Order completed. Enjoy your meal!"
	case order.StatusCancelled:
		return "Your order was cancelled."
	default:
		return fmt.Sprintf("Your order is now %s.", status)
	}
}
