package events

import (
	"time"

	"github.com/AkinDevProject/oneeats-ordering-go/internal/order"
)

// OrderStatusUpdated is the wire contract for a status change. A separate
// notification process consumes it and renders the user-facing message.
type OrderStatusUpdated struct {
	EventType      string    `json:"eventType"`
	OrderID        string    `json:"orderId"`
	Status         string    `json:"status"`
	RestaurantName string    `json:"restaurantName"`
	Total          float64   `json:"total"`
	Timestamp      time.Time `json:"timestamp"`
}

const orderStatusUpdatedType = "OrderStatusUpdated"

// NewOrderStatusUpdated builds the event from an order snapshot.
func NewOrderStatusUpdated(o order.Order) OrderStatusUpdated {
	return OrderStatusUpdated{
		EventType:      orderStatusUpdatedType,
		OrderID:        o.ID,
		Status:         string(o.Status),
		RestaurantName: o.RestaurantName,
		Total:          o.Total,
		Timestamp:      time.Now().UTC(),
	}
}
