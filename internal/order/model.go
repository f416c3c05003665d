package order

import "time"

type FulfillmentType string

const (
	FulfillmentTakeaway FulfillmentType = "takeaway"
	FulfillmentDineIn   FulfillmentType = "dine-in"
)

// Line is an order-owned snapshot of a cart line. It is copied field by
// field at creation so later cart mutations cannot reach into the order.
type Line struct {
	ItemID         string  `json:"itemId"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	ImageURL       string  `json:"imageUrl,omitempty"`
	RestaurantID   string  `json:"restaurantId"`
	RestaurantName string  `json:"restaurantName"`
	Quantity       int     `json:"quantity"`
}

// Order is immutable after creation except for Status. Total is computed
// once from the line snapshots and never recomputed from a live cart.
type Order struct {
	ID             string          `json:"orderId"`
	Lines          []Line          `json:"items"`
	RestaurantName string          `json:"restaurantName"`
	Total          float64         `json:"total"`
	Status         Status          `json:"status"`
	Fulfillment    FulfillmentType `json:"fulfillmentType"`
	OrderTime      time.Time       `json:"orderTime"`
	EstimatedReady time.Time       `json:"estimatedReady"`
}
