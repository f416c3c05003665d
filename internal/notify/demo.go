package notify

import (
	"time"

	"github.com/AkinDevProject/oneeats-ordering-go/internal/order"
)

// DemoScript replays a fixed sequence of status notifications against a
// hardcoded order, for exercising listeners without placing an order.
// It is a test driver, not a general API.
type DemoScript struct {
	OrderID        string
	RestaurantName string
	Steps          []DemoStep
}

type DemoStep struct {
	After  time.Duration
	Status order.Status
}

// NewDemoScript returns the canned script: preparing after 3s, ready
// after 8s, completed after 15s.
func NewDemoScript() DemoScript {
	return DemoScript{
		OrderID:        "demo-order-1",
		RestaurantName: "Pizza Palace",
		Steps: []DemoStep{
			{After: 3 * time.Second, Status: order.StatusPreparing},
			{After: 8 * time.Second, Status: order.StatusReady},
			{After: 15 * time.Second, Status: order.StatusCompleted},
		},
	}
}

// Run schedules every step against the notifier and returns a cancel
// function that stops whatever has not fired yet.
func (d DemoScript) Run(n *Notifier) func() {
	timers := make([]*time.Timer, 0, len(d.Steps))
	for _, step := range d.Steps {
		status := step.Status
		timers = append(timers, time.AfterFunc(step.After, func() {
			n.OrderStatusUpdate(d.OrderID, status, d.RestaurantName)
		}))
	}
	return func() {
		for _, t := range timers {
			t.Stop()
		}
	}
}
