package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/AkinDevProject/oneeats-ordering-go/internal/notify"
	"github.com/AkinDevProject/oneeats-ordering-go/internal/order"
)

// StartStatusUpdateConsumer consumes OrderStatusUpdated events and feeds
// them into the notifier, so a process without the order manager in it
// can still fan notifications out to its listeners.
func StartStatusUpdateConsumer(ctx context.Context, conn *amqp.Connection, notifier *notify.Notifier, logger *slog.Logger) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(StatusUpdatedQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(
		StatusUpdatedQueue,
		"ordering-notifier", // consumer tag
		false,               // autoAck
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				logger.Info("stopping status update consumer")
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Info("messages channel closed")
					return
				}

				if err := handleStatusUpdated(notifier, msg.Body); err != nil {
					logger.Warn("handle message", "error", err)
					_ = msg.Nack(false, false) // drop, no retry queue yet
					continue
				}
				_ = msg.Ack(false)
			}
		}
	}()

	return nil
}

func handleStatusUpdated(notifier *notify.Notifier, body []byte) error {
	var ev OrderStatusUpdated
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	notifier.OrderStatusUpdate(ev.OrderID, order.Status(ev.Status), ev.RestaurantName)
	return nil
}
