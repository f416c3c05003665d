package integration

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AkinDevProject/oneeats-ordering-go/internal/events"
	"github.com/AkinDevProject/oneeats-ordering-go/internal/notify"
	"github.com/AkinDevProject/oneeats-ordering-go/internal/order"
	"github.com/AkinDevProject/oneeats-ordering-go/internal/testutil"
)

// Publishes a status update through RabbitMQ and asserts a notifier on the
// consuming side fans it out to its listeners.
func TestStatusUpdateRoundTrip(t *testing.T) {
	conn := testutil.StartRabbitMQ(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	publisher, err := events.NewPublisher(conn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = publisher.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	notifier := notify.New(logger)

	var mu sync.Mutex
	var got []notify.Notification
	notifier.AddListener(func(n notify.Notification) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, n)
	})

	require.NoError(t, events.StartStatusUpdateConsumer(ctx, conn, notifier, logger))

	o := order.Order{
		ID:             "o-integration-1",
		RestaurantName: "Pizza Palace",
		Total:          25.98,
		Status:         order.StatusReady,
	}
	require.NoError(t, publisher.PublishStatusUpdated(ctx, o))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	}, 5*time.Second, 100*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, notify.TypeOrderStatusUpdate, got[0].Type)
	require.Equal(t, "o-integration-1", got[0].OrderID)
	require.Equal(t, "ready", got[0].Status)
	require.Equal(t, "Pizza Palace", got[0].RestaurantName)
}
