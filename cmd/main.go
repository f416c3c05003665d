package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/AkinDevProject/oneeats-ordering-go/internal/cart"
	"github.com/AkinDevProject/oneeats-ordering-go/internal/config"
	"github.com/AkinDevProject/oneeats-ordering-go/internal/events"
	"github.com/AkinDevProject/oneeats-ordering-go/internal/httpapi"
	"github.com/AkinDevProject/oneeats-ordering-go/internal/kitchen"
	"github.com/AkinDevProject/oneeats-ordering-go/internal/logging"
	"github.com/AkinDevProject/oneeats-ordering-go/internal/menu"
	"github.com/AkinDevProject/oneeats-ordering-go/internal/notify"
	"github.com/AkinDevProject/oneeats-ordering-go/internal/order"
)

func main() {
	var (
		mode = flag.String("mode", "server", "run mode: server (ordering API) or notifier (status-update subscriber)")
		demo = flag.Bool("demo", false, "replay the canned notification script on startup")
	)
	flag.Parse()

	cfg, err := config.Load(getEnv("CONFIG_DIR", "./configs"), getEnv("APP_ENV", "dev"))
	if err != nil {
		logging.Base().Error("load config", "error", err)
		os.Exit(1)
	}

	logger := logging.Init(cfg.App.Name, cfg.App.LogLevel, cfg.App.LogFile)

	switch *mode {
	case "server":
		runServer(cfg, *demo, logger)
	case "notifier":
		runNotifier(cfg, logger)
	default:
		logger.Error("unknown mode", "mode", *mode)
		os.Exit(1)
	}
}

// runServer hosts the ordering API: cart, orders, kitchen simulation, and
// the in-process notification fan-out.
func runServer(cfg config.Config, demo bool, logger *slog.Logger) {
	catalog := menu.NewCatalog(menu.Seed())
	carts := cart.NewStore()
	orders := order.NewManager(cfg.Kitchen.EstimatedReady)
	sim := kitchen.NewSimulator(orders, cfg.Kitchen.PreparingAfter, cfg.Kitchen.ReadyAfter, logging.New("kitchen"))
	defer sim.Stop()

	notifier := notify.New(logging.New("notify"))
	if cfg.App.DevAlerts {
		notifier.EnableAlerts(os.Stdout)
	}

	// Every applied status change fans out through the notifier.
	orders.OnStatusChange(func(o order.Order) {
		notifier.OrderStatusUpdate(o.ID, o.Status, o.RestaurantName)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The broker is optional: without it, status events stay in-process.
	if cfg.Rabbit.URL != "" {
		conn, err := amqp.Dial(cfg.Rabbit.URL)
		if err != nil {
			logger.Error("connect to RabbitMQ", "error", err)
			os.Exit(1)
		}
		defer conn.Close()

		publisher, err := events.NewPublisher(conn)
		if err != nil {
			logger.Error("create publisher", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()

		orders.OnStatusChange(func(o order.Order) {
			if err := publisher.PublishStatusUpdated(ctx, o); err != nil {
				logger.Warn("publish status update", "order_id", o.ID, "error", err)
			}
		})
	}

	if demo {
		stopDemo := notify.NewDemoScript().Run(notifier)
		defer stopDemo()
	}

	h := httpapi.NewHandler(catalog, carts, orders, sim, logging.New("http"))

	srv := &http.Server{
		Addr:         cfg.App.HTTPAddr,
		Handler:      httpapi.NewRouter(h),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		logger.Info("ordering service listening", "addr", cfg.App.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	waitForSignal()
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.WriteTimeout)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
	cancel()
}

// runNotifier consumes status-update events from the broker and renders
// them as user-facing alerts, the way a push-notification sidecar would.
func runNotifier(cfg config.Config, logger *slog.Logger) {
	if cfg.Rabbit.URL == "" {
		logger.Error("notifier mode requires rabbitmq.url")
		os.Exit(1)
	}

	conn, err := amqp.Dial(cfg.Rabbit.URL)
	if err != nil {
		logger.Error("connect to RabbitMQ", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifier := notify.New(logging.New("notify"))
	notifier.EnableAlerts(os.Stdout)

	if err := events.StartStatusUpdateConsumer(ctx, conn, notifier, logging.New("consumer")); err != nil {
		logger.Error("start consumer", "error", err)
		os.Exit(1)
	}

	logger.Info("notification subscriber started")
	waitForSignal()
	logger.Info("shutting down")
	cancel()
}

func waitForSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
