package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AkinDevProject/oneeats-ordering-go/internal/cart"
	"github.com/AkinDevProject/oneeats-ordering-go/internal/kitchen"
	"github.com/AkinDevProject/oneeats-ordering-go/internal/menu"
	"github.com/AkinDevProject/oneeats-ordering-go/internal/order"
)

// Handler serves the cart and order endpoints. All state lives in the
// injected components; the handler itself is stateless.
type Handler struct {
	catalog *menu.Catalog
	carts   *cart.Store
	orders  *order.Manager
	kitchen *kitchen.Simulator
	logger  *slog.Logger
}

func NewHandler(catalog *menu.Catalog, carts *cart.Store, orders *order.Manager, sim *kitchen.Simulator, logger *slog.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		carts:   carts,
		orders:  orders,
		kitchen: sim,
		logger:  logger,
	}
}

type createOrderRequest struct {
	CustomerID  string `json:"customerId"`
	Fulfillment string `json:"fulfillmentType"`
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CustomerID == "" {
		writeError(w, http.StatusBadRequest, "invalid body: customerId required")
		return
	}

	fulfillment := order.FulfillmentType(req.Fulfillment)
	switch fulfillment {
	case "":
		fulfillment = order.FulfillmentTakeaway
	case order.FulfillmentTakeaway, order.FulfillmentDineIn:
	default:
		writeError(w, http.StatusBadRequest, "unknown fulfillmentType")
		return
	}

	c := h.carts.Get(req.CustomerID)
	lines := c.Lines()
	if len(lines) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "cart is empty")
		return
	}

	o := h.orders.Create(lines, fulfillment)
	h.kitchen.Track(o.ID)
	c.Clear()

	ordersCreated.Inc()
	h.logger.Info("order created",
		"order_id", o.ID, "customer_id", req.CustomerID,
		"total", o.Total, "fulfillment", string(o.Fulfillment))

	writeJSON(w, http.StatusCreated, o)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "missing orderId")
		return
	}

	o, ok := h.orders.GetByID(orderID)
	if !ok {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}

	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.orders.List())
}

func (h *Handler) CurrentOrder(w http.ResponseWriter, r *http.Request) {
	o, ok := h.orders.Current()
	if !ok {
		writeError(w, http.StatusNotFound, "no current order")
		return
	}

	writeJSON(w, http.StatusOK, o)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "missing orderId")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	status := order.Status(req.Status)
	if !status.Valid() {
		writeError(w, http.StatusBadRequest, "unknown status")
		return
	}

	o, err := h.orders.UpdateStatus(orderID, status)
	switch {
	case errors.Is(err, order.ErrNotFound):
		writeError(w, http.StatusNotFound, "order not found")
		return
	case errors.Is(err, order.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "invalid status transition")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to update status")
		return
	}

	statusTransitions.WithLabelValues(string(status)).Inc()
	writeJSON(w, http.StatusOK, o)
}
