package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AkinDevProject/oneeats-ordering-go/internal/cart"
)

type cartView struct {
	Items     []cart.Line `json:"items"`
	ItemCount int         `json:"itemCount"`
	Total     float64     `json:"total"`
}

func viewOf(c *cart.Cart) cartView {
	return cartView{Items: c.Lines(), ItemCount: c.ItemCount(), Total: c.Total()}
}

func (h *Handler) ListMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.List())
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerId")
	if customerID == "" {
		writeError(w, http.StatusBadRequest, "missing customerId")
		return
	}

	writeJSON(w, http.StatusOK, viewOf(h.carts.Get(customerID)))
}

type addItemRequest struct {
	ItemID string `json:"itemId"`
}

func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerId")
	if customerID == "" {
		writeError(w, http.StatusBadRequest, "missing customerId")
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemID == "" {
		writeError(w, http.StatusBadRequest, "invalid body: itemId required")
		return
	}

	item, ok := h.catalog.Get(req.ItemID)
	if !ok {
		writeError(w, http.StatusNotFound, "menu item not found")
		return
	}

	c := h.carts.Get(customerID)
	c.AddItem(item)

	writeJSON(w, http.StatusOK, viewOf(c))
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerId")
	itemID := chi.URLParam(r, "itemId")
	if customerID == "" || itemID == "" {
		writeError(w, http.StatusBadRequest, "missing customerId or itemId")
		return
	}

	// Removing an absent item is a no-op, not an error.
	c := h.carts.Get(customerID)
	c.RemoveItem(itemID)

	writeJSON(w, http.StatusOK, viewOf(c))
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerId")
	if customerID == "" {
		writeError(w, http.StatusBadRequest, "missing customerId")
		return
	}

	c := h.carts.Get(customerID)
	c.Clear()

	writeJSON(w, http.StatusOK, viewOf(c))
}
