package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nikolayk812/pharmacy/internal/api/dto"
	"github.com/nikolayk812/pharmacy/internal/api/middleware"
	"github.com/nikolayk812/pharmacy/internal/port"
)

type OrderHandler struct {
	orders port.OrderService
}

func NewOrder(orders port.OrderService) *OrderHandler {
	if orders == nil {
		panic("order service cannot be nil")
	}

	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	orders, err := h.orders.ListOrders(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.OrdersToDTO(orders))
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req dto.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Quantity < 1 {
		writeMessage(w, http.StatusBadRequest, "quantity must be at least 1")
		return
	}

	if req.ShippingAddress == "" {
		writeMessage(w, http.StatusBadRequest, "shipping address is required")
		return
	}

	order, err := h.orders.PlaceOrder(r.Context(), userID, port.PlaceOrderRequest{
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.OrderToDTO(order))
}
