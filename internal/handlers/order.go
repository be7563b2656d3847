package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/demoblaze/storefront-e2e/internal/models"
	"github.com/demoblaze/storefront-e2e/internal/services"
	"github.com/sirupsen/logrus"
)

// PlaceOrderRequest is the body of /placeorder
type PlaceOrderRequest struct {
	CartOwnerRequest
	Name    string `json:"name"`
	Country string `json:"country"`
	City    string `json:"city"`
	Card    string `json:"card"`
	Month   string `json:"month"`
	Year    string `json:"year"`
}

// OrderResponse is what the confirmation dialog shows
type OrderResponse struct {
	Reference string `json:"reference"`
	Amount    string `json:"amount"`
	Card      string `json:"card"`
	Name      string `json:"name"`
	Date      string `json:"date"`
}

func toOrderResponse(order *models.Order) OrderResponse {
	return OrderResponse{
		Reference: order.Reference,
		Amount:    order.GetFormattedAmount(),
		Card:      order.MaskedCard(),
		Name:      order.Form.Name,
		Date:      order.CreatedAt.Format("2/1/2006"),
	}
}

// PlaceOrderHandler turns the cart into an order
type PlaceOrderHandler struct {
	orders   services.OrderService
	accounts services.AccountService
	logger   logrus.FieldLogger
}

// NewPlaceOrderHandler creates a new place order handler
func NewPlaceOrderHandler(orders services.OrderService, accounts services.AccountService, logger logrus.FieldLogger) *PlaceOrderHandler {
	return &PlaceOrderHandler{orders: orders, accounts: accounts, logger: logger}
}

// ServeHTTP handles POST /api/placeorder
func (h *PlaceOrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	owner, err := resolveOwner(h.accounts, req.CartOwnerRequest)
	if err != nil {
		sendErrorMessage(w, h.logger, MsgInvalidToken)
		return
	}

	order, err := h.orders.PlaceOrder(r.Context(), owner, models.OrderForm{
		Name:    req.Name,
		Country: req.Country,
		City:    req.City,
		Card:    req.Card,
		Month:   req.Month,
		Year:    req.Year,
	})
	switch {
	case err == nil:
		h.logger.WithFields(logrus.Fields{
			"reference": order.Reference,
			"amount":    order.Amount,
		}).Info("Order placed")
		writeJSON(w, h.logger, http.StatusOK, toOrderResponse(order))
	case errors.Is(err, models.ErrMissingNameOrCard):
		sendErrorMessage(w, h.logger, MsgFillNameAndCard)
	default:
		h.logger.WithError(err).Error("Error placing order")
		sendErrorMessage(w, h.logger, MsgInternalError)
	}
}

// OrderLookupHandler returns a placed order by reference
type OrderLookupHandler struct {
	orders services.OrderService
	logger logrus.FieldLogger
}

// NewOrderLookupHandler creates a new order lookup handler
func NewOrderLookupHandler(orders services.OrderService, logger logrus.FieldLogger) *OrderLookupHandler {
	return &OrderLookupHandler{orders: orders, logger: logger}
}

// ServeHTTP handles GET /api/orders/{reference}
func (h *OrderLookupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	reference := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	if reference == "" || strings.Contains(reference, "/") {
		sendErrorResponse(w, "order reference is required", http.StatusBadRequest)
		return
	}

	order, err := h.orders.GetOrderByReference(r.Context(), reference)
	if errors.Is(err, models.ErrOrderNotFound) {
		sendErrorResponse(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Error looking up order")
		sendErrorResponse(w, "failed to look up order", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toOrderResponse(order))
}
