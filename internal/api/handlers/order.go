package handlers

import (
	"net/http"

	"github.com/mo7amedgom3a/storefront/internal/errors"
	service "github.com/mo7amedgom3a/storefront/internal/services"
	"github.com/mo7amedgom3a/storefront/internal/utils/response"
	"github.com/mo7amedgom3a/storefront/internal/view"
)

type OrderHandler struct {
	cartService *service.CartService
}

func NewOrderHandler(cartService *service.CartService) *OrderHandler {
	return &OrderHandler{cartService: cartService}
}

// List fetches the customer's order history; upstream failures degrade to the
// fallback set inside the service, so this only errors on bad input.
func (h *OrderHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		customerID := r.URL.Query().Get("customer_id")
		if customerID == "" {
			response.Error(w, errors.ValidationError("Customer ID is required"))

			return
		}

		orders, err := h.cartService.LoadOrdersFor(r.Context(), session, customerID)
		if err != nil {
			response.Error(w, err)

			return
		}

		products := h.cartService.Products(session)

		response.Success(w, http.StatusOK, view.NewOrderViews(orders, products))

	}
}
