package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mo7amedgom3a/storefront/internal/api/middleware"
	"github.com/mo7amedgom3a/storefront/internal/errors"
	"github.com/mo7amedgom3a/storefront/internal/models"
	service "github.com/mo7amedgom3a/storefront/internal/services"
	"github.com/mo7amedgom3a/storefront/internal/utils"
	"github.com/mo7amedgom3a/storefront/internal/utils/response"
)

type CheckoutHandler struct {
	cartService *service.CartService
	validator   *validator.Validate
}

func NewCheckoutHandler(cartService *service.CartService) *CheckoutHandler {
	return &CheckoutHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

// Start captures the checkout snapshot. An empty cart leaves the session where
// it is; the response reflects the unchanged screen.
func (h *CheckoutHandler) Start() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		snapshot, err := h.cartService.StartCheckout(r.Context(), session)
		if err != nil {
			response.Error(w, err)

			return
		}

		if snapshot == nil {
			response.Success(w, http.StatusOK, map[string]any{
				"section":  h.cartService.Section(session),
				"checkout": nil,
			})

			return
		}

		response.Success(w, http.StatusOK, map[string]any{
			"section":  models.SectionCheckout,
			"checkout": snapshot,
		})

	}
}

func (h *CheckoutHandler) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.SubmitOrderRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError(err.Error()))

			return
		}

		order, err := h.cartService.SubmitOrder(r.Context(), session, req.CustomerID, req.ShippingAddress)
		if err != nil {
			logger.Error("Order submission failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Order placed successfully", slog.String("orderId", order.OrderID))
		response.Success(w, http.StatusCreated, order)

	}
}
