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
	"github.com/mo7amedgom3a/storefront/internal/view"
)

type CartHandler struct {
	cartService *service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.Cart(r.Context(), session)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view.NewCartView(cart))

	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError(err.Error()))

			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			response.Error(w, errors.ValidationError(err.Error()))

			return
		}

		cart, err := h.cartService.AddToCart(r.Context(), session, req.ProductID)
		if err != nil {
			logger.Error("Error adding item to cart", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view.NewCartView(cart))

	}
}

func (h *CartHandler) ChangeQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.ChangeQuantityRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError(err.Error()))

			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			response.Error(w, errors.ValidationError(err.Error()))

			return
		}

		cart, err := h.cartService.ChangeQuantity(r.Context(), session, req.ProductID, req.Delta)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view.NewCartView(cart))

	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		productID := r.PathValue("productId")
		if productID == "" {
			response.Error(w, errors.BadRequestError("Product ID is required"))

			return
		}

		cart, err := h.cartService.RemoveFromCart(r.Context(), session, productID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view.NewCartView(cart))

	}
}

func (h *CartHandler) Navigate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.NavigateRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError(err.Error()))

			return
		}

		section := h.cartService.Navigate(session, models.Section(req.Section))

		response.Success(w, http.StatusOK, map[string]models.Section{"section": section})

	}
}

// State is the read-only accessor bundle a presentation layer polls.
func (h *CartHandler) State() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		itemCount, subtotal, err := h.cartService.Totals(r.Context(), session)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.StateResponse{
			Section:   h.cartService.Section(session),
			ItemCount: itemCount,
			Subtotal:  subtotal,
		})

	}
}
