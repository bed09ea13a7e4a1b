package handlers

import (
	"net/http"

	service "github.com/mo7amedgom3a/storefront/internal/services"
	"github.com/mo7amedgom3a/storefront/internal/utils/response"
	"github.com/mo7amedgom3a/storefront/internal/view"
)

type CatalogHandler struct {
	cartService *service.CartService
}

func NewCatalogHandler(cartService *service.CartService) *CatalogHandler {
	return &CatalogHandler{cartService: cartService}
}

// List always renders something: an upstream failure is replaced with the
// fallback catalog inside the service.
func (h *CatalogHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		products := h.cartService.Catalog(r.Context(), session)

		response.Success(w, http.StatusOK, view.NewProductViews(products))

	}
}
