package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/mo7amedgom3a/storefront/internal/api/handlers"
	appErrors "github.com/mo7amedgom3a/storefront/internal/errors"
	"github.com/mo7amedgom3a/storefront/internal/models"
	service "github.com/mo7amedgom3a/storefront/internal/services"
	"github.com/mo7amedgom3a/storefront/internal/services/mocks"
	"github.com/mo7amedgom3a/storefront/internal/storage"
	"github.com/mo7amedgom3a/storefront/internal/testutils"
	"github.com/mo7amedgom3a/storefront/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCartTest(t *testing.T) (*service.CartService, *mocks.CommerceClient, *handlers.CartHandler) {
	t.Helper()

	mockClient := new(mocks.CommerceClient)
	cartService := service.NewCartService(storage.NewMemoryStore(), mockClient)
	cartHandler := handlers.NewCartHandler(cartService)

	return cartService, mockClient, cartHandler
}

func decodeAPIResponse(t *testing.T, recorder *httptest.ResponseRecorder) *response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	return &resp
}

func stubCatalog() []models.Product {
	return []models.Product{
		{ID: "P1", Name: "Wireless Headphones", Price: 10.00, StockQuantity: 5, IsActive: true},
	}
}

func TestGetCart(t *testing.T) {
	t.Run("Success - Empty Cart", func(t *testing.T) {
		// Arrange
		_, _, cartHandler := setupCartTest(t)
		req := testutils.CreateTestRequestWithSession(http.MethodGet, "/api/v1/cart", nil, uuid.New(), nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.GetCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeAPIResponse(t, recorder)
		assert.True(t, resp.Success)
	})

	t.Run("Failure - No Session", func(t *testing.T) {
		// Arrange
		_, _, cartHandler := setupCartTest(t)
		req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/cart", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.GetCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		resp := decodeAPIResponse(t, recorder)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeUnauthorized, resp.Error.Code)
	})
}

func TestAddItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		_, mockClient, cartHandler := setupCartTest(t)
		mockClient.On("ListProducts", mock.Anything).Return(stubCatalog(), nil).Once()

		body, _ := json.Marshal(models.AddItemRequest{ProductID: "P1"})
		req := testutils.CreateTestRequestWithSession(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(body), uuid.New(), nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeAPIResponse(t, recorder)
		assert.True(t, resp.Success)
		mockClient.AssertExpectations(t)
	})

	t.Run("Failure - Missing Product ID", func(t *testing.T) {
		// Arrange
		_, _, cartHandler := setupCartTest(t)

		body := []byte(`{}`)
		req := testutils.CreateTestRequestWithSession(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(body), uuid.New(), nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		resp := decodeAPIResponse(t, recorder)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
	})

	t.Run("Failure - Empty Body", func(t *testing.T) {
		// Arrange
		_, _, cartHandler := setupCartTest(t)
		req := testutils.CreateTestRequestWithSession(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(nil), uuid.New(), nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestRemoveItem(t *testing.T) {
	t.Run("Success - No-op On Absent Line", func(t *testing.T) {
		// Arrange
		_, _, cartHandler := setupCartTest(t)
		req := testutils.CreateTestRequestWithSession(http.MethodDelete, "/api/v1/cart/items/P1", nil, uuid.New(),
			map[string]string{"productId": "P1"})
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.RemoveItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Failure - Missing Product ID", func(t *testing.T) {
		// Arrange
		_, _, cartHandler := setupCartTest(t)
		req := testutils.CreateTestRequestWithSession(http.MethodDelete, "/api/v1/cart/items/", nil, uuid.New(), nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.RemoveItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestNavigate(t *testing.T) {
	t.Run("Success - Valid Section", func(t *testing.T) {
		// Arrange
		cartService, _, cartHandler := setupCartTest(t)
		sessionUUID := uuid.New()

		body, _ := json.Marshal(models.NavigateRequest{Section: "cart"})
		req := testutils.CreateTestRequestWithSession(http.MethodPost, "/api/v1/navigate", bytes.NewReader(body), sessionUUID, nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.Navigate()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, models.SectionCart, cartService.Section(sessionUUID.String()))
	})

	t.Run("Ignored - Invalid Section", func(t *testing.T) {
		// Arrange
		cartService, _, cartHandler := setupCartTest(t)
		sessionUUID := uuid.New()

		body, _ := json.Marshal(models.NavigateRequest{Section: "attic"})
		req := testutils.CreateTestRequestWithSession(http.MethodPost, "/api/v1/navigate", bytes.NewReader(body), sessionUUID, nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.Navigate()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, models.SectionProducts, cartService.Section(sessionUUID.String()))
	})
}

func TestState(t *testing.T) {
	t.Run("Success - Reflects Cart Totals", func(t *testing.T) {
		// Arrange
		cartService, mockClient, cartHandler := setupCartTest(t)
		sessionUUID := uuid.New()
		mockClient.On("ListProducts", mock.Anything).Return(stubCatalog(), nil).Once()

		_, err := cartService.AddToCart(context.Background(), sessionUUID.String(), "P1")
		require.NoError(t, err)

		req := testutils.CreateTestRequestWithSession(http.MethodGet, "/api/v1/state", nil, sessionUUID, nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.State()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp struct {
			Success bool                 `json:"success"`
			Data    models.StateResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, models.SectionProducts, resp.Data.Section)
		assert.Equal(t, 1, resp.Data.ItemCount)
		assert.InDelta(t, 10.00, resp.Data.Subtotal, 1e-9)
	})
}
