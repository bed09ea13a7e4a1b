package handlers_test

import (
	"errors"
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupOrderTest(t *testing.T) (*mocks.CommerceClient, *handlers.OrderHandler) {
	t.Helper()

	mockClient := new(mocks.CommerceClient)
	cartService := service.NewCartService(storage.NewMemoryStore(), mockClient)
	orderHandler := handlers.NewOrderHandler(cartService)

	return mockClient, orderHandler
}

func TestListOrders(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockClient, orderHandler := setupOrderTest(t)
		mockClient.On("CustomerOrders", mock.Anything, "C1").Return([]models.Order{
			{OrderID: "ord_1", CustomerID: "C1", OrderStatus: models.OrderStatusPending, TotalAmount: 25.00},
		}, nil).Once()

		req := testutils.CreateTestRequestWithSession(http.MethodGet, "/api/v1/orders?customer_id=C1", nil, uuid.New(), nil)
		recorder := httptest.NewRecorder()

		// Act
		orderHandler.List()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeAPIResponse(t, recorder)
		assert.True(t, resp.Success)
		mockClient.AssertExpectations(t)
	})

	t.Run("Failure - Missing Customer ID", func(t *testing.T) {
		// Arrange
		_, orderHandler := setupOrderTest(t)
		req := testutils.CreateTestRequestWithSession(http.MethodGet, "/api/v1/orders", nil, uuid.New(), nil)
		recorder := httptest.NewRecorder()

		// Act
		orderHandler.List()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		resp := decodeAPIResponse(t, recorder)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
	})

	t.Run("Upstream Failure - Serves Fallback Orders", func(t *testing.T) {
		// Arrange
		mockClient, orderHandler := setupOrderTest(t)
		mockClient.On("CustomerOrders", mock.Anything, "C1").Return(nil, errors.New("connection refused")).Once()

		req := testutils.CreateTestRequestWithSession(http.MethodGet, "/api/v1/orders?customer_id=C1", nil, uuid.New(), nil)
		recorder := httptest.NewRecorder()

		// Act
		orderHandler.List()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeAPIResponse(t, recorder)
		assert.True(t, resp.Success)
		assert.NotNil(t, resp.Data)
		mockClient.AssertExpectations(t)
	})
}
