package commerce_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mo7amedgom3a/storefront/internal/config"
	appErrors "github.com/mo7amedgom3a/storefront/internal/errors"
	"github.com/mo7amedgom3a/storefront/internal/models"
	"github.com/mo7amedgom3a/storefront/pkg/commerce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) commerce.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Commerce{
		BaseURL:            server.URL,
		ProductsPath:       "/products",
		OrdersPath:         "/orders",
		CustomerOrdersPath: "/customers/{customerId}/orders",
		Timeout:            2 * time.Second,
	}

	return commerce.NewRESTClient(cfg)
}

func TestListProducts(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		catalog := []models.Product{
			{ID: "prod_1a2b3c4d", SKU: "HEADPHONES-001", Name: "Wireless Headphones", Price: 99.99, StockQuantity: 50, IsActive: true},
		}

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/products", r.URL.Path)
			json.NewEncoder(w).Encode(catalog)
		}))

		// Act
		products, err := client.ListProducts(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, catalog, products)
	})

	t.Run("Failure - Non-Success Status", func(t *testing.T) {
		// Arrange
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))

		// Act
		products, err := client.ListProducts(ctx)

		// Assert
		assert.Nil(t, products)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNetwork, appErr.Code)
	})

	t.Run("Failure - Transport Error", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close() // connection refused from here on

		cfg := &config.Commerce{
			BaseURL:      server.URL,
			ProductsPath: "/products",
			Timeout:      time.Second,
		}
		client := commerce.NewRESTClient(cfg)

		// Act
		products, err := client.ListProducts(ctx)

		// Assert
		assert.Nil(t, products)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNetwork, appErr.Code)
	})
}

func TestCreateOrder(t *testing.T) {
	ctx := t.Context()

	orderReq := &models.CreateOrderRequest{
		CustomerID: "C1",
		ShippingAddress: models.Address{
			Street: "123 Serverless Way", City: "Cloud City", ZipCode: "12345", Country: "AWS",
		},
		Items: []models.OrderItem{
			{ProductID: "prod_1a2b3c4d", Quantity: 1, PricePerUnit: 99.99},
		},
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/orders", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var received models.CreateOrderRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			assert.Equal(t, "C1", received.CustomerID)

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.Order{
				OrderID:     "a1b2c3d4",
				CustomerID:  received.CustomerID,
				OrderStatus: models.OrderStatusPending,
				TotalAmount: 99.99,
			})
		}))

		// Act
		order, err := client.CreateOrder(ctx, orderReq)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, "a1b2c3d4", order.OrderID)
		assert.Equal(t, models.OrderStatusPending, order.OrderStatus)
	})

	t.Run("Failure - Non-Success Status", func(t *testing.T) {
		// Arrange
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))

		// Act
		order, err := client.CreateOrder(ctx, orderReq)

		// Assert
		assert.Nil(t, order)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNetwork, appErr.Code)
	})
}

func TestCustomerOrders(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Customer ID Substituted Into Path", func(t *testing.T) {
		// Arrange
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/customers/C1/orders", r.URL.Path)
			json.NewEncoder(w).Encode([]models.Order{{OrderID: "ord-1", CustomerID: "C1"}})
		}))

		// Act
		orders, err := client.CustomerOrders(ctx, "C1")

		// Assert
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "C1", orders[0].CustomerID)
	})

	t.Run("Failure - Non-Success Status", func(t *testing.T) {
		// Arrange
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		// Act
		orders, err := client.CustomerOrders(ctx, "C1")

		// Assert
		assert.Nil(t, orders)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNetwork, appErr.Code)
	})
}
