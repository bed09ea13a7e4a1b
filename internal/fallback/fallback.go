// Package fallback holds the fixed illustrative records shown when a read-only
// upstream fetch fails, so the storefront never renders an empty screen.
package fallback

import (
	"time"

	"github.com/google/uuid"
	"github.com/mo7amedgom3a/storefront/internal/models"
)

func Products() []models.Product {
	return []models.Product{
		{
			ID:            "prod_1a2b3c4d",
			SKU:           "HEADPHONES-001",
			Name:          "Wireless Headphones",
			Description:   "High-quality wireless headphones with noise cancellation",
			Price:         99.99,
			StockQuantity: 50,
			IsActive:      true,
		},
		{
			ID:            "prod_5e6f7g8h",
			SKU:           "SPEAKER-001",
			Name:          "Bluetooth Speaker",
			Description:   "Portable Bluetooth speaker with 20 hours of battery life",
			Price:         79.99,
			StockQuantity: 30,
			IsActive:      true,
		},
		{
			ID:            "prod_9i8j7k6l",
			SKU:           "SMARTWATCH-001",
			Name:          "Smart Watch",
			Description:   "Fitness tracker and smartwatch with heart rate monitor",
			Price:         149.99,
			StockQuantity: 20,
			IsActive:      true,
		},
	}
}

// OrdersFor returns one illustrative order tagged with the given customer ID.
func OrdersFor(customerID string) []models.Order {
	return []models.Order{
		{
			OrderID:     uuid.NewString(),
			CustomerID:  customerID,
			OrderDate:   time.Now().Add(-24 * time.Hour).UTC().Truncate(time.Second),
			OrderStatus: models.OrderStatusPending,
			TotalAmount: 149.97,
			ShippingAddress: models.Address{
				Street:  "123 Serverless Way",
				City:    "Cloud City",
				ZipCode: "12345",
				Country: "AWS",
			},
			Items: []models.OrderItem{
				{ProductID: "prod_1a2b3c4d", Quantity: 1, PricePerUnit: 99.99},
				{ProductID: "prod_5e6f7g8h", Quantity: 2, PricePerUnit: 24.99},
			},
		},
	}
}
