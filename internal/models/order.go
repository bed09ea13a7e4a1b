package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// Address fields are free text; the upstream service owns any stricter rules.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

type OrderItem struct {
	ProductID    string  `json:"product_id" validate:"required"`
	Quantity     int     `json:"quantity" validate:"required,min=1"`
	PricePerUnit float64 `json:"price_per_unit" validate:"required,gte=0"`
}

type CreateOrderRequest struct {
	CustomerID      string      `json:"customer_id" validate:"required"`
	ShippingAddress Address     `json:"shipping_address"`
	Items           []OrderItem `json:"items" validate:"required,min=1,dive"`
}

// Order is the read-only shape returned by the upstream order service. This
// service never mutates an order after creation.
type Order struct {
	OrderID         string      `json:"order_id"`
	CustomerID      string      `json:"customer_id"`
	OrderDate       time.Time   `json:"order_date"`
	OrderStatus     OrderStatus `json:"order_status"`
	TotalAmount     float64     `json:"total_amount"`
	ShippingAddress Address     `json:"shipping_address"`
	Items           []OrderItem `json:"items"`
}

type SubmitOrderRequest struct {
	CustomerID      string  `json:"customer_id"`
	ShippingAddress Address `json:"shipping_address"`
}

type LoadOrdersRequest struct {
	CustomerID string `json:"customer_id"`
}
