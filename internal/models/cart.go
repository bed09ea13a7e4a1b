package models

import (
	"time"
)

// CartLine snapshots the product name and unit price at add time; it is not
// re-fetched when the catalog changes mid-session.
type CartLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart holds at most one line per product ID. A quantity reaching zero removes
// the line entirely.
type Cart struct {
	SessionID string              `json:"session_id"`
	Lines     map[string]CartLine `json:"lines"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func NewCart(sessionID string) *Cart {
	return &Cart{
		SessionID: sessionID,
		Lines:     make(map[string]CartLine),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (c *Cart) ItemCount() int {
	var count int

	for _, line := range c.Lines {
		count += line.Quantity
	}

	return count
}

func (c *Cart) Subtotal() float64 {
	var subtotal float64

	for _, line := range c.Lines {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}

	return subtotal
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type ChangeQuantityRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Delta     int    `json:"delta" validate:"required"`
}

type NavigateRequest struct {
	Section string `json:"section" validate:"required"`
}
