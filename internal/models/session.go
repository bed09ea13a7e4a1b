package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Section identifies one of the four storefront screens.
type Section string

const (
	SectionProducts Section = "products"
	SectionCart     Section = "cart"
	SectionCheckout Section = "checkout"
	SectionOrders   Section = "orders"
)

func (s Section) Valid() bool {
	switch s {
	case SectionProducts, SectionCart, SectionCheckout, SectionOrders:
		return true
	}

	return false
}

type Claims struct {
	SessionID uuid.UUID `json:"session_id"`
	jwt.RegisteredClaims
}

// CheckoutSnapshot captures the cart at the moment checkout begins. The
// subtotal is not recomputed while the checkout screen is open.
type CheckoutSnapshot struct {
	Lines      []CartLine `json:"lines"`
	Subtotal   float64    `json:"subtotal"`
	CapturedAt time.Time  `json:"captured_at"`
}

type SessionResponse struct {
	Token     string    `json:"token"`
	SessionID uuid.UUID `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type StateResponse struct {
	Section   Section `json:"section"`
	ItemCount int     `json:"item_count"`
	Subtotal  float64 `json:"subtotal"`
}
