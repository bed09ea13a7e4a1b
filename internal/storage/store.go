package storage

import (
	"context"

	"github.com/mo7amedgom3a/storefront/internal/models"
)

// CartStore owns the single durable slot that holds a session's cart. A missing
// slot loads as an empty cart; a slot that no longer parses also loads as an
// empty cart rather than an error.
type CartStore interface {
	Load(ctx context.Context, sessionID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, sessionID string) error
	Close() error
}

func CartKey(sessionID string) string {
	return "cart:" + sessionID
}
