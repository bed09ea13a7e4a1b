package commerce

import (
	"context"
	"log/slog"

	"github.com/mo7amedgom3a/storefront/internal/cache"
	"github.com/mo7amedgom3a/storefront/internal/models"
)

// cachedClient keeps the shared product catalog in the cache so that every new
// session does not hit the upstream API. Orders are never cached through here:
// CreateOrder must always reach upstream, and a customer's order list changes
// right after a successful submit.
type cachedClient struct {
	next  Client
	cache cache.Cache
}

func NewCachedClient(next Client, c cache.Cache) Client {
	return &cachedClient{next: next, cache: c}
}

func (c *cachedClient) ListProducts(ctx context.Context) ([]models.Product, error) {

	key := cache.Key(cache.CatalogKeyPrefix, "all")

	var products []models.Product

	found, err := c.cache.Get(ctx, key, &products)
	if err != nil {
		slog.Warn("Catalog cache read failed", slog.String("error", err.Error()))
	}

	if found {
		return products, nil
	}

	products, err = c.next.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, key, products, 0); err != nil {
		slog.Warn("Catalog cache write failed", slog.String("error", err.Error()))
	}

	return products, nil
}

func (c *cachedClient) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	order, err := c.next.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (c *cachedClient) CustomerOrders(ctx context.Context, customerID string) ([]models.Order, error) {
	return c.next.CustomerOrders(ctx, customerID)
}
