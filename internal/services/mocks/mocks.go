// Package mocks provides testify mocks for the ports the cart service depends
// on.
package mocks

import (
	"context"

	"github.com/mo7amedgom3a/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type CartStore struct {
	mock.Mock
}

func (m *CartStore) Load(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)

	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartStore) Save(ctx context.Context, cart *models.Cart) error {
	args := m.Called(ctx, cart)

	return args.Error(0)
}

func (m *CartStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)

	return args.Error(0)
}

func (m *CartStore) Close() error {
	args := m.Called()

	return args.Error(0)
}

type CommerceClient struct {
	mock.Mock
}

func (m *CommerceClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)

	if products, ok := args.Get(0).([]models.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CommerceClient) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	args := m.Called(ctx, req)

	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CommerceClient) CustomerOrders(ctx context.Context, customerID string) ([]models.Order, error) {
	args := m.Called(ctx, customerID)

	if orders, ok := args.Get(0).([]models.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}
