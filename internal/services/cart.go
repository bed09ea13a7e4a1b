package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/mo7amedgom3a/storefront/internal/errors"
	"github.com/mo7amedgom3a/storefront/internal/fallback"
	"github.com/mo7amedgom3a/storefront/internal/metrics"
	"github.com/mo7amedgom3a/storefront/internal/models"
	"github.com/mo7amedgom3a/storefront/internal/storage"
	"github.com/mo7amedgom3a/storefront/internal/utils"
	"github.com/mo7amedgom3a/storefront/pkg/commerce"
)

// CartService drives the storefront flow for every session: catalog, cart
// mutations, the four-screen navigation, and order submission. Operations on
// the same session are serialized; different sessions never contend.
type CartService struct {
	store    storage.CartStore
	commerce commerce.Client
	sessions *sessionRegistry
}

func NewCartService(store storage.CartStore, client commerce.Client) *CartService {
	return &CartService{
		store:    store,
		commerce: client,
		sessions: newSessionRegistry(),
	}
}

// Catalog returns the session's product list, fetching it on first use. An
// upstream failure is recovered with the illustrative fallback catalog.
func (s *CartService) Catalog(ctx context.Context, sessionID string) []models.Product {
	state := s.sessions.get(sessionID)
	state.mu.Lock()
	defer state.mu.Unlock()

	s.loadCatalogLocked(ctx, sessionID, state)

	return append([]models.Product(nil), state.products...)
}

// caller must hold state.mu
func (s *CartService) loadCatalogLocked(ctx context.Context, sessionID string, state *sessionState) {
	if state.productsLoaded {
		return
	}

	products, err := s.commerce.ListProducts(ctx)
	if err != nil {
		slog.Warn("Product fetch failed, serving fallback catalog",
			slog.String("sessionId", sessionID),
			slog.String("error", err.Error()))
		metrics.RecordFallback("products")

		products = fallback.Products()
	}

	state.products = products
	state.productsLoaded = true
}

// AddToCart inserts a new line with quantity 1, snapshotting the product's
// current name and price, or increments an existing line. An unknown product
// id is a silent no-op.
func (s *CartService) AddToCart(ctx context.Context, sessionID, productID string) (*models.Cart, error) {
	state := s.sessions.get(sessionID)
	state.mu.Lock()
	defer state.mu.Unlock()

	s.loadCatalogLocked(ctx, sessionID, state)

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, errors.StorageError("Failed to load cart").WithError(err)
	}

	product := findProduct(state.products, productID)
	if product == nil {
		slog.Warn("Ignoring add for unknown product",
			slog.String("sessionId", sessionID),
			slog.String("productId", productID))

		return cart, nil
	}

	line, exists := cart.Lines[productID]
	if exists {
		line.Quantity++
	} else {
		line = models.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  1,
		}
	}

	cart.Lines[productID] = line
	cart.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, errors.StorageError("Failed to save cart").WithError(err)
	}

	metrics.RecordCartOperation("add")

	return cart, nil
}

// ChangeQuantity applies delta to an existing line; a resulting quantity of
// zero or less removes the line. A missing line is a no-op.
func (s *CartService) ChangeQuantity(ctx context.Context, sessionID, productID string, delta int) (*models.Cart, error) {
	state := s.sessions.get(sessionID)
	state.mu.Lock()
	defer state.mu.Unlock()

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, errors.StorageError("Failed to load cart").WithError(err)
	}

	line, exists := cart.Lines[productID]
	if !exists {
		return cart, nil
	}

	line.Quantity += delta

	if line.Quantity <= 0 {
		delete(cart.Lines, productID)
	} else {
		cart.Lines[productID] = line
	}

	cart.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, errors.StorageError("Failed to save cart").WithError(err)
	}

	metrics.RecordCartOperation("change_quantity")

	return cart, nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, sessionID, productID string) (*models.Cart, error) {
	state := s.sessions.get(sessionID)
	state.mu.Lock()
	defer state.mu.Unlock()

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, errors.StorageError("Failed to load cart").WithError(err)
	}

	if _, exists := cart.Lines[productID]; exists {
		delete(cart.Lines, productID)
		cart.UpdatedAt = time.Now()

		if err := s.store.Save(ctx, cart); err != nil {
			return nil, errors.StorageError("Failed to save cart").WithError(err)
		}

		metrics.RecordCartOperation("remove")
	}

	return cart, nil
}

// Navigate moves to the requested screen. Invalid section ids are ignored and
// the current screen is returned unchanged.
func (s *CartService) Navigate(sessionID string, section models.Section) models.Section {
	state := s.sessions.get(sessionID)
	state.mu.Lock()
	defer state.mu.Unlock()

	if section.Valid() {
		state.section = section
	}

	return state.section
}

// StartCheckout moves to the checkout screen and captures the subtotal
// snapshot. With an empty cart nothing changes and no snapshot is returned.
func (s *CartService) StartCheckout(ctx context.Context, sessionID string) (*models.CheckoutSnapshot, error) {
	state := s.sessions.get(sessionID)
	state.mu.Lock()
	defer state.mu.Unlock()

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, errors.StorageError("Failed to load cart").WithError(err)
	}

	if cart.IsEmpty() {
		return nil, nil
	}

	snapshot := &models.CheckoutSnapshot{
		Lines:      sortedLines(cart),
		Subtotal:   cart.Subtotal(),
		CapturedAt: time.Now(),
	}

	state.section = models.SectionCheckout
	state.checkout = snapshot

	return snapshot, nil
}

// SubmitOrder builds the outbound order from the current cart and sends it
// upstream. On success the cart is cleared, the session lands on the orders
// screen, and that customer's orders are fetched. On failure both the cart and
// the screen are left untouched so the user can retry.
func (s *CartService) SubmitOrder(ctx context.Context, sessionID, customerID string, address models.Address) (*models.Order, error) {
	state := s.sessions.get(sessionID)
	state.mu.Lock()
	defer state.mu.Unlock()

	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, errors.ValidationError("Customer ID is required")
	}

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, errors.StorageError("Failed to load cart").WithError(err)
	}

	if cart.IsEmpty() {
		return nil, errors.BadRequestError("Cannot submit an order with an empty cart")
	}

	req := &models.CreateOrderRequest{
		CustomerID: utils.SanitizeText(customerID),
		ShippingAddress: models.Address{
			Street:  utils.SanitizeText(address.Street),
			City:    utils.SanitizeText(address.City),
			ZipCode: utils.SanitizeText(address.ZipCode),
			Country: utils.SanitizeText(address.Country),
		},
	}

	for _, line := range sortedLines(cart) {
		req.Items = append(req.Items, models.OrderItem{
			ProductID:    line.ProductID,
			Quantity:     line.Quantity,
			PricePerUnit: line.UnitPrice,
		})
	}

	order, err := s.commerce.CreateOrder(ctx, req)
	if err != nil {
		metrics.RecordOrderSubmission("failure")

		return nil, err
	}

	metrics.RecordOrderSubmission("success")

	empty := models.NewCart(sessionID)
	if err := s.store.Save(ctx, empty); err != nil {
		// The order is already placed upstream; log and move on.
		slog.Error("Failed to persist cleared cart after order submission",
			slog.String("sessionId", sessionID),
			slog.String("error", err.Error()))
	}

	state.section = models.SectionOrders
	state.checkout = nil
	state.customerID = req.CustomerID

	s.loadOrdersLocked(ctx, sessionID, state, req.CustomerID)

	return order, nil
}

// LoadOrdersFor fetches the customer's order history; an upstream failure is
// recovered with an illustrative fallback order list for that customer.
func (s *CartService) LoadOrdersFor(ctx context.Context, sessionID, customerID string) ([]models.Order, error) {
	state := s.sessions.get(sessionID)
	state.mu.Lock()
	defer state.mu.Unlock()

	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, errors.ValidationError("Customer ID is required")
	}

	s.loadOrdersLocked(ctx, sessionID, state, customerID)

	return append([]models.Order(nil), state.orders...), nil
}

// caller must hold state.mu
func (s *CartService) loadOrdersLocked(ctx context.Context, sessionID string, state *sessionState, customerID string) {
	orders, err := s.commerce.CustomerOrders(ctx, customerID)
	if err != nil {
		slog.Warn("Order fetch failed, serving fallback orders",
			slog.String("sessionId", sessionID),
			slog.String("customerId", customerID),
			slog.String("error", err.Error()))
		metrics.RecordFallback("orders")

		orders = fallback.OrdersFor(customerID)
	}

	state.customerID = customerID
	state.orders = orders
}

// Cart exposes the persisted cart for rendering.
func (s *CartService) Cart(ctx context.Context, sessionID string) (*models.Cart, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, errors.StorageError("Failed to load cart").WithError(err)
	}

	return cart, nil
}

// Totals reports the derived item count and subtotal.
func (s *CartService) Totals(ctx context.Context, sessionID string) (int, float64, error) {
	cart, err := s.Cart(ctx, sessionID)
	if err != nil {
		return 0, 0, err
	}

	return cart.ItemCount(), cart.Subtotal(), nil
}

func (s *CartService) Section(sessionID string) models.Section {
	state := s.sessions.get(sessionID)
	state.mu.Lock()
	defer state.mu.Unlock()

	return state.section
}

// Products returns the most recently fetched product list without triggering
// a fetch.
func (s *CartService) Products(sessionID string) []models.Product {
	state := s.sessions.get(sessionID)
	state.mu.Lock()
	defer state.mu.Unlock()

	return append([]models.Product(nil), state.products...)
}

// Orders returns the most recently fetched order list.
func (s *CartService) Orders(sessionID string) []models.Order {
	state := s.sessions.get(sessionID)
	state.mu.Lock()
	defer state.mu.Unlock()

	return append([]models.Order(nil), state.orders...)
}

// Checkout returns the snapshot captured when checkout began, or nil when the
// session is not checking out.
func (s *CartService) Checkout(sessionID string) *models.CheckoutSnapshot {
	state := s.sessions.get(sessionID)
	state.mu.Lock()
	defer state.mu.Unlock()

	return state.checkout
}

func (s *CartService) CustomerID(sessionID string) string {
	state := s.sessions.get(sessionID)
	state.mu.Lock()
	defer state.mu.Unlock()

	return state.customerID
}

func findProduct(products []models.Product, productID string) *models.Product {
	for i := range products {
		if products[i].ID == productID {
			return &products[i]
		}
	}

	return nil
}

func sortedLines(cart *models.Cart) []models.CartLine {
	lines := make([]models.CartLine, 0, len(cart.Lines))

	for _, line := range cart.Lines {
		lines = append(lines, line)
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].ProductID < lines[j].ProductID
	})

	return lines
}
