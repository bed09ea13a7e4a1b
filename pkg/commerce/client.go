package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mo7amedgom3a/storefront/internal/config"
	"github.com/mo7amedgom3a/storefront/internal/errors"
	"github.com/mo7amedgom3a/storefront/internal/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client defines the methods the upstream commerce API must provide. The
// storefront only consumes this boundary; it never owns the data behind it.
type Client interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)
	CustomerOrders(ctx context.Context, customerID string) ([]models.Order, error)
}

type restClient struct {
	cfg  *config.Commerce
	http *http.Client
}

func NewRESTClient(cfg *config.Commerce) Client {
	return &restClient{
		cfg: cfg,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *restClient) ListProducts(ctx context.Context) ([]models.Product, error) {

	var products []models.Product

	if err := c.get(ctx, c.cfg.ProductsPath, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *restClient) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {

	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.InternalError("Failed to encode order").WithError(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+c.cfg.OrdersPath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.InternalError("Failed to build order request").WithError(err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, errors.NetworkError("Failed to create order").WithError(err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.NetworkError("Failed to create order").
			WithDetail(fmt.Sprintf("upstream returned status %d", resp.StatusCode))
	}

	var order models.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, errors.NetworkError("Invalid order response").WithError(err)
	}

	return &order, nil
}

func (c *restClient) CustomerOrders(ctx context.Context, customerID string) ([]models.Order, error) {

	path := strings.ReplaceAll(c.cfg.CustomerOrdersPath, "{customerId}", url.PathEscape(customerID))

	var orders []models.Order

	if err := c.get(ctx, path, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (c *restClient) get(ctx context.Context, path string, dest any) error {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return errors.InternalError("Failed to build request").WithError(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.NetworkError(fmt.Sprintf("Failed to fetch %s", path)).WithError(err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.NetworkError(fmt.Sprintf("Failed to fetch %s", path)).
			WithDetail(fmt.Sprintf("upstream returned status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return errors.NetworkError("Invalid upstream response").WithError(err)
	}

	return nil
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
