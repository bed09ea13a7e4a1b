package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mo7amedgom3a/storefront/internal/api/handlers"
	"github.com/mo7amedgom3a/storefront/internal/api/middleware"
	"github.com/mo7amedgom3a/storefront/internal/cache"
	"github.com/mo7amedgom3a/storefront/internal/config"
	"github.com/mo7amedgom3a/storefront/internal/health"
	"github.com/mo7amedgom3a/storefront/internal/metrics"
	service "github.com/mo7amedgom3a/storefront/internal/services"
	"github.com/mo7amedgom3a/storefront/internal/storage"
	"github.com/mo7amedgom3a/storefront/pkg/commerce"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := setupTracing(context.Background())
	if err != nil {
		slog.Warn("⚠️ Tracing disabled", slog.String("error", err.Error()))
	} else {
		defer shutdownTracing()
	}

	// Cart store selection
	store, redisAvailable := newCartStore(cfg)

	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("⚠️ Error closing cart store", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Cart store closed")
		}
	}()

	// Upstream commerce client
	commerceClient := commerce.NewRESTClient(&cfg.Commerce)

	if redisAvailable {
		redisClient, err := storage.NewRedisClient(cfg)
		if err == nil {
			commerceClient = commerce.NewCachedClient(commerceClient, cache.NewRedisCache(redisClient, &cfg.Cache))
		}
	}

	cartService := service.NewCartService(store, commerceClient)
	sessionHandler := handlers.NewSessionHandler(&cfg.Session)
	catalogHandler := handlers.NewCatalogHandler(cartService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(cartService)
	orderHandler := handlers.NewOrderHandler(cartService)
	sessionMiddleware := middleware.NewSessionMiddleware([]byte(cfg.Session.JWTKey))

	healthHandler, err := health.NewHealthHandler(cfg, commerceClient)
	if err != nil {
		slog.Error("❌ Error building health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storefront initialized", slog.String("env", cfg.Env), slog.String("backend", cfg.Store.Backend))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/sessions", sessionHandler.Create())
	routerMux.HandleFunc("GET /api/v1/catalog", sessionMiddleware.Authenticate(catalogHandler.List()))
	routerMux.HandleFunc("GET /api/v1/cart", sessionMiddleware.Authenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/cart/items", sessionMiddleware.Authenticate(cartHandler.AddItem()))
	routerMux.HandleFunc("PATCH /api/v1/cart/items", sessionMiddleware.Authenticate(cartHandler.ChangeQuantity()))
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{productId}", sessionMiddleware.Authenticate(cartHandler.RemoveItem()))
	routerMux.HandleFunc("POST /api/v1/navigate", sessionMiddleware.Authenticate(cartHandler.Navigate()))
	routerMux.HandleFunc("GET /api/v1/state", sessionMiddleware.Authenticate(cartHandler.State()))
	routerMux.HandleFunc("POST /api/v1/checkout", sessionMiddleware.Authenticate(checkoutHandler.Start()))
	routerMux.HandleFunc("POST /api/v1/checkout/submit", sessionMiddleware.Authenticate(checkoutHandler.Submit()))
	routerMux.HandleFunc("GET /api/v1/orders", sessionMiddleware.Authenticate(orderHandler.List()))
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}

// newCartStore picks the persistence backend from config, falling back to the
// in-memory store when the configured backend cannot be reached.
func newCartStore(cfg *config.Config) (storage.CartStore, bool) {

	switch cfg.Store.Backend {
	case "redis":
		client, err := storage.NewRedisClient(cfg)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance, using in-memory carts", slog.String("error", err.Error()))

			return storage.NewMemoryStore(), false
		}

		return storage.NewRedisStore(client), true

	case "postgres":
		store, err := storage.NewPostgresStore(cfg)
		if err != nil {
			slog.Error("❌ Error accessing the database, using in-memory carts", slog.String("error", err.Error()))

			return storage.NewMemoryStore(), false
		}

		return store, false
	}

	return storage.NewMemoryStore(), false
}

func setupTracing(ctx context.Context) (func(), error) {

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := tp.Shutdown(shutdownCtx); err != nil {
			slog.Error("⚠️ Tracer provider shutdown encountered an issue", slog.String("error", err.Error()))
		}
	}, nil
}
