package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mo7amedgom3a/storefront/internal/config"
	"github.com/mo7amedgom3a/storefront/internal/models"
	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {

	redisURL := cfg.RedisConnect.GetDSN()
	slog.Info("Connecting to Redis", slog.String("host", cfg.RedisConnect.Host), slog.String("port", cfg.RedisConnect.Port))

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		slog.Error("Failed to parse Redis URL", slog.Any("error", err))

		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.DB = cfg.RedisConnect.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Test the connection
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to Redis", slog.Any("error", err))

		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")

	return client, nil
}

func NewRedisStore(client *redis.Client) CartStore {
	return &redisStore{client: client}
}

func (r *redisStore) Load(ctx context.Context, sessionID string) (*models.Cart, error) {

	data, err := r.client.Get(ctx, CartKey(sessionID)).Bytes()
	if err != nil {

		if err == redis.Nil {
			return models.NewCart(sessionID), nil
		}

		return nil, fmt.Errorf("failed to load cart for session %s: %w", sessionID, err)
	}

	cart := &models.Cart{}

	if err := json.Unmarshal(data, cart); err != nil {
		slog.Warn("Stored cart is unreadable, resetting to empty",
			slog.String("sessionId", sessionID),
			slog.String("error", err.Error()))

		return models.NewCart(sessionID), nil
	}

	if cart.Lines == nil {
		cart.Lines = make(map[string]models.CartLine)
	}

	cart.SessionID = sessionID

	return cart, nil
}

func (r *redisStore) Save(ctx context.Context, cart *models.Cart) error {

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart for session %s: %w", cart.SessionID, err)
	}

	if err := r.client.Set(ctx, CartKey(cart.SessionID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cart for session %s: %w", cart.SessionID, err)
	}

	return nil
}

func (r *redisStore) Delete(ctx context.Context, sessionID string) error {

	if err := r.client.Del(ctx, CartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart for session %s: %w", sessionID, err)
	}

	return nil
}

func (r *redisStore) Close() error {
	return r.client.Close()
}
