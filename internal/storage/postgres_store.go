package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/XSAM/otelsql"
	_ "github.com/lib/pq"
	"github.com/mo7amedgom3a/storefront/internal/config"
	"github.com/mo7amedgom3a/storefront/internal/models"
	"github.com/mo7amedgom3a/storefront/internal/utils"
	"go.opentelemetry.io/otel/attribute"
)

type postgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(cfg *config.Config) (CartStore, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")))
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS session_carts(
			session_id VARCHAR(255) PRIMARY KEY,
			lines JSONB NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`)
	if err != nil {
		return nil, fmt.Errorf("failed to create session_carts table: %w", err)
	}

	slog.Info("✅ Successfully connected to Postgres")

	return &postgresStore{DB: db}, nil
}

func (p *postgresStore) Load(ctx context.Context, sessionID string) (*models.Cart, error) {
	dbCtx, cancel := utils.WithStoreTimeout(ctx)
	defer cancel()

	query := `
		SELECT lines, created_at, updated_at
		FROM session_carts
		WHERE session_id = $1
	`

	cart := &models.Cart{SessionID: sessionID}

	var linesJSON []byte

	err := p.DB.QueryRowContext(dbCtx, query, sessionID).Scan(&linesJSON, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.NewCart(sessionID), nil
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	if err := json.Unmarshal(linesJSON, &cart.Lines); err != nil {
		slog.Warn("Stored cart is unreadable, resetting to empty",
			slog.String("sessionId", sessionID),
			slog.String("error", err.Error()))

		return models.NewCart(sessionID), nil
	}

	if cart.Lines == nil {
		cart.Lines = make(map[string]models.CartLine)
	}

	return cart, nil
}

func (p *postgresStore) Save(ctx context.Context, cart *models.Cart) error {
	dbCtx, cancel := utils.WithStoreTimeout(ctx)
	defer cancel()

	linesJSON, err := json.Marshal(cart.Lines)
	if err != nil {
		return fmt.Errorf("failed to marshal cart lines: %w", err)
	}

	query := `
		INSERT INTO session_carts (session_id, lines, created_at, updated_at)
		VALUES($1, $2, NOW(), NOW())
		ON CONFLICT (session_id)
		DO UPDATE SET lines = EXCLUDED.lines, updated_at = NOW()
	`

	if _, err := p.DB.ExecContext(dbCtx, query, cart.SessionID, linesJSON); err != nil {
		return fmt.Errorf("failed to save the cart: %w", err)
	}

	return nil
}

func (p *postgresStore) Delete(ctx context.Context, sessionID string) error {
	dbCtx, cancel := utils.WithStoreTimeout(ctx)
	defer cancel()

	query := `
		DELETE FROM session_carts
		WHERE session_id = $1
	`

	if _, err := p.DB.ExecContext(dbCtx, query, sessionID); err != nil {
		return fmt.Errorf("failed to delete the cart: %w", err)
	}

	return nil
}

func (p *postgresStore) Close() error {
	return p.DB.Close()
}

// NewPostgresStoreWithDB wires an existing database handle; tests use this with
// sqlmock.
func NewPostgresStoreWithDB(db *sql.DB) CartStore {
	return &postgresStore{DB: db}
}
