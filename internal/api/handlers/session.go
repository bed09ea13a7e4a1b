package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mo7amedgom3a/storefront/internal/config"
	"github.com/mo7amedgom3a/storefront/internal/errors"
	"github.com/mo7amedgom3a/storefront/internal/models"
	"github.com/mo7amedgom3a/storefront/internal/utils/response"
)

type SessionHandler struct {
	jwtKey []byte
	ttl    time.Duration
}

func NewSessionHandler(cfg *config.Session) *SessionHandler {
	return &SessionHandler{jwtKey: []byte(cfg.JWTKey), ttl: cfg.TTL}
}

// Create issues a fresh session token. A session is the server-side stand-in
// for one browser: it owns one cart and one navigation state.
func (h *SessionHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionUUID := uuid.New()
		expiresAt := time.Now().Add(h.ttl)

		claims := &models.Claims{
			SessionID: sessionUUID,
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(expiresAt),
			},
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

		signed, err := token.SignedString(h.jwtKey)
		if err != nil {
			slog.Error("Failed to sign session token", slog.String("error", err.Error()))
			response.Error(w, errors.InternalError("Failed to create session"))

			return
		}

		slog.Info("Session created", slog.String("sessionId", sessionUUID.String()))
		response.Success(w, http.StatusCreated, models.SessionResponse{
			Token:     signed,
			SessionID: sessionUUID,
			ExpiresAt: expiresAt,
		})

	}
}
