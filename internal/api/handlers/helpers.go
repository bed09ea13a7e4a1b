package handlers

import (
	"net/http"

	"github.com/mo7amedgom3a/storefront/internal/api/middleware"
	"github.com/mo7amedgom3a/storefront/internal/errors"
	"github.com/mo7amedgom3a/storefront/internal/utils/response"
)

// sessionID pulls the session identity the middleware resolved; without it no
// cart or navigation state can be addressed.
func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Error(w, errors.UnauthorizedError("Session is required"))

		return "", false
	}

	return claims.SessionID.String(), true
}
