package service

import (
	"sync"

	"github.com/mo7amedgom3a/storefront/internal/models"
)

// sessionState is the per-session slice of controller state that never touches
// the cart store: current screen, pending customer id, checkout snapshot, and
// the session's cached catalog and order list.
type sessionState struct {
	mu sync.Mutex

	section        models.Section
	customerID     string
	checkout       *models.CheckoutSnapshot
	products       []models.Product
	productsLoaded bool
	orders         []models.Order
}

type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*sessionState
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{sessions: make(map[string]*sessionState)}
}

// get creates the session on first use; every session starts on the products
// screen.
func (r *sessionRegistry) get(sessionID string) *sessionState {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.sessions[sessionID]
	if !ok {
		state = &sessionState{section: models.SectionProducts}
		r.sessions[sessionID] = state
	}

	return state
}
