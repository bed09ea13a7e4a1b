package storage_test

import (
	"testing"

	"github.com/mo7amedgom3a/storefront/internal/models"
	"github.com/mo7amedgom3a/storefront/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := t.Context()
	store := storage.NewMemoryStore()

	t.Run("Load - Missing Session Yields Empty Cart", func(t *testing.T) {
		cart, err := store.Load(ctx, "nobody")
		require.NoError(t, err)
		assert.True(t, cart.IsEmpty())
		assert.Equal(t, "nobody", cart.SessionID)
	})

	t.Run("Round Trip - Saved Cart Reloads Equal", func(t *testing.T) {
		// Arrange
		cart := models.NewCart("s1")
		cart.Lines["P1"] = models.CartLine{ProductID: "P1", Name: "Wireless Headphones", UnitPrice: 10.00, Quantity: 2}

		// Act
		require.NoError(t, store.Save(ctx, cart))
		reloaded, err := store.Load(ctx, "s1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, cart.Lines, reloaded.Lines)
		assert.InDelta(t, cart.Subtotal(), reloaded.Subtotal(), 1e-9)
	})

	t.Run("Isolation - Loaded Cart Is A Copy", func(t *testing.T) {
		// Arrange
		cart := models.NewCart("s2")
		cart.Lines["P1"] = models.CartLine{ProductID: "P1", Quantity: 1}
		require.NoError(t, store.Save(ctx, cart))

		// Act
		first, err := store.Load(ctx, "s2")
		require.NoError(t, err)
		first.Lines["P1"] = models.CartLine{ProductID: "P1", Quantity: 99}

		second, err := store.Load(ctx, "s2")
		require.NoError(t, err)

		// Assert
		assert.Equal(t, 1, second.Lines["P1"].Quantity)
	})

	t.Run("Delete - Removes The Slot", func(t *testing.T) {
		cart := models.NewCart("s3")
		cart.Lines["P1"] = models.CartLine{ProductID: "P1", Quantity: 1}
		require.NoError(t, store.Save(ctx, cart))

		require.NoError(t, store.Delete(ctx, "s3"))

		reloaded, err := store.Load(ctx, "s3")
		require.NoError(t, err)
		assert.True(t, reloaded.IsEmpty())
	})
}
