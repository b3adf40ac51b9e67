package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCartMergesByProductID(t *testing.T) {
	s := newTestSession(newFakeRemote())
	p := testProduct("p1", 100)

	s.AddToCart(p, 1)
	s.AddToCart(p, 2)
	s.AddToCart(p, 3)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "p1", cart[0].ID)
	assert.Equal(t, 6, cart[0].Quantity)
}

func TestAddToCartPreservesInsertionOrder(t *testing.T) {
	s := newTestSession(newFakeRemote())

	s.AddToCart(testProduct("a", 10), 1)
	s.AddToCart(testProduct("b", 20), 1)
	s.AddToCart(testProduct("c", 30), 1)
	s.AddToCart(testProduct("b", 20), 1)

	cart := s.Cart()
	require.Len(t, cart, 3)
	assert.Equal(t, "a", cart[0].ID)
	assert.Equal(t, "b", cart[1].ID)
	assert.Equal(t, "c", cart[2].ID)
	assert.Equal(t, 2, cart[1].Quantity)
}

func TestAddToCartClampsNonPositiveQuantity(t *testing.T) {
	s := newTestSession(newFakeRemote())

	s.AddToCart(testProduct("p1", 100), 0)
	s.AddToCart(testProduct("p1", 100), -5)

	assert.Empty(t, s.Cart())
}

func TestRemoveFromCart(t *testing.T) {
	s := newTestSession(newFakeRemote())
	s.AddToCart(testProduct("p1", 100), 1)
	s.AddToCart(testProduct("p2", 200), 1)

	s.RemoveFromCart("p1")

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "p2", cart[0].ID)
}

func TestRemoveFromCartMissingIDIsNoop(t *testing.T) {
	s := newTestSession(newFakeRemote())
	s.AddToCart(testProduct("p1", 100), 2)

	s.RemoveFromCart("nope")

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestUpdateQuantityReplacesValue(t *testing.T) {
	s := newTestSession(newFakeRemote())
	s.AddToCart(testProduct("p1", 100), 2)

	s.UpdateQuantity("p1", 7)

	assert.Equal(t, 7, s.Cart()[0].Quantity)
}

func TestUpdateQuantityBelowOneIsNoop(t *testing.T) {
	// Decrementing to zero does not remove the line; removal is only ever
	// explicit via RemoveFromCart.
	s := newTestSession(newFakeRemote())
	s.AddToCart(testProduct("p1", 100), 3)

	s.UpdateQuantity("p1", 0)
	s.UpdateQuantity("p1", -1)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)
}

func TestClearCart(t *testing.T) {
	s := newTestSession(newFakeRemote())
	s.AddToCart(testProduct("p1", 100), 1)
	s.AddToCart(testProduct("p2", 200), 4)

	s.ClearCart()

	assert.Empty(t, s.Cart())
	assert.Zero(t, s.CartTotal())
}

func TestCartTotalTracksMutations(t *testing.T) {
	s := newTestSession(newFakeRemote())

	s.AddToCart(testProduct("p1", 12500), 1)
	assert.InDelta(t, 12500, s.CartTotal(), 1e-9)

	s.AddToCart(testProduct("p2", 4500), 2)
	assert.InDelta(t, 21500, s.CartTotal(), 1e-9)

	s.UpdateQuantity("p2", 1)
	assert.InDelta(t, 17000, s.CartTotal(), 1e-9)

	s.RemoveFromCart("p1")
	assert.InDelta(t, 4500, s.CartTotal(), 1e-9)
}
