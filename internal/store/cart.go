package store

import "yellow-mart/internal/models"

// AddToCart merges quantity into an existing line for the product or appends
// a new line, preserving insertion order. Quantities below 1 are a no-op.
func (s *Session) AddToCart(product models.Product, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == product.ID {
			s.cart[i].Quantity += quantity
			return
		}
	}
	s.cart = append(s.cart, models.CartLine{Product: product, Quantity: quantity})
}

// RemoveFromCart deletes the line for productID. Absent lines are a no-op.
func (s *Session) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

// UpdateQuantity replaces a line's quantity. Quantities below 1 leave the
// cart unchanged; removal is only ever explicit via RemoveFromCart.
func (s *Session) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].Quantity = quantity
			return
		}
	}
}

// ClearCart empties the cart unconditionally.
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// Cart returns a copy of the current lines in insertion order.
func (s *Session) Cart() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartLine(nil), s.cart...)
}

// CartTotal is recomputed on demand; it is never cached.
func (s *Session) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartTotalLocked()
}

func (s *Session) cartTotalLocked() float64 {
	var total float64
	for _, line := range s.cart {
		total += line.Subtotal()
	}
	return total
}
