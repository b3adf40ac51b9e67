package store

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"yellow-mart/internal/models"
)

// surchargeRate is the flat checkout surcharge applied on top of the cart
// total. There is no configurable tax schedule.
const surchargeRate = 1.05

// SyncState distinguishes orders only recorded locally from orders the
// backend has acknowledged.
type SyncState string

const (
	SyncPending   SyncState = "Pending"
	SyncConfirmed SyncState = "Confirmed"
)

// OrderRecord is an order plus its remote sync state. A record that stays
// Pending was placed locally but never durably persisted; it is kept anyway
// and never rolled back.
type OrderRecord struct {
	models.Order
	Sync SyncState
}

// PlaceOrder converts the current cart into an order. On an empty cart it is
// a no-op and returns ok=false. Otherwise the order is committed locally
// (history head, cart cleared) before the remote write is attempted, and the
// remote create runs fire-and-forget: success flips the record to Confirmed,
// failure is logged and the record stays Pending.
func (s *Session) PlaceOrder(customerName, customerEmail string) (OrderRecord, bool) {
	s.mu.Lock()

	if len(s.cart) == 0 {
		s.mu.Unlock()
		return OrderRecord{}, false
	}

	items := append([]models.CartLine(nil), s.cart...)
	order := models.Order{
		ID:            s.nextOrderIDLocked(),
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Items:         items,
		Total:         s.cartTotalLocked() * surchargeRate,
		Date:          time.Now().Format("Jan 2, 3:04 PM"),
		Status:        models.StatusPlaced,
	}

	record := OrderRecord{Order: order, Sync: SyncPending}
	s.orders = append([]OrderRecord{record}, s.orders...)
	s.cart = nil
	s.mu.Unlock()

	go s.submitOrder(order)

	return record, true
}

func (s *Session) submitOrder(order models.Order) {
	if !s.remote.CreateOrder(context.Background(), order) {
		s.logger.Error("Failed to save order to backend, keeping local record",
			zap.String("order_id", order.ID))
		return
	}

	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == order.ID {
			s.orders[i].Sync = SyncConfirmed
			break
		}
	}
	s.mu.Unlock()
}

// nextOrderIDLocked produces the external ORD-<4 digits>-<letter> shape from
// a monotonic counter, so ids never collide within a session. The digits
// cycle 1000-9999 and the letter advances on each wrap.
func (s *Session) nextOrderIDLocked() string {
	seq := s.orderSeq
	s.orderSeq++
	return fmt.Sprintf("ORD-%04d-%c", 1000+seq%9000, rune('A'+(seq/9000)%26))
}

// Orders returns the local history, newest first.
func (s *Session) Orders() []OrderRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]OrderRecord(nil), s.orders...)
}

// ActiveOrder returns the most recent order for the tracking view.
func (s *Session) ActiveOrder() (OrderRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.orders) == 0 {
		return OrderRecord{}, false
	}
	return s.orders[0], true
}

// RefreshOrders replaces the local history with the remote view for the
// current role: admins see every order, customers their own. Guests and
// logged-out customers have nothing to fetch. A degraded read keeps the
// local history as is.
func (s *Session) RefreshOrders(ctx context.Context) {
	s.mu.Lock()
	role := s.role
	user := s.currentUser
	s.mu.Unlock()

	var (
		orders []models.Order
		ok     bool
	)
	switch {
	case role == models.RoleAdmin:
		orders, ok = s.remote.FetchOrders(ctx)
	case user != nil:
		orders, ok = s.remote.FetchOrdersByCustomer(ctx, user.Email)
	default:
		return
	}

	if !ok {
		s.logger.Warn("Could not fetch orders, keeping local history")
		return
	}

	records := make([]OrderRecord, len(orders))
	for i, o := range orders {
		records[i] = OrderRecord{Order: o, Sync: SyncConfirmed}
	}

	s.mu.Lock()
	s.orders = records
	s.mu.Unlock()
}
