package models

import "time"

// OrderStatus is one step in the fixed fulfilment progression.
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "Placed"
	StatusProcessing     OrderStatus = "Processing"
	StatusShipped        OrderStatus = "Shipped"
	StatusOutForDelivery OrderStatus = "Out_for_Delivery"
	StatusDelivered      OrderStatus = "Delivered"
)

// StatusSequence is the full progression in order. Nothing in this repo
// advances an order along it; status changes are applied out-of-band.
var StatusSequence = []OrderStatus{
	StatusPlaced,
	StatusProcessing,
	StatusShipped,
	StatusOutForDelivery,
	StatusDelivered,
}

// StatusIndex returns the position of s in the progression, or -1 if s is
// not a recognized status.
func StatusIndex(s OrderStatus) int {
	for i, step := range StatusSequence {
		if step == s {
			return i
		}
	}
	return -1
}

// Progress returns the fulfilment fraction in [0,1] for a tracking view.
// An unrecognized status reports 0 (no active progress).
func (s OrderStatus) Progress() float64 {
	idx := StatusIndex(s)
	if idx < 0 {
		return 0
	}
	return float64(idx) / float64(len(StatusSequence)-1)
}

// Order is an immutable snapshot of a cart at checkout. The id and total are
// materialized by the client that placed it; the backend stores them as sent.
type Order struct {
	ID            string      `json:"id" bson:"id" binding:"required"`
	CustomerName  string      `json:"customerName" bson:"customer_name" binding:"required"`
	CustomerEmail string      `json:"customerEmail" bson:"customer_email" binding:"required"`
	Items         []CartLine  `json:"items" bson:"items" binding:"required"`
	Total         float64     `json:"total" bson:"total"`
	Date          string      `json:"date" bson:"date"`
	Status        OrderStatus `json:"status" bson:"status"`

	// CreatedAt is set server-side on insert and used only for sorting;
	// the display date stays the client-formatted string above.
	CreatedAt time.Time `json:"-" bson:"created_at"`
}
