package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIndex(t *testing.T) {
	tests := []struct {
		status OrderStatus
		want   int
	}{
		{StatusPlaced, 0},
		{StatusProcessing, 1},
		{StatusShipped, 2},
		{StatusOutForDelivery, 3},
		{StatusDelivered, 4},
		{OrderStatus("Cancelled"), -1},
		{OrderStatus(""), -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusIndex(tt.status), "status %q", tt.status)
	}
}

func TestStatusProgress(t *testing.T) {
	assert.InDelta(t, 0.0, StatusPlaced.Progress(), 1e-9)
	assert.InDelta(t, 0.25, StatusProcessing.Progress(), 1e-9)
	assert.InDelta(t, 0.5, StatusShipped.Progress(), 1e-9)
	assert.InDelta(t, 0.75, StatusOutForDelivery.Progress(), 1e-9)
	assert.InDelta(t, 1.0, StatusDelivered.Progress(), 1e-9)

	// Unrecognized statuses report no active progress.
	assert.Zero(t, OrderStatus("Refunded").Progress())
}

func TestCartLineSubtotal(t *testing.T) {
	line := CartLine{Product: Product{ID: "p1", Price: 4500}, Quantity: 2}
	assert.InDelta(t, 9000, line.Subtotal(), 1e-9)
}
