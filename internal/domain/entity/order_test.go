package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	// camino feliz completo
	assert.True(t, CanTransition(OrderStatusPending, OrderStatusPreparing))
	assert.True(t, CanTransition(OrderStatusPreparing, OrderStatusReady))
	assert.True(t, CanTransition(OrderStatusReady, OrderStatusDelivered))

	// cancelación solo antes de estar listo
	assert.True(t, CanTransition(OrderStatusPending, OrderStatusCancelled))
	assert.True(t, CanTransition(OrderStatusPreparing, OrderStatusCancelled))
	assert.False(t, CanTransition(OrderStatusReady, OrderStatusCancelled))

	// sin saltos ni retrocesos
	assert.False(t, CanTransition(OrderStatusPending, OrderStatusReady))
	assert.False(t, CanTransition(OrderStatusDelivered, OrderStatusPending))
	assert.False(t, CanTransition(OrderStatusCancelled, OrderStatusPreparing))
}
