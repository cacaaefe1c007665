package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"velour_storefront/internal/checkout"
)

func TestState_CanTransition(t *testing.T) {
	tests := []struct {
		from    checkout.State
		to      checkout.State
		allowed bool
	}{
		{checkout.StateIdle, checkout.StateReviewing, true},
		{checkout.StateIdle, checkout.StateAwaitingPayment, false},
		{checkout.StateReviewing, checkout.StateReviewing, true},
		{checkout.StateReviewing, checkout.StateCreatingIntent, true},
		{checkout.StateReviewing, checkout.StateIdle, true},
		{checkout.StateReviewing, checkout.StateVerifying, false},
		{checkout.StateCreatingIntent, checkout.StateAwaitingPayment, true},
		{checkout.StateCreatingIntent, checkout.StateReviewing, true},
		{checkout.StateCreatingIntent, checkout.StateConfirmed, false},
		{checkout.StateAwaitingPayment, checkout.StateVerifying, true},
		{checkout.StateAwaitingPayment, checkout.StateReviewing, true},
		{checkout.StateAwaitingPayment, checkout.StateCreatingIntent, false},
		{checkout.StateVerifying, checkout.StateConfirmed, true},
		{checkout.StateVerifying, checkout.StateReviewing, true},
		{checkout.StateVerifying, checkout.StateAwaitingPayment, false},
		{checkout.StateConfirmed, checkout.StateReviewing, false},
		{checkout.StateConfirmed, checkout.StateIdle, false},
	}

	for _, tt := range tests {
		got := tt.from.CanTransition(tt.to)
		assert.Equalf(t, tt.allowed, got, "%s → %s", tt.from, tt.to)
	}
}

func TestState_Terminal(t *testing.T) {
	assert.True(t, checkout.StateConfirmed.Terminal())
	assert.False(t, checkout.StateReviewing.Terminal())
	assert.False(t, checkout.StateAwaitingPayment.Terminal())
}
