package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"velour_storefront/internal/models"
)

func TestOrder_StatusStage(t *testing.T) {
	tests := []struct {
		status string
		stage  int
	}{
		{models.OrderPending, 0},
		{models.OrderConfirmed, 1},
		{models.OrderShipping, 2},
		{models.OrderOutForDelivery, 3},
		{models.OrderDelivered, 4},
		{models.OrderCancelled, -1},
		{"unknown", -1},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			o := models.Order{OrderStatus: tt.status}
			assert.Equal(t, tt.stage, o.StatusStage())
		})
	}
}

func TestOrder_Cancelled(t *testing.T) {
	assert.True(t, models.Order{OrderStatus: models.OrderCancelled}.Cancelled())
	assert.False(t, models.Order{OrderStatus: models.OrderShipping}.Cancelled())
}
