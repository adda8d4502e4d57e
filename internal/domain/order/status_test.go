package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/wholesale-api/internal/domain/entity"
	"github.com/jhoicas/wholesale-api/internal/domain/order"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{entity.OrderStatusPending, entity.OrderStatusPaid, true},
		{entity.OrderStatusPaid, entity.OrderStatusShipped, true},
		{entity.OrderStatusShipped, entity.OrderStatusDelivered, true},
		{entity.OrderStatusPaid, entity.OrderStatusDelivered, true},
		{entity.OrderStatusPaid, entity.OrderStatusPending, false},
		{entity.OrderStatusDelivered, entity.OrderStatusShipped, false},
		{entity.OrderStatusPaid, entity.OrderStatusPaid, false},
		{entity.OrderStatusPending, "cancelled", false},
		{"", entity.OrderStatusPaid, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, order.CanTransition(tc.from, tc.to), "%s → %s", tc.from, tc.to)
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, order.ValidStatus(entity.OrderStatusShipped))
	assert.False(t, order.ValidStatus("refunded"))
}
