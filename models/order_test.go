package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusNext(t *testing.T) {
	tests := []struct {
		status OrderStatus
		next   OrderStatus
		ok     bool
	}{
		{OrderStatusReceived, OrderStatusPreparing, true},
		{OrderStatusPreparing, OrderStatusReady, true},
		{OrderStatusReady, OrderStatusCompleted, true},
		{OrderStatusCompleted, "", false},
		{"shipped", "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			next, ok := tt.status.Next()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.next, next)
		})
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusReceived, OrderStatusPreparing, OrderStatusReady, OrderStatusCompleted} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, OrderStatus("cancelled").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod("upi"))
	assert.True(t, ValidPaymentMethod("counter"))
	assert.False(t, ValidPaymentMethod("card"))
	assert.False(t, ValidPaymentMethod(""))
}

func TestValidCategory(t *testing.T) {
	for _, c := range []string{"snacks", "meals", "beverages", "desserts"} {
		assert.True(t, ValidCategory(c), c)
	}
	assert.False(t, ValidCategory("sides"))
}
