package models

import "time"

type OrderStatus string
type PaymentMethod string

const (
	// Order statuses (dine-in pipeline, linear)
	OrderStatusReceived  OrderStatus = "received"  // Order placed, waiting for kitchen
	OrderStatusPreparing OrderStatus = "preparing" // Kitchen started cooking
	OrderStatusReady     OrderStatus = "ready"     // Ready for pickup at the counter
	OrderStatusCompleted OrderStatus = "completed" // Collected by the customer

	// Payment methods
	PaymentMethodUPI     PaymentMethod = "upi"     // Pay online before pickup
	PaymentMethodCounter PaymentMethod = "counter" // Pay cash at the counter
)

// Next returns the status following s in the pipeline. The second return
// is false when s is terminal (completed) or unknown.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case OrderStatusReceived:
		return OrderStatusPreparing, true
	case OrderStatusPreparing:
		return OrderStatusReady, true
	case OrderStatusReady:
		return OrderStatusCompleted, true
	}
	return "", false
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusReceived, OrderStatusPreparing, OrderStatusReady, OrderStatusCompleted:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is a supported payment method.
func ValidPaymentMethod(m string) bool {
	switch PaymentMethod(m) {
	case PaymentMethodUPI, PaymentMethodCounter:
		return true
	}
	return false
}

// Order is created at checkout. Items and totals are frozen at creation;
// later catalog or stock changes never touch a placed order.
type Order struct {
	ID              string          `json:"id"`         // FD + last 6 timestamp digits
	ReceiptID       string          `json:"receipt_id"` // RCP + last 8 timestamp digits
	TableID         string          `json:"table_id"`
	RestaurantID    string          `json:"restaurant_id,omitempty"`
	CustomerDetails CustomerDetails `json:"customer_details"`
	Items           []CartItem      `json:"items"`
	Subtotal        int             `json:"subtotal"`
	Tax             int             `json:"tax"`
	Total           int             `json:"total"`
	Status          OrderStatus     `json:"status"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	EstimatedTime   int             `json:"estimated_time,omitempty"` // minutes, set by kitchen
	IsPaid          bool            `json:"is_paid"`
	ReceiptBannedAt *time.Time      `json:"receipt_banned_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
