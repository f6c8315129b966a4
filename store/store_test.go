package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarthak743/FlashDine/models"
)

func snack(id string, price int) models.MenuItem {
	return models.MenuItem{
		ID:       id,
		Name:     "Item " + id,
		Price:    price,
		Category: models.CategorySnacks,
		InStock:  true,
		PrepTime: 5,
	}
}

// readySession returns a store with table and customer set, so
// PlaceOrder only needs a cart.
func readySession() *Session {
	s := New()
	s.SetTableID("12")
	s.SetCustomerDetails(models.CustomerDetails{Name: "Asha", Phone: "9876543210"})
	return s
}

func TestAddToCartAccumulatesQuantity(t *testing.T) {
	s := New()
	item := snack("samosa", 20)

	for i := 0; i < 4; i++ {
		s.AddToCart(item)
	}

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "samosa", cart[0].ID)
	assert.Equal(t, 4, cart[0].Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		wantLen  int
		wantQty  int
	}{
		{"set positive", 7, 1, 7},
		{"zero removes", 0, 0, 0},
		{"negative removes", -3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.AddToCart(snack("fries", 80))

			cart := s.UpdateQuantity("fries", tt.quantity)
			require.Len(t, cart, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantQty, cart[0].Quantity)
			}
		})
	}
}

func TestUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	s := New()
	s.AddToCart(snack("chai", 15))

	cart := s.UpdateQuantity("no_such_item", 3)
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)
}

func TestRemoveAndClearCart(t *testing.T) {
	s := New()
	s.AddToCart(snack("a", 10))
	s.AddToCart(snack("b", 20))

	cart := s.RemoveFromCart("a")
	require.Len(t, cart, 1)
	assert.Equal(t, "b", cart[0].ID)

	s.ClearCart()
	assert.Empty(t, s.Cart())
}

func TestTotals(t *testing.T) {
	// [{price:180,qty:1},{price:20,qty:2}] -> subtotal=220, tax=11, total=231
	items := []models.CartItem{
		{MenuItem: snack("pbm", 180), Quantity: 1},
		{MenuItem: snack("samosa", 20), Quantity: 2},
	}

	subtotal, tax, total := Totals(items)
	assert.Equal(t, 220, subtotal)
	assert.Equal(t, 11, tax)
	assert.Equal(t, 231, total)
}

func TestTotalsEmptyCart(t *testing.T) {
	subtotal, tax, total := Totals(nil)
	assert.Zero(t, subtotal)
	assert.Zero(t, tax)
	assert.Zero(t, total)
}

func TestPlaceOrder(t *testing.T) {
	s := readySession()
	item := snack("a", 100)
	s.AddToCart(item)
	s.AddToCart(item) // qty 2

	order, err := s.PlaceOrder(models.PaymentMethodCounter)
	require.NoError(t, err)

	// 100×2 + 5% tax
	assert.Equal(t, 200, order.Subtotal)
	assert.Equal(t, 10, order.Tax)
	assert.Equal(t, 210, order.Total)
	assert.Equal(t, models.OrderStatusReceived, order.Status)
	assert.False(t, order.IsPaid)
	assert.Equal(t, "12", order.TableID)
	assert.Regexp(t, `^FD\d{6}$`, order.ID)
	assert.Regexp(t, `^RCP\d{8}$`, order.ReceiptID)

	// Cart cleared, order recorded and current
	assert.Empty(t, s.Cart())
	assert.Equal(t, order.ID, s.CurrentOrderID())
	assert.Equal(t, []string{"a"}, s.RecentlyOrdered())

	got, err := s.OrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestPlaceOrderPreconditions(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		s := readySession()
		_, err := s.PlaceOrder(models.PaymentMethodUPI)
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("no table", func(t *testing.T) {
		s := New()
		s.SetCustomerDetails(models.CustomerDetails{Name: "Asha", Phone: "9876543210"})
		s.AddToCart(snack("a", 10))
		_, err := s.PlaceOrder(models.PaymentMethodUPI)
		assert.ErrorIs(t, err, ErrNoTable)
	})

	t.Run("no customer", func(t *testing.T) {
		s := New()
		s.SetTableID("7")
		s.AddToCart(snack("a", 10))
		_, err := s.PlaceOrder(models.PaymentMethodUPI)
		assert.ErrorIs(t, err, ErrNoCustomer)
	})
}

func TestOrderIDsNeverCollide(t *testing.T) {
	s := readySession()

	// Pin the clock so every order is placed in the same millisecond.
	frozen := time.Now()
	s.now = func() time.Time { return frozen }

	seen := make(map[string]struct{})
	for i := 0; i < 25; i++ {
		s.AddToCart(snack("a", 10))
		order, err := s.PlaceOrder(models.PaymentMethodCounter)
		require.NoError(t, err)

		_, dup := seen[order.ID]
		require.False(t, dup, "duplicate order id %s", order.ID)
		seen[order.ID] = struct{}{}
	}
}

func TestOrderFrozenAtCreation(t *testing.T) {
	s := readySession()
	s.AddToCart(snack("a", 100))
	order, err := s.PlaceOrder(models.PaymentMethodCounter)
	require.NoError(t, err)

	// Later stock changes must not touch the placed order.
	s.ToggleStock("a")
	got, err := s.OrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 210, got.Total)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].InStock)
}

func TestAdvanceOrderStatus(t *testing.T) {
	s := readySession()
	s.AddToCart(snack("a", 50))
	order, err := s.PlaceOrder(models.PaymentMethodCounter)
	require.NoError(t, err)

	// Walk the full pipeline forward.
	for _, want := range []models.OrderStatus{
		models.OrderStatusPreparing,
		models.OrderStatusReady,
		models.OrderStatusCompleted,
	} {
		got, err := s.AdvanceOrderStatus(order.ID, want)
		require.NoError(t, err)
		assert.Equal(t, want, got.Status)
	}

	// Terminal: nothing follows completed.
	_, err = s.AdvanceOrderStatus(order.ID, models.OrderStatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAdvanceOrderStatusRejectsSkipsAndReversals(t *testing.T) {
	tests := []struct {
		name   string
		target models.OrderStatus
	}{
		{"skip to ready", models.OrderStatusReady},
		{"skip to completed", models.OrderStatusCompleted},
		{"stay at received", models.OrderStatusReceived},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := readySession()
			s.AddToCart(snack("a", 50))
			order, err := s.PlaceOrder(models.PaymentMethodCounter)
			require.NoError(t, err)

			_, err = s.AdvanceOrderStatus(order.ID, tt.target)
			assert.ErrorIs(t, err, ErrInvalidTransition)

			// Status unchanged on rejection.
			got, err := s.OrderByID(order.ID)
			require.NoError(t, err)
			assert.Equal(t, models.OrderStatusReceived, got.Status)
		})
	}
}

func TestAdvanceOrderStatusUnknown(t *testing.T) {
	s := readySession()
	s.AddToCart(snack("a", 50))
	order, err := s.PlaceOrder(models.PaymentMethodCounter)
	require.NoError(t, err)

	_, err = s.AdvanceOrderStatus(order.ID, "shipped")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestSetOrderEstimatedTimeStampsUpdatedAt(t *testing.T) {
	s := readySession()
	s.AddToCart(snack("a", 50))
	order, err := s.PlaceOrder(models.PaymentMethodCounter)
	require.NoError(t, err)

	s.now = func() time.Time { return order.UpdatedAt.Add(time.Minute) }

	got, err := s.SetOrderEstimatedTime(order.ID, 15)
	require.NoError(t, err)
	assert.Equal(t, 15, got.EstimatedTime)
	assert.True(t, got.UpdatedAt.After(order.UpdatedAt))
}

func TestMarkOrderPaid(t *testing.T) {
	s := readySession()
	s.AddToCart(snack("a", 50))
	order, err := s.PlaceOrder(models.PaymentMethodUPI)
	require.NoError(t, err)

	got, err := s.MarkOrderPaid(order.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPaid)

	_, err = s.MarkOrderPaid("FD000000")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestBanReceiptIsIdempotent(t *testing.T) {
	s := readySession()
	s.AddToCart(snack("a", 50))
	order, err := s.PlaceOrder(models.PaymentMethodCounter)
	require.NoError(t, err)

	affected := s.BanReceipt(order.ReceiptID)
	require.Len(t, affected, 1)
	require.NotNil(t, affected[0].ReceiptBannedAt)
	firstBan := *affected[0].ReceiptBannedAt

	assert.True(t, s.IsReceiptBanned(order.ReceiptID))

	// Second ban: no new stamps, still banned, timestamp unchanged.
	affected = s.BanReceipt(order.ReceiptID)
	assert.Empty(t, affected)
	assert.True(t, s.IsReceiptBanned(order.ReceiptID))

	got, err := s.OrderByID(order.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ReceiptBannedAt)
	assert.Equal(t, firstBan, *got.ReceiptBannedAt)
}

func TestIsReceiptBannedUnknown(t *testing.T) {
	assert.False(t, New().IsReceiptBanned("RCP00000000"))
}

func TestRecentlyOrderedFrontInsertDedupCap(t *testing.T) {
	s := New()
	for _, id := range []string{"a", "b", "a", "c", "d", "e"} {
		s.AddToRecentlyOrdered(id)
	}
	assert.Equal(t, []string{"e", "d", "c", "a", "b"}, s.RecentlyOrdered())
}

func TestRecentlyOrderedCapsAtFive(t *testing.T) {
	s := New()
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		s.AddToRecentlyOrdered(id)
	}
	assert.Equal(t, []string{"g", "f", "e", "d", "c"}, s.RecentlyOrdered())
}

func TestToggleFavorite(t *testing.T) {
	s := New()
	assert.True(t, s.ToggleFavorite("samosa"))
	assert.True(t, s.IsFavorite("samosa"))
	assert.False(t, s.ToggleFavorite("samosa"))
	assert.False(t, s.IsFavorite("samosa"))
}

func TestStockOverrides(t *testing.T) {
	item := snack("samosa", 20)
	s := New()

	// Catalog default wins before any override exists.
	assert.True(t, s.InStock(item))

	s.InitializeStock([]models.MenuItem{item})
	assert.True(t, s.InStock(item))

	assert.False(t, s.ToggleStock("samosa"))
	assert.False(t, s.InStock(item))

	// Re-seeding must not undo the toggle.
	s.InitializeStock([]models.MenuItem{item})
	assert.False(t, s.InStock(item))
}

func TestOrdersNewestFirst(t *testing.T) {
	s := readySession()

	s.AddToCart(snack("a", 10))
	first, err := s.PlaceOrder(models.PaymentMethodCounter)
	require.NoError(t, err)

	s.AddToCart(snack("b", 20))
	second, err := s.PlaceOrder(models.PaymentMethodCounter)
	require.NoError(t, err)

	orders := s.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}
