package store

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/sarthak743/FlashDine/models"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNoTable           = errors.New("table not set")
	ErrNoCustomer        = errors.New("customer details not set")
)

// TaxRate is the GST fraction applied to the cart subtotal.
const TaxRate = 0.05

// recentlyOrderedMax caps the recently-ordered list.
const recentlyOrderedMax = 5

// Session is the single source of truth for one dine-in session: cart,
// table/customer identity, placed orders, stock overrides, favorites and
// banned receipts. All state is in-memory and lost on restart.
//
// Mutators replace the affected slice or map rather than editing it in
// place, so snapshots handed out by readers stay stable. A single mutex
// keeps mutations strictly ordered under concurrent handlers.
type Session struct {
	mu sync.Mutex

	cart       []models.CartItem
	tableID    string
	customer   *models.CustomerDetails
	restaurant *models.Restaurant

	orders         []models.Order
	currentOrderID string
	bannedReceipts map[string]struct{}

	favorites       map[string]struct{}
	recentlyOrdered []string
	menuStock       map[string]bool

	lastStamp int64 // last millisecond stamp consumed by an order id

	subs      map[int]chan OrderEvent
	nextSubID int

	now func() time.Time
}

// New returns an empty session store.
func New() *Session {
	return &Session{
		bannedReceipts: make(map[string]struct{}),
		favorites:      make(map[string]struct{}),
		menuStock:      make(map[string]bool),
		subs:           make(map[int]chan OrderEvent),
		now:            time.Now,
	}
}

// Totals computes subtotal, tax and total for a set of cart items.
// Tax is 5% of the subtotal, rounded to the nearest rupee.
func Totals(items []models.CartItem) (subtotal, tax, total int) {
	for _, item := range items {
		subtotal += item.Price * item.Quantity
	}
	tax = int(math.Round(float64(subtotal) * TaxRate))
	return subtotal, tax, subtotal + tax
}

// ---------- Cart ----------

// AddToCart adds one unit of item. Repeat adds accumulate quantity on
// the existing entry; there is never more than one entry per item id.
// Stock is not checked here: availability is display-level only.
func (s *Session) AddToCart(item models.MenuItem) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.CartItem, 0, len(s.cart)+1)
	found := false
	for _, ci := range s.cart {
		if ci.ID == item.ID {
			ci.Quantity++
			found = true
		}
		next = append(next, ci)
	}
	if !found {
		next = append(next, models.CartItem{MenuItem: item, Quantity: 1})
	}
	s.cart = next
	return s.cartCopyLocked()
}

// UpdateQuantity sets the quantity for itemID. A quantity of zero or
// less removes the entry, so the cart never holds a non-positive count.
func (s *Session) UpdateQuantity(itemID string, quantity int) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.CartItem, 0, len(s.cart))
	for _, ci := range s.cart {
		if ci.ID == itemID {
			if quantity <= 0 {
				continue
			}
			ci.Quantity = quantity
		}
		next = append(next, ci)
	}
	s.cart = next
	return s.cartCopyLocked()
}

// RemoveFromCart drops the entry for itemID, if present.
func (s *Session) RemoveFromCart(itemID string) []models.CartItem {
	return s.UpdateQuantity(itemID, 0)
}

// ClearCart empties the cart.
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// Cart returns a snapshot of the cart.
func (s *Session) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartCopyLocked()
}

func (s *Session) cartCopyLocked() []models.CartItem {
	out := make([]models.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// ---------- Identity ----------

func (s *Session) SetTableID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tableID = id
}

func (s *Session) TableID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tableID
}

func (s *Session) SetCustomerDetails(details models.CustomerDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = &details
}

func (s *Session) CustomerDetails() (models.CustomerDetails, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.customer == nil {
		return models.CustomerDetails{}, false
	}
	return *s.customer, true
}

func (s *Session) SetRestaurant(r models.Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restaurant = &r
}

func (s *Session) Restaurant() (models.Restaurant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.restaurant == nil {
		return models.Restaurant{}, false
	}
	return *s.restaurant, true
}

// ---------- Favorites & recently ordered ----------

// ToggleFavorite flips membership of itemID in the favorites set and
// returns the new state.
func (s *Session) ToggleFavorite(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]struct{}, len(s.favorites)+1)
	for id := range s.favorites {
		next[id] = struct{}{}
	}
	if _, ok := next[itemID]; ok {
		delete(next, itemID)
	} else {
		next[itemID] = struct{}{}
	}
	s.favorites = next
	_, fav := next[itemID]
	return fav
}

func (s *Session) IsFavorite(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.favorites[itemID]
	return ok
}

// AddToRecentlyOrdered pushes itemID to the front of the recently
// ordered list, dropping any prior occurrence and capping at five ids.
func (s *Session) AddToRecentlyOrdered(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addToRecentlyOrderedLocked(itemID)
}

func (s *Session) addToRecentlyOrderedLocked(itemID string) {
	next := make([]string, 0, recentlyOrderedMax)
	next = append(next, itemID)
	for _, id := range s.recentlyOrdered {
		if id == itemID {
			continue
		}
		next = append(next, id)
	}
	if len(next) > recentlyOrderedMax {
		next = next[:recentlyOrderedMax]
	}
	s.recentlyOrdered = next
}

func (s *Session) RecentlyOrdered() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.recentlyOrdered))
	copy(out, s.recentlyOrdered)
	return out
}

// ---------- Stock overrides ----------

// InitializeStock seeds the stock override map from catalog defaults.
// Idempotent: ids that already have an override keep it, so re-seeding
// on every menu load does not undo kitchen toggles.
func (s *Session) InitializeStock(items []models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]bool, len(items)+len(s.menuStock))
	for id, v := range s.menuStock {
		next[id] = v
	}
	for _, item := range items {
		if _, ok := next[item.ID]; !ok {
			next[item.ID] = item.InStock
		}
	}
	s.menuStock = next
}

// ToggleStock flips the availability override for itemID and returns
// the new state.
func (s *Session) ToggleStock(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]bool, len(s.menuStock)+1)
	for id, v := range s.menuStock {
		next[id] = v
	}
	next[itemID] = !next[itemID]
	s.menuStock = next
	return next[itemID]
}

// InStock resolves live availability for a catalog item: the override
// wins when present, the catalog default otherwise.
func (s *Session) InStock(item models.MenuItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.menuStock[item.ID]; ok {
		return v
	}
	return item.InStock
}

// ---------- Orders ----------

// PlaceOrder snapshots the cart into a new order, clears the cart and
// records the order's items as recently ordered. The order starts in
// the received state, unpaid, with totals frozen at creation.
func (s *Session) PlaceOrder(method models.PaymentMethod) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	if s.tableID == "" {
		return models.Order{}, ErrNoTable
	}
	if s.customer == nil {
		return models.Order{}, ErrNoCustomer
	}

	items := s.cartCopyLocked()
	subtotal, tax, total := Totals(items)
	orderID, receiptID := s.nextIDsLocked()

	now := s.now()
	order := models.Order{
		ID:              orderID,
		ReceiptID:       receiptID,
		TableID:         s.tableID,
		CustomerDetails: *s.customer,
		Items:           items,
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           total,
		Status:          models.OrderStatusReceived,
		PaymentMethod:   method,
		IsPaid:          false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if s.restaurant != nil {
		order.RestaurantID = s.restaurant.ID
	}

	s.addOrderLocked(order)
	s.cart = nil
	for _, item := range items {
		s.addToRecentlyOrderedLocked(item.ID)
	}

	s.publishLocked(EventOrderCreated, order)
	return order, nil
}

// AddOrder prepends order to the order list and makes it the current
// order.
func (s *Session) AddOrder(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addOrderLocked(order)
	s.publishLocked(EventOrderCreated, order)
}

func (s *Session) addOrderLocked(order models.Order) {
	next := make([]models.Order, 0, len(s.orders)+1)
	next = append(next, order)
	next = append(next, s.orders...)
	s.orders = next
	s.currentOrderID = order.ID
}

// nextIDsLocked derives the FD/RCP id pair from the current timestamp.
// The millisecond stamp bumps past any value already consumed, so two
// orders placed in the same instant cannot collide.
func (s *Session) nextIDsLocked() (orderID, receiptID string) {
	stamp := s.now().UnixMilli()
	if stamp <= s.lastStamp {
		stamp = s.lastStamp + 1
	}
	for s.orderIDTakenLocked(formatOrderID(stamp)) {
		stamp++
	}
	s.lastStamp = stamp
	return formatOrderID(stamp), formatReceiptID(stamp)
}

func (s *Session) orderIDTakenLocked(id string) bool {
	for _, o := range s.orders {
		if o.ID == id {
			return true
		}
	}
	return false
}

func formatOrderID(stamp int64) string {
	return fmt.Sprintf("FD%06d", stamp%1_000_000)
}

func formatReceiptID(stamp int64) string {
	return fmt.Sprintf("RCP%08d", stamp%100_000_000)
}

// Orders returns a snapshot of all orders, newest first.
func (s *Session) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// OrderByID looks up an order by id.
func (s *Session) OrderByID(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (s *Session) CurrentOrderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentOrderID
}

func (s *Session) SetCurrentOrderID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentOrderID = id
}

// AdvanceOrderStatus moves an order to target, which must be exactly
// the next step in the received → preparing → ready → completed
// pipeline. Backward moves and skips are rejected.
func (s *Session) AdvanceOrderStatus(id string, target models.OrderStatus) (models.Order, error) {
	if !target.Valid() {
		return models.Order{}, ErrUnknownStatus
	}
	return s.mutateOrder(id, EventStatusChanged, func(o *models.Order) error {
		next, ok := o.Status.Next()
		if !ok || next != target {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, target)
		}
		o.Status = target
		return nil
	})
}

// SetOrderEstimatedTime records the kitchen's minutes-to-ready.
func (s *Session) SetOrderEstimatedTime(id string, minutes int) (models.Order, error) {
	return s.mutateOrder(id, EventTimeSet, func(o *models.Order) error {
		o.EstimatedTime = minutes
		return nil
	})
}

// MarkOrderPaid flags the order as paid. There is no reversal.
func (s *Session) MarkOrderPaid(id string) (models.Order, error) {
	return s.mutateOrder(id, EventOrderPaid, func(o *models.Order) error {
		o.IsPaid = true
		return nil
	})
}

// mutateOrder applies fn to the order with the given id, stamps
// UpdatedAt, swaps in a fresh order slice and publishes evt.
func (s *Session) mutateOrder(id string, evt EventType, fn func(*models.Order) error) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, o := range s.orders {
		if o.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Order{}, ErrOrderNotFound
	}

	next := make([]models.Order, len(s.orders))
	copy(next, s.orders)

	updated := next[idx]
	if err := fn(&updated); err != nil {
		return models.Order{}, err
	}
	updated.UpdatedAt = s.now()
	next[idx] = updated
	s.orders = next

	s.publishLocked(evt, updated)
	return updated, nil
}

// ---------- Banned receipts ----------

// BanReceipt adds receiptID to the banned set and stamps every order
// carrying it. Idempotent: repeat calls leave a single ban record and
// keep the original ban timestamp.
func (s *Session) BanReceipt(receiptID string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bannedReceipts[receiptID] = struct{}{}

	now := s.now()
	next := make([]models.Order, len(s.orders))
	copy(next, s.orders)

	var affected []models.Order
	for i, o := range next {
		if o.ReceiptID != receiptID || o.ReceiptBannedAt != nil {
			continue
		}
		bannedAt := now
		o.ReceiptBannedAt = &bannedAt
		o.UpdatedAt = now
		next[i] = o
		affected = append(affected, o)
	}
	s.orders = next

	for _, o := range affected {
		s.publishLocked(EventReceiptBanned, o)
	}
	return affected
}

// IsReceiptBanned reports whether receiptID has been banned.
func (s *Session) IsReceiptBanned(receiptID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.bannedReceipts[receiptID]
	return ok
}
