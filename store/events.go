package store

import (
	"context"

	"github.com/sarthak743/FlashDine/models"
)

type EventType string

const (
	EventOrderCreated  EventType = "order_created"
	EventStatusChanged EventType = "order_status_changed"
	EventTimeSet       EventType = "order_time_set"
	EventOrderPaid     EventType = "order_paid"
	EventReceiptBanned EventType = "receipt_banned"
)

// OrderEvent is published on every order mutation so the kitchen
// display and tracking views see changes without polling.
type OrderEvent struct {
	Type  EventType    `json:"type"`
	Order models.Order `json:"order"`
}

// Subscribe registers a listener for order events. The channel is
// closed when ctx ends. Events are dropped, not queued, for listeners
// that fall behind; consumers refresh from Orders() on reconnect.
func (s *Session) Subscribe(ctx context.Context) <-chan OrderEvent {
	s.mu.Lock()
	ch := make(chan OrderEvent, 16)
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = ch
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
		close(ch)
	}()

	return ch
}

func (s *Session) publishLocked(evt EventType, order models.Order) {
	e := OrderEvent{Type: evt, Order: order}
	for _, ch := range s.subs {
		select {
		case ch <- e:
		default:
		}
	}
}
