package store

import (
	"sync"

	"github.com/htoohtoo/storefront/app/models"
)

// Ledger records every order placed on the server, across all sessions.
// The admin view reads it; status updates land here and nowhere else,
// because per-session order lists are frozen copies.
type Ledger struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewLedger() *Ledger { return &Ledger{} }

// NewSeededLedger starts with the demo history so the admin view is not
// empty on a fresh boot.
func NewSeededLedger() *Ledger {
	l := NewLedger()
	for _, o := range demoOrders() {
		l.Record(o)
	}
	return l
}

// Record prepends the order, most recent first.
func (l *Ledger) Record(order models.Order) {
	l.mu.Lock()
	l.orders = append([]models.Order{order}, l.orders...)
	l.mu.Unlock()
}

// All returns a copy of the recorded orders, most recent first.
func (l *Ledger) All() []models.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return copyOrders(l.orders)
}

// Find returns the order with the given id.
func (l *Ledger) Find(id string) (models.Order, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, o := range l.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// SetStatus updates an order's status. Items and totals stay frozen.
func (l *Ledger) SetStatus(id string, status models.OrderStatus) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.orders {
		if l.orders[i].ID == id {
			l.orders[i].Status = status
			return true
		}
	}
	return false
}
