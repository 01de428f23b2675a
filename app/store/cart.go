// Package store holds the two per-session state containers: the cart and
// the auth/order store. Each mutation is expressed as a tagged action folded
// through a pure reducer, so the transition logic is testable on plain
// values and the lock wrapper stays trivial.
package store

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/htoohtoo/storefront/app/models"
	"github.com/htoohtoo/storefront/pkg/metrics"
)

type cartAction interface{ isCartAction() }

type cartAdd struct{ product models.Product }
type cartRemove struct{ productID string }
type cartSetQuantity struct {
	productID string
	quantity  int
}
type cartSetOpen struct{ open bool }
type cartToggle struct{}
type cartClear struct{}

func (cartAdd) isCartAction()         {}
func (cartRemove) isCartAction()      {}
func (cartSetQuantity) isCartAction() {}
func (cartSetOpen) isCartAction()     {}
func (cartToggle) isCartAction()      {}
func (cartClear) isCartAction()       {}

type cartState struct {
	items  []models.CartLine
	isOpen bool
}

// cartReduce returns the state after applying one action. Input state is
// never mutated; the items slice is copied before any change.
func cartReduce(s cartState, a cartAction) cartState {
	switch a := a.(type) {
	case cartAdd:
		items := copyLines(s.items)
		for i := range items {
			if items[i].ProductID == a.product.ID {
				items[i].Quantity++
				return cartState{items: items, isOpen: s.isOpen}
			}
		}
		items = append(items, models.NewCartLine(a.product, 1))
		return cartState{items: items, isOpen: s.isOpen}

	case cartRemove:
		items := make([]models.CartLine, 0, len(s.items))
		for _, l := range s.items {
			if l.ProductID != a.productID {
				items = append(items, l)
			}
		}
		return cartState{items: items, isOpen: s.isOpen}

	case cartSetQuantity:
		if a.quantity <= 0 {
			return cartReduce(s, cartRemove{productID: a.productID})
		}
		items := copyLines(s.items)
		for i := range items {
			if items[i].ProductID == a.productID {
				items[i].Quantity = a.quantity
			}
		}
		return cartState{items: items, isOpen: s.isOpen}

	case cartSetOpen:
		return cartState{items: s.items, isOpen: a.open}

	case cartToggle:
		return cartState{items: s.items, isOpen: !s.isOpen}

	case cartClear:
		return cartState{isOpen: s.isOpen}
	}
	return s
}

func copyLines(lines []models.CartLine) []models.CartLine {
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}

// CartStore is the session's cart. One line per product id, insertion
// ordered; aggregates are computed fresh on every read.
type CartStore struct {
	mu    sync.Mutex
	state cartState
}

func NewCartStore() *CartStore { return &CartStore{} }

func (c *CartStore) dispatch(a cartAction) {
	c.mu.Lock()
	c.state = cartReduce(c.state, a)
	c.mu.Unlock()
}

// Add puts one unit of p in the cart, incrementing the existing line if the
// product is already present. Always succeeds.
func (c *CartStore) Add(p models.Product) {
	c.dispatch(cartAdd{product: p})
	metrics.CartAdds.Inc()
}

// Remove deletes the line for productID. No-op when absent.
func (c *CartStore) Remove(productID string) {
	c.dispatch(cartRemove{productID: productID})
}

// SetQuantity replaces the line's quantity in place. A quantity <= 0 removes
// the line. No upper bound is enforced.
func (c *CartStore) SetQuantity(productID string, quantity int) {
	c.dispatch(cartSetQuantity{productID: productID, quantity: quantity})
}

// SetOpen shows or hides the cart drawer.
func (c *CartStore) SetOpen(open bool) { c.dispatch(cartSetOpen{open: open}) }

// Toggle flips the drawer visibility.
func (c *CartStore) Toggle() { c.dispatch(cartToggle{}) }

// Clear empties the cart. Drawer visibility is untouched.
func (c *CartStore) Clear() { c.dispatch(cartClear{}) }

// Items returns a copy of the lines in insertion order.
func (c *CartStore) Items() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyLines(c.state.items)
}

// TotalItems is the sum of all line quantities.
func (c *CartStore) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, l := range c.state.items {
		n += l.Quantity
	}
	return n
}

// TotalPrice is the sum of price × quantity over all lines, recomputed on
// every call.
func (c *CartStore) TotalPrice() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, l := range c.state.items {
		total = total.Add(l.LineTotal())
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *CartStore) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.state.items) == 0
}

// Snapshot returns the full cart view with both aggregates.
func (c *CartStore) Snapshot() models.Cart {
	c.mu.Lock()
	defer c.mu.Unlock()

	totalItems := 0
	totalPrice := decimal.Zero
	for _, l := range c.state.items {
		totalItems += l.Quantity
		totalPrice = totalPrice.Add(l.LineTotal())
	}

	return models.Cart{
		Items:      copyLines(c.state.items),
		IsOpen:     c.state.isOpen,
		TotalItems: totalItems,
		TotalPrice: totalPrice,
	}
}
