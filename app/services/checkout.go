// Package services holds the flows that span multiple stores. Checkout is
// the main one: it reads the cart, charges the gateway, writes the order and
// clears the cart.
package services

import (
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/htoohtoo/storefront/app/models"
	"github.com/htoohtoo/storefront/app/store"
	"github.com/htoohtoo/storefront/pkg/event"
	"github.com/htoohtoo/storefront/pkg/metrics"
)

var (
	ErrNotAuthenticated   = errors.New("checkout: sign in before placing an order")
	ErrEmptyCart          = errors.New("checkout: cart is empty")
	ErrCheckoutInProgress = errors.New("checkout: a submission is already being processed")
)

// EventOrderPlaced fires after every successful checkout.
const EventOrderPlaced = "order.placed"

// OrderPlaced is the EventOrderPlaced payload.
type OrderPlaced struct {
	Order         models.Order
	CustomerName  string
	CustomerEmail string
}

var (
	freeShippingOver = decimal.RequireFromString("35")
	shippingFlat     = decimal.RequireFromString("5.99")
	taxRate          = decimal.RequireFromString("0.08")
)

// Quote is the cost breakdown for a cart subtotal.
type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// QuoteFor prices a subtotal: flat 5.99 shipping, waived strictly above 35;
// 8% tax on the subtotal alone, rounded to cents.
func QuoteFor(subtotal decimal.Decimal) Quote {
	shipping := shippingFlat
	if subtotal.GreaterThan(freeShippingOver) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(taxRate).Round(2)
	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// SubmitInput is what the shopper provides at the end of the checkout flow.
type SubmitInput struct {
	Address       models.Address
	PaymentMethod string
}

// Checkout coordinates order placement for all sessions.
type Checkout struct {
	gateway *PaymentGateway
	ledger  *store.Ledger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewCheckout(gateway *PaymentGateway, ledger *store.Ledger) *Checkout {
	return &Checkout{
		gateway:  gateway,
		ledger:   ledger,
		inFlight: map[string]struct{}{},
	}
}

// begin claims the session's single checkout slot.
func (c *Checkout) begin(sessionID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inFlight[sessionID]; busy {
		return false
	}
	c.inFlight[sessionID] = struct{}{}
	return true
}

func (c *Checkout) end(sessionID string) {
	c.mu.Lock()
	delete(c.inFlight, sessionID)
	c.mu.Unlock()
}

// Submit places an order from the session's cart. While the payment delay is
// running, a second Submit for the same session is rejected with
// ErrCheckoutInProgress; the first always completes. On success the order is
// prepended to the identity's history, recorded in the ledger, the cart is
// cleared and EventOrderPlaced fires.
func (c *Checkout) Submit(sessionID string, ctr *store.Container, in SubmitInput) (models.Order, error) {
	user, ok := ctr.Auth.User()
	if !ok {
		return models.Order{}, ErrNotAuthenticated
	}
	if ctr.Cart.IsEmpty() {
		return models.Order{}, ErrEmptyCart
	}

	if !c.begin(sessionID) {
		return models.Order{}, ErrCheckoutInProgress
	}
	defer c.end(sessionID)

	items := ctr.Cart.Items()
	quote := QuoteFor(ctr.Cart.TotalPrice())

	c.gateway.Charge(quote.Total, in.PaymentMethod)

	now := time.Now()
	order := models.Order{
		ID:              models.NewOrderID(now),
		UserID:          user.ID,
		Items:           items,
		Subtotal:        quote.Subtotal,
		Shipping:        quote.Shipping,
		Tax:             quote.Tax,
		Total:           quote.Total,
		Status:          models.OrderProcessing,
		CreatedAt:       now,
		ShippingAddress: in.Address,
		PaymentMethod:   in.PaymentMethod,
	}

	ctr.Auth.AddOrder(order)
	c.ledger.Record(order)
	ctr.Cart.Clear()

	metrics.OrdersPlaced.Inc()
	metrics.Revenue.Add(quote.Total.InexactFloat64())

	event.Fire(EventOrderPlaced, OrderPlaced{
		Order:         order,
		CustomerName:  user.Name,
		CustomerEmail: user.Email,
	})

	return order, nil
}
