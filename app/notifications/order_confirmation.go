// Package notifications defines the concrete notifications the storefront
// sends.
package notifications

import (
	"fmt"
	"strings"

	"github.com/htoohtoo/storefront/app/models"
	"github.com/htoohtoo/storefront/pkg/mail"
)

// OrderConfirmation goes out after every successful checkout: an email to
// the customer and a webhook call for downstream systems.
type OrderConfirmation struct {
	Order         models.Order
	CustomerName  string
	CustomerEmail string
}

func (OrderConfirmation) Via() []string { return []string{"mail", "webhook"} }

func (n OrderConfirmation) ToMail() *mail.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", n.CustomerName)
	fmt.Fprintf(&b, "Thanks for your order %s. Here's what's coming:\n\n", n.Order.ID)
	for _, item := range n.Order.Items {
		fmt.Fprintf(&b, "  %d x %s — $%s\n", item.Quantity, item.Name, item.LineTotal().StringFixed(2))
	}
	fmt.Fprintf(&b, "\nSubtotal: $%s\n", n.Order.Subtotal.StringFixed(2))
	if n.Order.Shipping.IsZero() {
		b.WriteString("Shipping: Free\n")
	} else {
		fmt.Fprintf(&b, "Shipping: $%s\n", n.Order.Shipping.StringFixed(2))
	}
	fmt.Fprintf(&b, "Tax: $%s\n", n.Order.Tax.StringFixed(2))
	fmt.Fprintf(&b, "Total: $%s\n\n", n.Order.Total.StringFixed(2))
	fmt.Fprintf(&b, "Shipping to: %s, %s, %s %s\n", n.Order.ShippingAddress.Street,
		n.Order.ShippingAddress.City, n.Order.ShippingAddress.State, n.Order.ShippingAddress.PostalCode)

	return mail.New().
		To(n.CustomerEmail).
		Subject(fmt.Sprintf("Order %s confirmed", n.Order.ID)).
		Body(b.String())
}

func (n OrderConfirmation) ToWebhook() any {
	return map[string]any{
		"event":   "order.placed",
		"orderId": n.Order.ID,
		"userId":  n.Order.UserID,
		"total":   n.Order.Total,
		"status":  n.Order.Status,
		"placed":  n.Order.CreatedAt,
	}
}
