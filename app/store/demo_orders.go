package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/htoohtoo/storefront/app/models"
)

var demoAddress = models.Address{
	FullName:   "John Doe",
	Street:     "123 Main St",
	City:       "New York",
	State:      "NY",
	PostalCode: "10001",
	Country:    "USA",
	Phone:      "+1 234 567 890",
}

// demoOrders is the fixed history shown to customer identities. Returned
// fresh on each call so a caller's mutations never leak back.
func demoOrders() []models.Order {
	return []models.Order{
		{
			ID:     "ORD-001",
			UserID: "2",
			Items: []models.CartLine{
				{ProductID: "1", Name: "Fresh Apples", Price: decimal.RequireFromString("2.99"), Image: "/images/products/apples.jpg", Unit: "per lb", Quantity: 3},
				{ProductID: "2", Name: "Organic Bananas", Price: decimal.RequireFromString("1.99"), Image: "/images/products/bananas.jpg", Unit: "per bunch", Quantity: 2},
			},
			Subtotal:        decimal.RequireFromString("12.95"),
			Total:           decimal.RequireFromString("12.95"),
			Status:          models.OrderDelivered,
			CreatedAt:       time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC),
			ShippingAddress: demoAddress,
			PaymentMethod:   "Credit Card",
		},
		{
			ID:     "ORD-002",
			UserID: "2",
			Items: []models.CartLine{
				{ProductID: "3", Name: "Baby Carrots", Price: decimal.RequireFromString("1.49"), Image: "/images/products/carrots.jpg", Unit: "per bag", Quantity: 5},
			},
			Subtotal:        decimal.RequireFromString("7.45"),
			Total:           decimal.RequireFromString("7.45"),
			Status:          models.OrderShipped,
			CreatedAt:       time.Date(2024, time.January, 20, 14, 15, 0, 0, time.UTC),
			ShippingAddress: demoAddress,
			PaymentMethod:   "PayPal",
		},
	}
}
