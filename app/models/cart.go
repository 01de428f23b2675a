package models

import "github.com/shopspring/decimal"

// CartLine is one product entry in a cart. At most one line exists per
// product id; Quantity is always >= 1 (a line that would drop to zero is
// removed instead).
type CartLine struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Unit      string          `json:"unit"`
	Quantity  int             `json:"quantity"`
}

// LineTotal is price × quantity for this line.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// NewCartLine copies the display fields a cart needs from a product.
func NewCartLine(p Product, quantity int) CartLine {
	return CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Unit:      p.Unit,
		Quantity:  quantity,
	}
}

// Cart is a point-in-time view of a cart store: the ordered lines, the
// drawer visibility flag and the two derived aggregates.
type Cart struct {
	Items      []CartLine      `json:"items"`
	IsOpen     bool            `json:"isOpen"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}
