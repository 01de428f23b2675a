package models

import "github.com/shopspring/decimal"

func init() {
	// Prices serialize as JSON numbers, matching what the storefront UI
	// consumes.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a read-only catalog record. Immutable for the life of the
// server; stores copy the fields they need instead of holding references.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Category      string           `json:"category"`
	Rating        float64          `json:"rating"`
	ReviewCount   int              `json:"reviewCount"`
	Description   string           `json:"description"`
	InStock       bool             `json:"inStock"`
	Tags          []string         `json:"tags,omitempty"`
	Image         string           `json:"image"`
	Unit          string           `json:"unit"`
}

// Category groups products for browsing.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}
