// Package catalog serves the read-only product and category data. Products
// never change after boot, so every query works over the seed slice and
// returns copies the caller may hold freely.
package catalog

import (
	"strings"

	"github.com/htoohtoo/storefront/app/models"
	"github.com/htoohtoo/storefront/pkg/collection"
)

// Sort orders accepted by Search.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
	SortName      = "name"
)

// Query filters and orders a product search. Zero value matches everything.
type Query struct {
	Term     string
	Category string
	MinPrice float64
	MaxPrice float64
	Sort     string
}

// Products returns the full catalog in seed order.
func Products() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// Categories returns the browsing categories in seed order.
func Categories() []models.Category {
	out := make([]models.Category, len(categories))
	copy(out, categories)
	return out
}

// Find returns the product with the given id.
func Find(id string) (models.Product, bool) {
	return collection.First(products, func(p models.Product) bool { return p.ID == id })
}

// Featured returns the first four products, the storefront's landing strip.
func Featured() []models.Product {
	return collection.Take(Products(), 4)
}

// Search applies q's filters in order (term, category, price range), then
// sorts. An unknown sort leaves seed order untouched.
func Search(q Query) []models.Product {
	result := Products()

	if term := strings.ToLower(strings.TrimSpace(q.Term)); term != "" {
		result = collection.Filter(result, func(p models.Product) bool {
			if strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.Description), term) {
				return true
			}
			return collection.Contains(p.Tags, func(tag string) bool {
				return strings.Contains(strings.ToLower(tag), term)
			})
		})
	}

	if q.Category != "" {
		result = collection.Filter(result, func(p models.Product) bool {
			return strings.EqualFold(p.Category, q.Category)
		})
	}

	if q.MinPrice > 0 {
		result = collection.Filter(result, func(p models.Product) bool {
			return p.Price.InexactFloat64() >= q.MinPrice
		})
	}
	if q.MaxPrice > 0 {
		result = collection.Filter(result, func(p models.Product) bool {
			return p.Price.InexactFloat64() <= q.MaxPrice
		})
	}

	switch q.Sort {
	case SortPriceAsc:
		result = collection.SortBy(result, func(a, b models.Product) bool {
			return a.Price.LessThan(b.Price)
		})
	case SortPriceDesc:
		result = collection.SortBy(result, func(a, b models.Product) bool {
			return b.Price.LessThan(a.Price)
		})
	case SortRating:
		result = collection.SortBy(result, func(a, b models.Product) bool {
			return a.Rating > b.Rating
		})
	case SortName:
		result = collection.SortBy(result, func(a, b models.Product) bool {
			return a.Name < b.Name
		})
	}

	return result
}
