package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/htoohtoo/storefront/app/models"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

var categories = []models.Category{
	{ID: "fruits", Name: "Fruits", Image: "/images/categories/fruits.jpg"},
	{ID: "vegetables", Name: "Vegetables", Image: "/images/categories/vegetables.jpg"},
	{ID: "dairy", Name: "Dairy", Image: "/images/categories/dairy.jpg"},
	{ID: "bakery", Name: "Bakery", Image: "/images/categories/bakery.jpg"},
	{ID: "beverages", Name: "Beverages", Image: "/images/categories/beverages.jpg"},
}

var products = []models.Product{
	{
		ID: "1", Name: "Fresh Apples", Price: d("2.99"), OriginalPrice: dp("3.49"),
		Category: "Fruits", Rating: 4.5, ReviewCount: 128,
		Description: "Crisp and sweet red apples, picked at peak ripeness.",
		InStock:     true, Tags: []string{"fresh", "organic"},
		Image: "/images/products/apples.jpg", Unit: "per lb",
	},
	{
		ID: "2", Name: "Organic Bananas", Price: d("1.99"),
		Category: "Fruits", Rating: 4.7, ReviewCount: 203,
		Description: "Naturally ripened organic bananas.",
		InStock:     true, Tags: []string{"organic"},
		Image: "/images/products/bananas.jpg", Unit: "per bunch",
	},
	{
		ID: "3", Name: "Baby Carrots", Price: d("1.49"),
		Category: "Vegetables", Rating: 4.3, ReviewCount: 87,
		Description: "Sweet baby carrots, washed and ready to eat.",
		InStock:     true,
		Image:       "/images/products/carrots.jpg", Unit: "per bag",
	},
	{
		ID: "4", Name: "Fresh Spinach", Price: d("2.49"),
		Category: "Vegetables", Rating: 4.2, ReviewCount: 64,
		Description: "Tender spinach leaves, great for salads and smoothies.",
		InStock:     true, Tags: []string{"fresh"},
		Image: "/images/products/spinach.jpg", Unit: "per bag",
	},
	{
		ID: "5", Name: "Whole Milk", Price: d("3.79"),
		Category: "Dairy", Rating: 4.6, ReviewCount: 156,
		Description: "Farm-fresh whole milk, pasteurized.",
		InStock:     true,
		Image:       "/images/products/milk.jpg", Unit: "per gallon",
	},
	{
		ID: "6", Name: "Greek Yogurt", Price: d("4.99"), OriginalPrice: dp("5.99"),
		Category: "Dairy", Rating: 4.8, ReviewCount: 241,
		Description: "Thick and creamy Greek yogurt, plain.",
		InStock:     true, Tags: []string{"protein"},
		Image: "/images/products/yogurt.jpg", Unit: "32 oz",
	},
	{
		ID: "7", Name: "Sourdough Bread", Price: d("4.49"),
		Category: "Bakery", Rating: 4.9, ReviewCount: 312,
		Description: "Artisan sourdough, baked fresh daily.",
		InStock:     true, Tags: []string{"fresh", "artisan"},
		Image: "/images/products/sourdough.jpg", Unit: "per loaf",
	},
	{
		ID: "8", Name: "Butter Croissants", Price: d("5.99"),
		Category: "Bakery", Rating: 4.7, ReviewCount: 178,
		Description: "Flaky all-butter croissants, pack of four.",
		InStock:     true,
		Image:       "/images/products/croissants.jpg", Unit: "4 pack",
	},
	{
		ID: "9", Name: "Orange Juice", Price: d("4.29"),
		Category: "Beverages", Rating: 4.4, ReviewCount: 95,
		Description: "Freshly squeezed orange juice, no pulp.",
		InStock:     true,
		Image:       "/images/products/orange-juice.jpg", Unit: "64 oz",
	},
	{
		ID: "10", Name: "Cold Brew Coffee", Price: d("5.49"), OriginalPrice: dp("6.49"),
		Category: "Beverages", Rating: 4.6, ReviewCount: 134,
		Description: "Smooth cold brew concentrate.",
		InStock:     true, Tags: []string{"caffeine"},
		Image: "/images/products/cold-brew.jpg", Unit: "32 oz",
	},
	{
		ID: "11", Name: "Avocados", Price: d("2.50"),
		Category: "Fruits", Rating: 4.5, ReviewCount: 167,
		Description: "Hass avocados, ready to eat in 1-2 days.",
		InStock:     true,
		Image:       "/images/products/avocados.jpg", Unit: "each",
	},
	{
		ID: "12", Name: "Cherry Tomatoes", Price: d("3.29"),
		Category: "Vegetables", Rating: 4.4, ReviewCount: 72,
		Description: "Sweet cherry tomatoes on the vine.",
		InStock:     false,
		Image:       "/images/products/cherry-tomatoes.jpg", Unit: "per pint",
	},
}
