package catalog_test

import (
	"testing"

	"github.com/htoohtoo/storefront/app/catalog"
	"github.com/htoohtoo/storefront/app/models"
)

func TestFind(t *testing.T) {
	p, ok := catalog.Find("1")
	if !ok {
		t.Fatal("expected product 1 to exist")
	}
	if p.Name != "Fresh Apples" {
		t.Errorf("product 1 = %q, want Fresh Apples", p.Name)
	}
	if p.Price.String() != "2.99" {
		t.Errorf("product 1 price = %s, want 2.99", p.Price)
	}

	if _, ok := catalog.Find("no-such-id"); ok {
		t.Error("expected miss for unknown id")
	}
}

func TestSearchByTerm(t *testing.T) {
	got := catalog.Search(catalog.Query{Term: "apple"})
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("Search(apple) = %v, want just product 1", ids(got))
	}

	// Term matching is case-insensitive and also scans descriptions.
	if got := catalog.Search(catalog.Query{Term: "SOURDOUGH"}); len(got) != 1 {
		t.Errorf("Search(SOURDOUGH) matched %d products, want 1", len(got))
	}
}

func TestSearchByCategory(t *testing.T) {
	got := catalog.Search(catalog.Query{Category: "Fruits"})
	if len(got) != 3 {
		t.Fatalf("Search(Fruits) matched %d products, want 3", len(got))
	}
	for _, p := range got {
		if p.Category != "Fruits" {
			t.Errorf("product %s has category %s", p.ID, p.Category)
		}
	}
}

func TestSearchPriceRange(t *testing.T) {
	got := catalog.Search(catalog.Query{MinPrice: 2, MaxPrice: 3})
	for _, p := range got {
		price := p.Price.InexactFloat64()
		if price < 2 || price > 3 {
			t.Errorf("product %s price %s outside [2,3]", p.ID, p.Price)
		}
	}
	if len(got) == 0 {
		t.Error("expected some products between 2 and 3")
	}
}

func TestSearchSorting(t *testing.T) {
	asc := catalog.Search(catalog.Query{Sort: catalog.SortPriceAsc})
	for i := 1; i < len(asc); i++ {
		if asc[i].Price.LessThan(asc[i-1].Price) {
			t.Fatalf("price-asc out of order at %d: %s after %s", i, asc[i].Price, asc[i-1].Price)
		}
	}

	desc := catalog.Search(catalog.Query{Sort: catalog.SortPriceDesc})
	for i := 1; i < len(desc); i++ {
		if desc[i-1].Price.LessThan(desc[i].Price) {
			t.Fatalf("price-desc out of order at %d", i)
		}
	}

	rated := catalog.Search(catalog.Query{Sort: catalog.SortRating})
	for i := 1; i < len(rated); i++ {
		if rated[i].Rating > rated[i-1].Rating {
			t.Fatalf("rating sort out of order at %d", i)
		}
	}
}

func TestFeatured(t *testing.T) {
	got := catalog.Featured()
	if len(got) != 4 {
		t.Fatalf("Featured returned %d products, want 4", len(got))
	}
	if got[0].ID != "1" {
		t.Errorf("Featured starts with %s, want product 1", got[0].ID)
	}
}

func TestProductsReturnsCopy(t *testing.T) {
	first := catalog.Products()
	first[0].Name = "mutated"

	if catalog.Products()[0].Name == "mutated" {
		t.Error("mutating the returned slice changed the catalog")
	}
}

func ids(ps []models.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}
