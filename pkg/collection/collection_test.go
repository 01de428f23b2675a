package collection_test

import (
	"testing"

	"github.com/htoohtoo/storefront/pkg/collection"
)

type item struct {
	ID       string
	Category string
	Price    float64
}

var items = []item{
	{ID: "1", Category: "Fruits", Price: 2.99},
	{ID: "2", Category: "Fruits", Price: 1.99},
	{ID: "3", Category: "Vegetables", Price: 1.49},
	{ID: "4", Category: "Dairy", Price: 3.49},
}

func TestFilterAndMap(t *testing.T) {
	fruits := collection.Filter(items, func(i item) bool { return i.Category == "Fruits" })
	if len(fruits) != 2 {
		t.Fatalf("expected 2 fruits, got %d", len(fruits))
	}

	ids := collection.Map(fruits, func(i item) string { return i.ID })
	if ids[0] != "1" || ids[1] != "2" {
		t.Errorf("unexpected ids: %v", ids)
	}
}

func TestFirst(t *testing.T) {
	got, ok := collection.First(items, func(i item) bool { return i.ID == "3" })
	if !ok || got.Category != "Vegetables" {
		t.Errorf("First returned %+v, ok=%v", got, ok)
	}

	_, ok = collection.First(items, func(i item) bool { return i.ID == "missing" })
	if ok {
		t.Error("expected no match for missing id")
	}
}

func TestSum(t *testing.T) {
	total := collection.Sum(items, func(i item) float64 { return i.Price })
	if total != 9.96 {
		t.Errorf("expected 9.96, got %v", total)
	}
}

func TestSortByDoesNotMutate(t *testing.T) {
	sorted := collection.SortBy(items, func(a, b item) bool { return a.Price < b.Price })
	if sorted[0].ID != "3" {
		t.Errorf("expected cheapest first, got %s", sorted[0].ID)
	}
	if items[0].ID != "1" {
		t.Error("SortBy mutated its input")
	}
}

func TestPaginate(t *testing.T) {
	page := collection.Paginate(items, 2, 2)
	if len(page) != 2 || page[0].ID != "3" {
		t.Errorf("unexpected page: %+v", page)
	}

	if got := collection.Paginate(items, 5, 2); got != nil {
		t.Errorf("expected nil past the end, got %+v", got)
	}

	// page < 1 clamps to the first page
	page = collection.Paginate(items, 0, 3)
	if len(page) != 3 || page[0].ID != "1" {
		t.Errorf("unexpected clamped page: %+v", page)
	}
}

func TestKeyBy(t *testing.T) {
	byID := collection.KeyBy(items, func(i item) string { return i.ID })
	if byID["4"].Category != "Dairy" {
		t.Errorf("unexpected KeyBy result: %+v", byID)
	}
}

func TestTake(t *testing.T) {
	if got := collection.Take(items, 2); len(got) != 2 {
		t.Errorf("expected 2, got %d", len(got))
	}
	if got := collection.Take(items, 10); len(got) != len(items) {
		t.Errorf("expected all items, got %d", len(got))
	}
}
