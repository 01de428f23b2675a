package store_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/htoohtoo/storefront/app/models"
	"github.com/htoohtoo/storefront/app/store"
)

func product(id, price string) models.Product {
	return models.Product{ID: id, Name: "Product " + id, Price: decimal.RequireFromString(price)}
}

func TestAddMergesSameProduct(t *testing.T) {
	c := store.NewCartStore()
	p := product("1", "2.99")

	for i := 0; i < 5; i++ {
		c.Add(p)
	}

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("cart has %d lines, want 1", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", items[0].Quantity)
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	c := store.NewCartStore()
	c.Add(product("1", "2.99"))
	c.Add(product("2", "1.99"))
	c.Add(product("3", "1.49"))
	c.Add(product("1", "2.99")) // increments, must not move

	items := c.Items()
	want := []string{"1", "2", "3"}
	if len(items) != len(want) {
		t.Fatalf("cart has %d lines, want %d", len(items), len(want))
	}
	for i, id := range want {
		if items[i].ProductID != id {
			t.Errorf("line %d = product %s, want %s", i, items[i].ProductID, id)
		}
	}
}

func TestTotals(t *testing.T) {
	c := store.NewCartStore()
	p := product("1", "2.99")

	c.Add(p)
	c.Add(p)

	if got := c.TotalItems(); got != 2 {
		t.Errorf("TotalItems = %d, want 2", got)
	}
	if got := c.TotalPrice(); got.String() != "5.98" {
		t.Errorf("TotalPrice = %s, want 5.98", got)
	}

	c.SetQuantity("1", 0)

	if got := c.TotalItems(); got != 0 {
		t.Errorf("TotalItems after SetQuantity 0 = %d, want 0", got)
	}
	if !c.TotalPrice().IsZero() {
		t.Errorf("TotalPrice after SetQuantity 0 = %s, want 0", c.TotalPrice())
	}
}

func TestSetQuantityReplacesInPlace(t *testing.T) {
	c := store.NewCartStore()
	c.Add(product("1", "2.99"))
	c.Add(product("2", "1.99"))

	c.SetQuantity("1", 7)

	items := c.Items()
	if items[0].ProductID != "1" || items[0].Quantity != 7 {
		t.Errorf("line 0 = %s q%d, want product 1 q7", items[0].ProductID, items[0].Quantity)
	}
	if items[1].ProductID != "2" {
		t.Error("SetQuantity moved an unrelated line")
	}
}

func TestSetQuantityNonPositiveRemoves(t *testing.T) {
	c := store.NewCartStore()
	c.Add(product("1", "2.99"))
	c.Add(product("2", "1.99"))

	c.SetQuantity("1", 0)
	c.SetQuantity("2", -3)

	if !c.IsEmpty() {
		t.Errorf("cart still has %d lines after zeroing all quantities", len(c.Items()))
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	c := store.NewCartStore()
	c.Add(product("1", "2.99"))

	c.Remove("no-such-product")

	if got := c.TotalItems(); got != 1 {
		t.Errorf("TotalItems = %d after removing an absent product, want 1", got)
	}
}

func TestClear(t *testing.T) {
	c := store.NewCartStore()
	c.Add(product("1", "2.99"))
	c.Add(product("2", "1.99"))
	c.SetOpen(true)

	c.Clear()

	if !c.IsEmpty() {
		t.Error("cart not empty after Clear")
	}
	if !c.Snapshot().IsOpen {
		t.Error("Clear closed the drawer; visibility should be untouched")
	}
}

func TestToggleFlipsDrawer(t *testing.T) {
	c := store.NewCartStore()

	c.Toggle()
	if !c.Snapshot().IsOpen {
		t.Error("drawer closed after first Toggle, want open")
	}

	c.Toggle()
	if c.Snapshot().IsOpen {
		t.Error("drawer open after second Toggle, want closed")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	c := store.NewCartStore()
	c.Add(product("1", "2.99"))

	snap := c.Snapshot()
	snap.Items[0].Quantity = 99

	if c.Items()[0].Quantity != 1 {
		t.Error("mutating a snapshot changed the store")
	}
}
