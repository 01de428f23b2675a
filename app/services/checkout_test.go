package services_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/htoohtoo/storefront/app/models"
	"github.com/htoohtoo/storefront/app/services"
	"github.com/htoohtoo/storefront/app/store"
	"github.com/htoohtoo/storefront/pkg/snapshot"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var testAddress = models.Address{
	FullName: "Jane Smith", Street: "1 Test Way", City: "Testville",
	State: "TS", PostalCode: "00000", Country: "USA", Phone: "+1 555 0100",
}

func newContainer(t *testing.T) *store.Container {
	t.Helper()
	m := store.NewManager(store.NewAccounts(), snapshot.NewMemory())
	ctr := m.Get("sess")
	if !ctr.Auth.Login("customer@example.com", "customer123") {
		t.Fatal("setup login failed")
	}
	return ctr
}

func newCheckout(delay time.Duration) (*services.Checkout, *store.Ledger) {
	ledger := store.NewLedger()
	return services.NewCheckout(services.NewPaymentGateway(delay), ledger), ledger
}

func TestQuoteFor(t *testing.T) {
	cases := []struct {
		subtotal string
		shipping string
		tax      string
		total    string
	}{
		{"5.98", "5.99", "0.48", "12.45"},
		{"40", "0", "3.2", "43.2"},
		// Free shipping kicks in strictly above 35.
		{"35", "5.99", "2.8", "43.79"},
		{"35.01", "0", "2.8", "37.81"},
	}
	for _, tc := range cases {
		q := services.QuoteFor(d(tc.subtotal))
		if !q.Shipping.Equal(d(tc.shipping)) {
			t.Errorf("QuoteFor(%s).Shipping = %s, want %s", tc.subtotal, q.Shipping, tc.shipping)
		}
		if !q.Tax.Equal(d(tc.tax)) {
			t.Errorf("QuoteFor(%s).Tax = %s, want %s", tc.subtotal, q.Tax, tc.tax)
		}
		if !q.Total.Equal(d(tc.total)) {
			t.Errorf("QuoteFor(%s).Total = %s, want %s", tc.subtotal, q.Total, tc.total)
		}
	}
}

func TestSubmit(t *testing.T) {
	ctr := newContainer(t)
	checkout, ledger := newCheckout(0)

	ctr.Cart.Add(models.Product{ID: "1", Name: "Fresh Apples", Price: d("2.99")})
	ctr.Cart.Add(models.Product{ID: "1", Name: "Fresh Apples", Price: d("2.99")})

	order, err := checkout.Submit("sess", ctr, services.SubmitInput{
		Address:       testAddress,
		PaymentMethod: "Credit Card",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if order.Status != models.OrderProcessing {
		t.Errorf("status = %s, want processing", order.Status)
	}
	if !order.Subtotal.Equal(d("5.98")) || !order.Total.Equal(d("12.45")) {
		t.Errorf("subtotal/total = %s/%s, want 5.98/12.45", order.Subtotal, order.Total)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Errorf("order items = %+v", order.Items)
	}
	if u, _ := ctr.Auth.User(); order.UserID != u.ID {
		t.Errorf("order owner = %s, want %s", order.UserID, u.ID)
	}

	if !ctr.Cart.IsEmpty() {
		t.Error("cart not cleared after checkout")
	}
	if got := ctr.Auth.Orders(); len(got) == 0 || got[0].ID != order.ID {
		t.Error("order not prepended to the identity's history")
	}
	if _, ok := ledger.Find(order.ID); !ok {
		t.Error("order not recorded in the ledger")
	}
}

func TestSubmitFrozenCopy(t *testing.T) {
	ctr := newContainer(t)
	checkout, _ := newCheckout(0)

	ctr.Cart.Add(models.Product{ID: "1", Price: d("2.99")})
	order, err := checkout.Submit("sess", ctr, services.SubmitInput{Address: testAddress, PaymentMethod: "Credit Card"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// New cart activity must not reach into the placed order.
	ctr.Cart.Add(models.Product{ID: "2", Price: d("1.99")})
	if len(order.Items) != 1 {
		t.Error("order items changed after later cart activity")
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	ctr := newContainer(t)
	checkout, _ := newCheckout(0)

	_, err := checkout.Submit("sess", ctr, services.SubmitInput{Address: testAddress})
	if !errors.Is(err, services.ErrEmptyCart) {
		t.Errorf("err = %v, want ErrEmptyCart", err)
	}
}

func TestSubmitSignedOut(t *testing.T) {
	m := store.NewManager(store.NewAccounts(), snapshot.NewMemory())
	ctr := m.Get("sess")
	ctr.Cart.Add(models.Product{ID: "1", Price: d("2.99")})
	checkout, _ := newCheckout(0)

	_, err := checkout.Submit("sess", ctr, services.SubmitInput{Address: testAddress})
	if !errors.Is(err, services.ErrNotAuthenticated) {
		t.Errorf("err = %v, want ErrNotAuthenticated", err)
	}
}

func TestSubmitRejectsReentry(t *testing.T) {
	ctr := newContainer(t)
	checkout, _ := newCheckout(150 * time.Millisecond)

	ctr.Cart.Add(models.Product{ID: "1", Price: d("2.99")})

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		placed   int
		rejected int
	)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := checkout.Submit("sess", ctr, services.SubmitInput{Address: testAddress, PaymentMethod: "Credit Card"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				placed++
			case errors.Is(err, services.ErrCheckoutInProgress):
				rejected++
			}
		}()
		// Let the first submission reach the payment delay.
		time.Sleep(30 * time.Millisecond)
	}
	wg.Wait()

	if placed != 1 || rejected != 1 {
		t.Errorf("placed=%d rejected=%d, want exactly one of each", placed, rejected)
	}
}

func TestSubmitDistinctSessionsDoNotBlock(t *testing.T) {
	accounts := store.NewAccounts()
	snapshots := snapshot.NewMemory()
	m := store.NewManager(accounts, snapshots)

	a := m.Get("sess-a")
	b := m.Get("sess-b")
	for _, ctr := range []*store.Container{a, b} {
		if !ctr.Auth.Login("customer@example.com", "customer123") {
			t.Fatal("setup login failed")
		}
		ctr.Cart.Add(models.Product{ID: "1", Price: d("2.99")})
	}

	checkout, _ := newCheckout(100 * time.Millisecond)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() { defer wg.Done(); _, errs[0] = checkout.Submit("sess-a", a, services.SubmitInput{Address: testAddress}) }()
	go func() { defer wg.Done(); _, errs[1] = checkout.Submit("sess-b", b, services.SubmitInput{Address: testAddress}) }()
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("session %d: %v", i, err)
		}
	}
}
