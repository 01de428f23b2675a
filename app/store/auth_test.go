package store_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/htoohtoo/storefront/app/models"
	"github.com/htoohtoo/storefront/app/store"
	"github.com/htoohtoo/storefront/pkg/snapshot"
)

func newAuthStore(sessionID string) (*store.AuthStore, snapshot.Store, *store.Accounts) {
	accounts := store.NewAccounts()
	snapshots := snapshot.NewMemory()
	return store.NewAuthStore(sessionID, accounts, snapshots), snapshots, accounts
}

func TestLoginCustomer(t *testing.T) {
	s, snapshots, _ := newAuthStore("sess")

	if !s.Login("customer@example.com", "customer123") {
		t.Fatal("expected login to succeed")
	}

	u, ok := s.User()
	if !ok {
		t.Fatal("no current identity after login")
	}
	if u.Name != "John Doe" || u.Role != models.RoleCustomer {
		t.Errorf("identity = %+v", u)
	}

	orders := s.Orders()
	if len(orders) != 2 {
		t.Fatalf("customer has %d orders, want the 2 demo orders", len(orders))
	}
	if orders[0].ID != "ORD-001" || orders[1].ID != "ORD-002" {
		t.Errorf("demo orders = %s, %s", orders[0].ID, orders[1].ID)
	}

	if _, ok, _ := snapshots.Load("sess"); !ok {
		t.Error("login did not persist the identity snapshot")
	}
}

func TestLoginAdminHasNoOrders(t *testing.T) {
	s, _, _ := newAuthStore("sess")

	if !s.Login("admin@htoohtoo.com", "admin123") {
		t.Fatal("expected admin login to succeed")
	}
	if got := len(s.Orders()); got != 0 {
		t.Errorf("admin has %d orders, want 0", got)
	}
}

func TestLoginFailureLeavesStateUntouched(t *testing.T) {
	s, snapshots, _ := newAuthStore("sess")
	if !s.Login("customer@example.com", "customer123") {
		t.Fatal("setup login failed")
	}

	if s.Login("customer@example.com", "wrong-password") {
		t.Error("expected wrong password to fail")
	}
	// Email comparison is exact, case included.
	if s.Login("Customer@Example.com", "customer123") {
		t.Error("expected differently-cased email to fail")
	}

	if u, ok := s.User(); !ok || u.Email != "customer@example.com" {
		t.Error("failed login disturbed the prior identity")
	}
	if len(s.Orders()) != 2 {
		t.Error("failed login disturbed the order list")
	}
	if _, ok, _ := snapshots.Load("sess"); !ok {
		t.Error("failed login removed the snapshot")
	}
}

func TestRegister(t *testing.T) {
	s, snapshots, _ := newAuthStore("sess")

	if !s.Register("Jane Smith", "jane@example.com", "secret12") {
		t.Fatal("expected registration to succeed")
	}

	u, ok := s.User()
	if !ok {
		t.Fatal("no identity after registration")
	}
	if u.Role != models.RoleCustomer {
		t.Errorf("role = %s, want customer", u.Role)
	}
	if u.ID == "" {
		t.Error("registration did not assign an id")
	}
	if got := len(s.Orders()); got != 0 {
		t.Errorf("fresh registration has %d orders, want 0", got)
	}
	if _, ok, _ := snapshots.Load("sess"); !ok {
		t.Error("registration did not persist a snapshot")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s, _, _ := newAuthStore("sess")

	if s.Register("Someone", "customer@example.com", "pw123456") {
		t.Error("expected duplicate email to fail")
	}
	// Uniqueness is case-sensitive: a differently-cased duplicate passes.
	if !s.Register("Someone", "Customer@example.com", "pw123456") {
		t.Error("expected differently-cased email to register")
	}
}

func TestLogout(t *testing.T) {
	s, snapshots, _ := newAuthStore("sess")
	_ = s.Login("customer@example.com", "customer123")

	s.Logout()

	if s.IsAuthenticated() {
		t.Error("still authenticated after logout")
	}
	if len(s.Orders()) != 0 {
		t.Error("order list survived logout")
	}
	if _, ok, _ := snapshots.Load("sess"); ok {
		t.Error("snapshot survived logout")
	}
}

func TestUpdateProfile(t *testing.T) {
	s, snapshots, _ := newAuthStore("sess")
	_ = s.Login("customer@example.com", "customer123")

	if !s.UpdateProfile(store.ProfileUpdate{Name: "Johnny Doe"}) {
		t.Fatal("expected profile update to succeed")
	}

	u, _ := s.User()
	if u.Name != "Johnny Doe" {
		t.Errorf("name = %q, want Johnny Doe", u.Name)
	}
	if u.Email != "customer@example.com" {
		t.Errorf("email changed unexpectedly: %q", u.Email)
	}

	rec, ok, _ := snapshots.Load("sess")
	if !ok || rec.Name != "Johnny Doe" {
		t.Error("update did not re-persist the snapshot")
	}
}

func TestUpdateProfileWhenSignedOut(t *testing.T) {
	s, _, _ := newAuthStore("sess")

	if s.UpdateProfile(store.ProfileUpdate{Name: "Ghost"}) {
		t.Error("expected update to no-op when signed out")
	}
}

func TestUpdateProfileEmailCollision(t *testing.T) {
	s, _, _ := newAuthStore("sess")
	_ = s.Login("customer@example.com", "customer123")

	if s.UpdateProfile(store.ProfileUpdate{Email: "admin@htoohtoo.com"}) {
		t.Error("expected collision with an existing account to fail")
	}
	if u, _ := s.User(); u.Email != "customer@example.com" {
		t.Error("failed update changed the email anyway")
	}
}

func TestAddOrderPrepends(t *testing.T) {
	s, _, _ := newAuthStore("sess")
	_ = s.Register("Jane", "jane@example.com", "secret12")

	o1 := models.Order{ID: "ORD-1", Total: decimal.RequireFromString("10.00"), CreatedAt: time.Now()}
	o2 := models.Order{ID: "ORD-2", Total: decimal.RequireFromString("20.00"), CreatedAt: time.Now()}
	s.AddOrder(o1)
	s.AddOrder(o2)

	orders := s.Orders()
	if len(orders) != 2 {
		t.Fatalf("have %d orders, want 2", len(orders))
	}
	if orders[0].ID != "ORD-2" {
		t.Errorf("first order = %s, want the most recent (ORD-2)", orders[0].ID)
	}
}

func TestRestoreFromSnapshot(t *testing.T) {
	accounts := store.NewAccounts()
	snapshots := snapshot.NewMemory()

	first := store.NewAuthStore("sess", accounts, snapshots)
	_ = first.Login("customer@example.com", "customer123")

	// A fresh store for the same session picks the identity back up, and a
	// customer role reloads the demo history.
	second := store.NewAuthStore("sess", accounts, snapshots)
	u, ok := second.User()
	if !ok {
		t.Fatal("restored store has no identity")
	}
	if u.Email != "customer@example.com" {
		t.Errorf("restored identity = %+v", u)
	}
	if len(second.Orders()) != 2 {
		t.Errorf("restored customer has %d orders, want 2", len(second.Orders()))
	}
}

func TestRestoreNothingWithoutSnapshot(t *testing.T) {
	s, _, _ := newAuthStore("fresh-session")
	if s.IsAuthenticated() {
		t.Error("brand-new session should start signed out")
	}
}
