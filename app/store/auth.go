package store

import (
	"sync"

	"github.com/htoohtoo/storefront/app/models"
	"github.com/htoohtoo/storefront/pkg/logger"
	"github.com/htoohtoo/storefront/pkg/snapshot"
)

type authAction interface{ isAuthAction() }

type authSignIn struct {
	user   models.User
	orders []models.Order
}
type authSignOut struct{}
type authMergeProfile struct{ name, email string }
type authPrependOrder struct{ order models.Order }

func (authSignIn) isAuthAction()       {}
func (authSignOut) isAuthAction()      {}
func (authMergeProfile) isAuthAction() {}
func (authPrependOrder) isAuthAction() {}

type authState struct {
	user   *models.User
	orders []models.Order
}

func authReduce(s authState, a authAction) authState {
	switch a := a.(type) {
	case authSignIn:
		u := a.user
		return authState{user: &u, orders: copyOrders(a.orders)}

	case authSignOut:
		return authState{}

	case authMergeProfile:
		if s.user == nil {
			return s
		}
		u := *s.user
		if a.name != "" {
			u.Name = a.name
		}
		if a.email != "" {
			u.Email = a.email
		}
		return authState{user: &u, orders: s.orders}

	case authPrependOrder:
		orders := make([]models.Order, 0, len(s.orders)+1)
		orders = append(orders, a.order)
		orders = append(orders, s.orders...)
		return authState{user: s.user, orders: orders}
	}
	return s
}

func copyOrders(orders []models.Order) []models.Order {
	out := make([]models.Order, len(orders))
	copy(out, orders)
	return out
}

// ProfileUpdate carries the fields UpdateProfile may merge. Empty fields are
// left as they are.
type ProfileUpdate struct {
	Name  string `json:"name" validate:"nullable,min=1"`
	Email string `json:"email" validate:"nullable,email"`
}

// AuthStore manages the session's identity and its order history. It is the
// only writer of the durable identity snapshot.
type AuthStore struct {
	mu        sync.Mutex
	sessionID string
	accounts  *Accounts
	snapshots snapshot.Store
	state     authState
}

// NewAuthStore builds the store and restores a persisted identity if one
// exists for the session. A restored customer identity gets the demo order
// history, mirroring what a backend reload would return.
func NewAuthStore(sessionID string, accounts *Accounts, snapshots snapshot.Store) *AuthStore {
	s := &AuthStore{sessionID: sessionID, accounts: accounts, snapshots: snapshots}
	s.restore()
	return s
}

func (s *AuthStore) restore() {
	rec, ok, err := s.snapshots.Load(s.sessionID)
	if err != nil {
		logger.Warn("auth: snapshot restore failed", "session", s.sessionID, "error", err)
		return
	}
	if !ok {
		return
	}

	user := models.User{ID: rec.ID, Email: rec.Email, Name: rec.Name, Role: rec.Role}
	var orders []models.Order
	if user.Role == models.RoleCustomer {
		orders = demoOrders()
	}

	s.mu.Lock()
	s.state = authReduce(s.state, authSignIn{user: user, orders: orders})
	s.mu.Unlock()
}

func (s *AuthStore) persist(u models.User) {
	rec := snapshot.Record{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
	if err := s.snapshots.Save(s.sessionID, rec); err != nil {
		logger.Error("auth: snapshot save failed", "session", s.sessionID, "error", err)
	}
}

// Login authenticates against the shared account set. On success the
// identity becomes current, its snapshot is persisted, and customer
// identities receive the demo order history. Failure leaves all prior state
// untouched.
func (s *AuthStore) Login(email, password string) bool {
	user, ok := s.accounts.Authenticate(email, password)
	if !ok {
		return false
	}

	var orders []models.Order
	if user.Role == models.RoleCustomer {
		orders = demoOrders()
	}

	s.mu.Lock()
	s.state = authReduce(s.state, authSignIn{user: user, orders: orders})
	s.mu.Unlock()

	s.persist(user)
	return true
}

// Register creates a customer account, signs it in and persists its
// snapshot. Returns false when the email is already taken. New registrations
// start with an empty order history.
func (s *AuthStore) Register(name, email, password string) bool {
	user, ok := s.accounts.Register(name, email, password)
	if !ok {
		return false
	}

	s.mu.Lock()
	s.state = authReduce(s.state, authSignIn{user: user})
	s.mu.Unlock()

	s.persist(user)
	return true
}

// Logout clears the identity and order list and removes the snapshot.
func (s *AuthStore) Logout() {
	s.mu.Lock()
	s.state = authReduce(s.state, authSignOut{})
	s.mu.Unlock()

	if err := s.snapshots.Delete(s.sessionID); err != nil {
		logger.Error("auth: snapshot delete failed", "session", s.sessionID, "error", err)
	}
}

// UpdateProfile merges the given fields into the current identity and
// re-persists the snapshot. No-op when signed out. An email change that
// collides with an existing account is rejected.
func (s *AuthStore) UpdateProfile(update ProfileUpdate) bool {
	s.mu.Lock()
	if s.state.user == nil {
		s.mu.Unlock()
		return false
	}
	oldEmail := s.state.user.Email

	if update.Email != "" && update.Email != oldEmail {
		if !s.accounts.Rename(oldEmail, update.Email) {
			s.mu.Unlock()
			return false
		}
	}

	s.state = authReduce(s.state, authMergeProfile{name: update.Name, email: update.Email})
	user := *s.state.user
	s.mu.Unlock()

	s.persist(user)
	return true
}

// AddOrder prepends order to the history, most recent first. Ownership is
// taken as given; callers stamp the owner id.
func (s *AuthStore) AddOrder(order models.Order) {
	s.mu.Lock()
	s.state = authReduce(s.state, authPrependOrder{order: order})
	s.mu.Unlock()
}

// User returns the current identity, if signed in.
func (s *AuthStore) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.user == nil {
		return models.User{}, false
	}
	return *s.state.user, true
}

// IsAuthenticated reports whether an identity is signed in.
func (s *AuthStore) IsAuthenticated() bool {
	_, ok := s.User()
	return ok
}

// Orders returns a copy of the order history, most recent first.
func (s *AuthStore) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyOrders(s.state.orders)
}
