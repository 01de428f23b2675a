package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/htoohtoo/storefront/app/models"
	"github.com/htoohtoo/storefront/pkg/auth"
	"github.com/htoohtoo/storefront/pkg/logger"
)

// credential is one known account. The hash never leaves this package.
type credential struct {
	user         models.User
	passwordHash string
}

// Accounts is the shared in-memory account registry. All sessions
// authenticate against the same set; registrations append to it.
type Accounts struct {
	mu    sync.RWMutex
	byKey map[string]credential // keyed by email, case-sensitive
	order []string
}

// NewAccounts returns a registry seeded with the two demo accounts.
func NewAccounts() *Accounts {
	a := &Accounts{byKey: map[string]credential{}}
	a.seed(models.User{ID: "1", Email: "admin@htoohtoo.com", Name: "Admin User", Role: models.RoleAdmin}, "admin123")
	a.seed(models.User{ID: "2", Email: "customer@example.com", Name: "John Doe", Role: models.RoleCustomer}, "customer123")
	return a
}

func (a *Accounts) seed(u models.User, password string) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		logger.Error("accounts: seed hash failed", "email", u.Email, "error", err)
		return
	}
	a.byKey[u.Email] = credential{user: u, passwordHash: hash}
	a.order = append(a.order, u.Email)
}

// Authenticate returns the public identity when email and password both
// match a known account. Email comparison is exact, case included.
func (a *Accounts) Authenticate(email, password string) (models.User, bool) {
	a.mu.RLock()
	cred, ok := a.byKey[email]
	a.mu.RUnlock()
	if !ok {
		return models.User{}, false
	}
	if !auth.CheckPassword(cred.passwordHash, password) {
		return models.User{}, false
	}
	return cred.user, true
}

// Register creates a customer account. Returns false when the email is
// already taken (exact-match comparison) or the password cannot be hashed.
func (a *Accounts) Register(name, email, password string) (models.User, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.byKey[email]; exists {
		return models.User{}, false
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		logger.Error("accounts: hash failed", "error", err)
		return models.User{}, false
	}

	u := models.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
		Role:  models.RoleCustomer,
	}
	a.byKey[email] = credential{user: u, passwordHash: hash}
	a.order = append(a.order, email)
	return u, true
}

// Rename moves an account to a new email key when a profile update changes
// the address. No-op if the new email is already taken.
func (a *Accounts) Rename(oldEmail, newEmail string) bool {
	if oldEmail == newEmail {
		return true
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	cred, ok := a.byKey[oldEmail]
	if !ok {
		return false
	}
	if _, taken := a.byKey[newEmail]; taken {
		return false
	}

	cred.user.Email = newEmail
	delete(a.byKey, oldEmail)
	a.byKey[newEmail] = cred
	for i, e := range a.order {
		if e == oldEmail {
			a.order[i] = newEmail
		}
	}
	return true
}

// Users lists the public identities in registration order. Admin view.
func (a *Accounts) Users() []models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]models.User, 0, len(a.order))
	for _, email := range a.order {
		if cred, ok := a.byKey[email]; ok {
			out = append(out, cred.user)
		}
	}
	return out
}
