package models

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User is the public identity held in state and persisted in the snapshot.
// It never carries a password.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
