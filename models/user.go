package models

type Role string

const (
	RoleAdmin Role = "admin"
	RoleGuest Role = "guest"
)

// User is an API caller known to the credential store.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // bcrypt hash, never returned in JSON
	Role         Role   `json:"role"`
}
