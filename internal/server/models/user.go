package models

import (
	"database/sql"
	"time"
)

// Role is a user's access level.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleEmployee   Role = "employee"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

// DefaultStoreLimit applies when a new user is created without a limit.
const DefaultStoreLimit = 10

// User mirrors a row of the users table.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	StoreLimit   int
	IsActive     bool
	CreatedBy    sql.NullString
	CreatedAt    time.Time
}

// AdminIdentity is the safe projection of a verified super-admin.
type AdminIdentity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Identity strips everything but the public fields.
func (u *User) Identity() *AdminIdentity {
	return &AdminIdentity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// UserView is the listing shape of a user.
type UserView struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	StoreLimit int       `json:"store_limit"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

func (u *User) View() UserView {
	return UserView{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		StoreLimit: u.StoreLimit,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
	}
}

// NewUser is the input for creating a user. Nil or empty Role and nil or
// zero StoreLimit mean "use the default".
type NewUser struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       *Role  `json:"role,omitempty"`
	StoreLimit *int   `json:"store_limit,omitempty"`
}

// CreatedUser is returned after a successful creation.
type CreatedUser struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	StoreLimit int    `json:"store_limit"`
}
