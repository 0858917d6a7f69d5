package models

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleLawyer    Role = "lawyer"
	RoleParalegal Role = "paralegal"
	RoleClient    Role = "client"
)

// Roles lists every role in the order users are created.
var Roles = []Role{RoleAdmin, RoleLawyer, RoleParalegal, RoleClient}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleLawyer, RoleParalegal, RoleClient:
		return true
	}
	return false
}

type User struct {
	ID           int64     `json:"id" db:"id"`
	TenantID     int64     `json:"tenant_id" db:"tenant_id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize in JSON
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Role         Role      `json:"role" db:"role"`
	Phone        string    `json:"phone" db:"phone"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
