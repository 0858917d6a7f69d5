package models

import "time"

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
	ClientStatusProspect ClientStatus = "prospect"
)

func (s ClientStatus) Valid() bool {
	switch s {
	case ClientStatusActive, ClientStatusInactive, ClientStatusProspect:
		return true
	}
	return false
}

type Client struct {
	ID          int64        `json:"id" db:"id"`
	TenantID    int64        `json:"tenant_id" db:"tenant_id"`
	UserID      *int64       `json:"user_id" db:"user_id"` // login account for client-role users
	ClientType  string       `json:"client_type" db:"client_type"`
	FirstName   string       `json:"first_name" db:"first_name"`
	LastName    string       `json:"last_name" db:"last_name"`
	CompanyName string       `json:"company_name" db:"company_name"`
	Email       string       `json:"email" db:"email"`
	Phone       string       `json:"phone" db:"phone"`
	Address     string       `json:"address" db:"address"`
	City        string       `json:"city" db:"city"`
	State       string       `json:"state" db:"state"`
	PAN         string       `json:"pan" db:"pan_number"`
	Status      ClientStatus `json:"status" db:"status"`
	AssignedTo  int64        `json:"assigned_to" db:"assigned_to"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
}
