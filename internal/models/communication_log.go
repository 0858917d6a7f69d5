package models

import "time"

type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)

type CommunicationLog struct {
	ID                int64     `json:"id" db:"id"`
	TenantID          int64     `json:"tenant_id" db:"tenant_id"`
	ClientID          int64     `json:"client_id" db:"client_id"`
	CaseID            *int64    `json:"case_id" db:"case_id"`
	UserID            int64     `json:"user_id" db:"user_id"`
	CommunicationType string    `json:"communication_type" db:"communication_type"`
	Direction         Direction `json:"direction" db:"direction"`
	Subject           string    `json:"subject" db:"subject"`
	Notes             string    `json:"notes" db:"notes"`
	CommunicatedAt    time.Time `json:"communicated_at" db:"communicated_at"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}
