package models

import "time"

type Tenant struct {
	ID               int64     `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	Domain           string    `json:"domain" db:"domain"`
	SubscriptionTier string    `json:"subscription_tier" db:"subscription_tier"`
	MaxUsers         int       `json:"max_users" db:"max_users"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}
