package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID               int64     `json:"id"`
	Email            string    `json:"email"`
	StripeCustomerID *string   `json:"stripe_customer_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type Membership struct {
	ID              uuid.UUID  `json:"id"`
	UserID          int64      `json:"user_id"`
	StripeSessionID string     `json:"stripe_session_id"`
	Plan            string     `json:"plan"`
	StartedAt       time.Time  `json:"started_at"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}
