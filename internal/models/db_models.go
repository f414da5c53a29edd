package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type UserDB struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID               int64     `bun:"id,pk,autoincrement" json:"id"`
	Email            string    `bun:"email,notnull,unique" json:"email"`
	StripeCustomerID *string   `bun:"stripe_customer_id" json:"stripe_customer_id,omitempty"`
	CreatedAt        time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

type MembershipDB struct {
	bun.BaseModel `bun:"table:memberships,alias:m"`

	ID              uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserID          int64      `bun:"user_id,notnull" json:"user_id"`
	User            *UserDB    `bun:"rel:belongs-to,join:user_id=id,on_delete:CASCADE"`
	StripeSessionID string     `bun:"stripe_session_id,notnull,unique" json:"stripe_session_id"`
	Plan            string     `bun:"plan,notnull" json:"plan"`
	StartedAt       time.Time  `bun:"started_at,notnull" json:"started_at"`
	ExpiresAt       *time.Time `bun:"expires_at" json:"expires_at,omitempty"`
}

// TemplateDB and AlertDB are owned by other parts of the platform; this
// service only guarantees their tables exist.
type TemplateDB struct {
	bun.BaseModel `bun:"table:templates,alias:t"`

	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Body      string    `bun:"body" json:"body"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

type AlertDB struct {
	bun.BaseModel `bun:"table:alerts,alias:a"`

	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Message   string    `bun:"message,notnull" json:"message"`
	Level     string    `bun:"level" json:"level"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

func (u *UserDB) ToUser() *User {
	return &User{
		ID:               u.ID,
		Email:            u.Email,
		StripeCustomerID: u.StripeCustomerID,
		CreatedAt:        u.CreatedAt,
	}
}

func (m *MembershipDB) ToMembership() *Membership {
	return &Membership{
		ID:              m.ID,
		UserID:          m.UserID,
		StripeSessionID: m.StripeSessionID,
		Plan:            m.Plan,
		StartedAt:       m.StartedAt,
		ExpiresAt:       m.ExpiresAt,
	}
}
