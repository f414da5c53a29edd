package membership

import (
	"context"
	"database/sql"
	"time"

	"github.com/memberhub/backend/internal/models"
	"github.com/uptrace/bun"
)

type Store interface {
	InitializeDatabase(ctx context.Context) error
	CommitCheckout(ctx context.Context, email, stripeCustomerID, sessionID, plan string) (*CommitResult, error)
}

// CommitResult reports what the transaction actually did. Inserted is false
// when the session was already recorded and the membership insert was a no-op.
type CommitResult struct {
	User     *models.User
	Inserted bool
}

type MembershipStore struct {
	db *bun.DB
}

func NewMembershipStore(db *bun.DB) *MembershipStore {
	return &MembershipStore{db: db}
}

// InitializeDatabase creates the persisted schema additively. Users must be
// created before memberships because of the foreign key.
func (s *MembershipStore) InitializeDatabase(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*models.UserDB)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return err
	}

	_, err = s.db.NewCreateTable().
		Model((*models.MembershipDB)(nil)).
		IfNotExists().
		WithForeignKeys().
		Exec(ctx)
	if err != nil {
		return err
	}

	_, err = s.db.NewCreateTable().
		Model((*models.TemplateDB)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return err
	}

	_, err = s.db.NewCreateTable().
		Model((*models.AlertDB)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return err
	}

	_, err = s.db.NewCreateIndex().
		Model((*models.UserDB)(nil)).
		Index("idx_users_stripe_customer_id").
		Column("stripe_customer_id").
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return err
	}

	_, err = s.db.NewCreateIndex().
		Model((*models.MembershipDB)(nil)).
		Index("idx_memberships_user_id").
		Column("user_id").
		IfNotExists().
		Exec(ctx)
	return err
}

// CommitCheckout upserts the user by email and records the membership as one
// atomic unit. Redelivery of an already-recorded session leaves the
// memberships table untouched (unique stripe_session_id, insert ignored).
func (s *MembershipStore) CommitCheckout(ctx context.Context, email, stripeCustomerID, sessionID, plan string) (*CommitResult, error) {
	userDB := &models.UserDB{
		Email:     email,
		CreatedAt: time.Now(),
	}
	if stripeCustomerID != "" {
		userDB.StripeCustomerID = &stripeCustomerID
	}

	var inserted bool
	err := s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(userDB).
			On("CONFLICT (email) DO UPDATE").
			Set("stripe_customer_id = EXCLUDED.stripe_customer_id").
			Returning("id").
			Exec(ctx)
		if err != nil {
			return err
		}

		membershipDB := &models.MembershipDB{
			UserID:          userDB.ID,
			StripeSessionID: sessionID,
			Plan:            plan,
			StartedAt:       time.Now(),
		}
		res, err := tx.NewInsert().
			Model(membershipDB).
			On("CONFLICT (stripe_session_id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return err
		}

		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		inserted = n > 0
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CommitResult{User: userDB.ToUser(), Inserted: inserted}, nil
}
