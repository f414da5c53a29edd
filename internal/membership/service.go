package membership

import (
	"context"
	"fmt"

	"github.com/memberhub/backend/internal/logger"
	"github.com/memberhub/backend/internal/notify"
)

// DefaultPlan is used when a completed session carries no plan in its
// metadata. Sessions created by this service are tagged with it.
const DefaultPlan = "premium"

// CompletedCheckout carries the fields of a checkout.session.completed event
// the committer cares about.
type CompletedCheckout struct {
	SessionID        string
	StripeCustomerID string
	CustomerEmail    string
	Metadata         map[string]string
}

// Email resolves the buyer email: customer_details first, metadata fallback.
func (c CompletedCheckout) Email() string {
	if c.CustomerEmail != "" {
		return c.CustomerEmail
	}
	return c.Metadata["email"]
}

func (c CompletedCheckout) Plan() string {
	if plan := c.Metadata["plan"]; plan != "" {
		return plan
	}
	return DefaultPlan
}

type Service struct {
	store    Store
	notifier notify.Notifier
}

func NewService(store Store, notifier notify.Notifier) *Service {
	return &Service{store: store, notifier: notifier}
}

// HandleCheckoutCompleted commits the membership state for a completed
// checkout. An event without a resolvable email is skipped, not failed: the
// provider should not redeliver something we intentionally ignore. The chat
// notification happens after the commit and never affects its outcome.
func (s *Service) HandleCheckoutCompleted(ctx context.Context, checkout CompletedCheckout) error {
	email := checkout.Email()
	if email == "" {
		logger.Log.Info("skipping checkout session without email",
			"session_id", checkout.SessionID)
		return nil
	}
	plan := checkout.Plan()

	result, err := s.store.CommitCheckout(ctx, email, checkout.StripeCustomerID, checkout.SessionID, plan)
	if err != nil {
		return fmt.Errorf("failed to commit checkout %s: %w", checkout.SessionID, err)
	}

	if !result.Inserted {
		logger.Log.Info("checkout session already recorded",
			"session_id", checkout.SessionID, "email", email)
		return nil
	}

	logger.Log.Info("membership recorded",
		"email", email, "plan", plan, "session_id", checkout.SessionID)

	message := fmt.Sprintf("New membership: %s (%s) session %s", email, plan, checkout.SessionID)
	if err := s.notifier.Send(ctx, message); err != nil {
		logger.Log.Error("membership notification failed",
			"session_id", checkout.SessionID, "err", err)
	}
	return nil
}
