package billing

import (
	"context"
	"fmt"

	"github.com/memberhub/backend/internal/membership"
	"github.com/stripe/stripe-go/v84"
	"github.com/stripe/stripe-go/v84/webhook"
)

type Billing struct {
	sc                *stripe.Client
	webhookSecret     string
	defaultSuccessURL string
	defaultCancelURL  string
}

func NewBilling(secretKey, webhookSecret, defaultSuccessURL, defaultCancelURL string) *Billing {
	return &Billing{
		sc:                stripe.NewClient(secretKey),
		webhookSecret:     webhookSecret,
		defaultSuccessURL: defaultSuccessURL,
		defaultCancelURL:  defaultCancelURL,
	}
}

// CreateCheckoutSession asks Stripe for a new hosted checkout. The session
// metadata is tagged with the plan so the completed-event handler can recover
// it without an extra lookup.
func (b *Billing) CreateCheckoutSession(ctx context.Context, priceID, email, successURL, cancelURL string) (*stripe.CheckoutSession, error) {
	if successURL == "" {
		successURL = b.defaultSuccessURL
	}
	if cancelURL == "" {
		cancelURL = b.defaultCancelURL
	}

	params := &stripe.CheckoutSessionCreateParams{
		PaymentMethodTypes: []*string{stripe.String("card")},
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
		Metadata: map[string]string{
			"plan": membership.DefaultPlan,
		},
	}
	if email != "" {
		params.CustomerEmail = stripe.String(email)
	}
	return b.sc.V1CheckoutSessions.Create(ctx, params)
}

func (b *Billing) VerifyWebhookSignature(payload []byte, signature string) (*stripe.Event, error) {
	event, err := webhook.ConstructEvent(payload, signature, b.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("webhook signature verification failed: %w", err)
	}
	return &event, nil
}
