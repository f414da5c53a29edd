package services

import (
	"context"

	"github.com/stripe/stripe-go/v84"
)

type BillingService interface {
	CreateCheckoutSession(ctx context.Context, priceID, email, successURL, cancelURL string) (*stripe.CheckoutSession, error)
	VerifyWebhookSignature(payload []byte, signature string) (*stripe.Event, error)
}
