package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/memberhub/backend/internal/membership"
	"github.com/memberhub/backend/internal/services"
	"github.com/stripe/stripe-go/v84"
)

type MembershipService interface {
	HandleCheckoutCompleted(ctx context.Context, checkout membership.CompletedCheckout) error
}

type WebhookHandler struct {
	billing    services.BillingService
	membership MembershipService
}

func NewWebhookHandler(billing services.BillingService, membershipSvc MembershipService) *WebhookHandler {
	return &WebhookHandler{billing: billing, membership: membershipSvc}
}

// HandleStripeWebhook verifies the event signature against the raw request
// bytes and routes checkout.session.completed into the committer. Every other
// event type is acknowledged without side effects; Stripe treats any non-error
// status as delivered. A processing failure returns 500 so Stripe redelivers.
func (h *WebhookHandler) HandleStripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Failed to read webhook body: %v", err)
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	signature := r.Header.Get("Stripe-Signature")
	event, err := h.billing.VerifyWebhookSignature(payload, signature)
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		http.Error(w, "Invalid signature", http.StatusBadRequest)
		return
	}

	var handleErr error
	switch event.Type {
	case "checkout.session.completed":
		handleErr = h.handleCheckoutCompleted(r.Context(), event)
	}

	if handleErr != nil {
		log.Printf("Webhook %s handling failed: %v", event.Type, handleErr)
		http.Error(w, "Webhook handling failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *WebhookHandler) handleCheckoutCompleted(ctx context.Context, event *stripe.Event) error {
	session, err := parseEventData[checkoutSession](event)
	if err != nil {
		return fmt.Errorf("failed to parse checkout session: %w", err)
	}

	checkout := membership.CompletedCheckout{
		SessionID:        session.ID,
		StripeCustomerID: session.Customer,
		Metadata:         session.Metadata,
	}
	if session.CustomerDetails != nil {
		checkout.CustomerEmail = session.CustomerDetails.Email
	}

	return h.membership.HandleCheckoutCompleted(ctx, checkout)
}

func parseEventData[T any](event *stripe.Event) (*T, error) {
	var data T
	if err := json.Unmarshal(event.Data.Raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

type checkoutSession struct {
	ID              string            `json:"id"`
	Customer        string            `json:"customer"`
	CustomerDetails *customerDetails  `json:"customer_details"`
	Metadata        map[string]string `json:"metadata"`
}

type customerDetails struct {
	Email string `json:"email"`
}
