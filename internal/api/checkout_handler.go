package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/memberhub/backend/internal/services"
)

type CheckoutHandler struct {
	billing services.BillingService
}

func NewCheckoutHandler(billing services.BillingService) *CheckoutHandler {
	return &CheckoutHandler{billing: billing}
}

type CreateCheckoutRequest struct {
	PriceID    string `json:"priceId"`
	Email      string `json:"email"`
	SuccessURL string `json:"successUrl"`
	CancelURL  string `json:"cancelUrl"`
}

type CreateCheckoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
}

func (h *CheckoutHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req CreateCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.PriceID == "" {
		http.Error(w, "priceId is required", http.StatusBadRequest)
		return
	}

	session, err := h.billing.CreateCheckoutSession(r.Context(), req.PriceID, req.Email, req.SuccessURL, req.CancelURL)
	if err != nil {
		log.Printf("Failed to create checkout session: %v", err)
		http.Error(w, "Failed to create checkout session: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, CreateCheckoutResponse{
		URL:       session.URL,
		SessionID: session.ID,
	})
}
