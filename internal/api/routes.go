package api

import (
	"github.com/gorilla/mux"
)

// SetupRoutes wires the HTTP surface. The webhook route authenticates via the
// Stripe signature and the health route is open, so only the notify relay sits
// behind the bearer middleware.
func SetupRoutes(webhookHandler *WebhookHandler, checkoutHandler *CheckoutHandler, notifyHandler *NotifyHandler, notifyToken string) *mux.Router {
	r := mux.NewRouter()

	r.Use(LoggingMiddleware)
	r.Use(RecoveryMiddleware)

	r.HandleFunc("/health", HealthHandler).Methods("GET")
	r.HandleFunc("/api/v1/stripe/webhook", webhookHandler.HandleStripeWebhook).Methods("POST")
	r.HandleFunc("/api/v1/checkout", checkoutHandler.CreateCheckoutSession).Methods("POST")

	notifyRoute := r.PathPrefix("/api/v1/notify").Subrouter()
	notifyRoute.Use(BearerAuthMiddleware(notifyToken))
	notifyRoute.HandleFunc("", notifyHandler.HandleNotify).Methods("POST")

	return r
}
