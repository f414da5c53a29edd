package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/memberhub/backend/internal/api"
	"github.com/memberhub/backend/internal/billing"
	"github.com/memberhub/backend/internal/config"
	"github.com/memberhub/backend/internal/db"
	"github.com/memberhub/backend/internal/membership"
	"github.com/memberhub/backend/internal/notify"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	bunDB := db.NewBunPostgresClient(cfg.DatabaseURL)
	defer bunDB.Close()

	store := membership.NewMembershipStore(bunDB)

	// The schema must exist before any route is reachable.
	if err := store.InitializeDatabase(context.Background()); err != nil {
		log.Fatalf("Failed to initialize database schema: %v", err)
	}

	billingSvc := billing.NewBilling(cfg.StripeSecretKey, cfg.StripeWebhookSecret, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL)
	notifier := notify.NewChatNotifier(cfg.ChatWebhookURL)
	membershipSvc := membership.NewService(store, notifier)

	webhookHandler := api.NewWebhookHandler(billingSvc, membershipSvc)
	checkoutHandler := api.NewCheckoutHandler(billingSvc)
	notifyHandler := api.NewNotifyHandler(notifier)

	router := api.SetupRoutes(webhookHandler, checkoutHandler, notifyHandler, cfg.NotifyBearerToken)

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Server starting on %s", cfg.ServerAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed to start: %v", err)
	}

	log.Println("Server stopped")
}
