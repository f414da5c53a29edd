package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		DatabaseURL:         "postgres://localhost/memberhub",
		StripeSecretKey:     "sk_test_123",
		StripeWebhookSecret: "whsec_123",
		NotifyBearerToken:   "relay-secret",
	}
}

func TestValidate_AllRequiredPresent(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_MissingRequiredSecrets(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"DATABASE_URL", func(c *Config) { c.DatabaseURL = "" }},
		{"STRIPE_SECRET_KEY", func(c *Config) { c.StripeSecretKey = "" }},
		{"STRIPE_WEBHOOK_SECRET", func(c *Config) { c.StripeWebhookSecret = "" }},
		{"NOTIFY_BEARER_TOKEN", func(c *Config) { c.NotifyBearerToken = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.name)
		})
	}
}

func TestValidate_ChatWebhookURLOptional(t *testing.T) {
	cfg := validConfig()
	cfg.ChatWebhookURL = ""
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("PORT", "")
	cfg := Load()
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.NotEmpty(t, cfg.DatabaseURL)
	assert.NotEmpty(t, cfg.CheckoutSuccessURL)
	assert.NotEmpty(t, cfg.CheckoutCancelURL)
}

func TestLoad_PortFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("PORT", "9090")
	cfg := Load()
	assert.Equal(t, ":9090", cfg.ServerAddr)
}
