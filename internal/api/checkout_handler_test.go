package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v84"
)

func postCheckout(handler *CheckoutHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader([]byte(body)))
	rec := httptest.NewRecorder()
	handler.CreateCheckoutSession(rec, req)
	return rec
}

func TestCreateCheckoutSession_ReturnsRedirectURL(t *testing.T) {
	billing := &fakeBilling{session: &stripe.CheckoutSession{
		ID:  "cs_test_1",
		URL: "https://checkout.stripe.com/pay/cs_test_1",
	}}
	handler := NewCheckoutHandler(billing)

	rec := postCheckout(handler, `{"priceId":"price_1","email":"a@b.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp CreateCheckoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_1", resp.URL)
	assert.Equal(t, "cs_test_1", resp.SessionID)
}

func TestCreateCheckoutSession_MissingPriceID(t *testing.T) {
	handler := NewCheckoutHandler(&fakeBilling{})

	rec := postCheckout(handler, `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCheckoutSession_InvalidBody(t *testing.T) {
	handler := NewCheckoutHandler(&fakeBilling{})

	rec := postCheckout(handler, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCheckoutSession_ProviderFailure(t *testing.T) {
	billing := &fakeBilling{checkoutErr: errors.New("no such price: price_1")}
	handler := NewCheckoutHandler(billing)

	rec := postCheckout(handler, `{"priceId":"price_1"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "no such price")
}
