package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stripe/stripe-go/v76"
)

func newTestGateway(t *testing.T, h http.HandlerFunc) *StripeGateway {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return NewStripeGateway("sk_test_123", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
}

func TestCreateIntent_SendsAmountCurrencyAndMethod(t *testing.T) {
	var calls int
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Method != http.MethodPost || r.URL.Path != "/v1/payment_intents" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.PostForm.Get("amount"); got != "1000" {
			t.Errorf("amount: got %q, want 1000", got)
		}
		if got := r.PostForm.Get("currency"); got != "usd" {
			t.Errorf("currency: got %q, want usd", got)
		}
		if got := r.PostForm.Get("payment_method_types[0]"); got != "card" {
			t.Errorf("payment method: got %q, want card", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","amount":1000,"currency":"usd","client_secret":"pi_123_secret_abc"}`))
	})

	secret, err := g.CreateIntent(context.Background(), 1000, "usd")
	if err != nil {
		t.Fatalf("CreateIntent: %v", err)
	}
	if secret != "pi_123_secret_abc" {
		t.Errorf("client secret: got %q", secret)
	}
	if calls != 1 {
		t.Errorf("expected exactly one request, got %d", calls)
	}
}

func TestCreateIntent_GatewayError(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Amount must be at least 50 cents"}}`))
	})

	if _, err := g.CreateIntent(context.Background(), 10, "usd"); err == nil {
		t.Fatal("expected error from gateway")
	}
}
