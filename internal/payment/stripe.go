// Package payment adapts the Stripe API to the service.PaymentGateway contract.
package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// MethodCard is the only payment method family intents are created for
const MethodCard = "card"

// StripeGateway creates card payment intents
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway builds a gateway for secretKey. backends may be nil to
// use Stripe's endpoints; network retries are disabled either way so a
// failed call is never replayed.
func NewStripeGateway(secretKey string, backends *stripe.Backends) *StripeGateway {
	if backends == nil {
		cfg := &stripe.BackendConfig{
			MaxNetworkRetries: stripe.Int64(0),
			LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
		}
		backends = &stripe.Backends{
			API:     stripe.GetBackendWithConfig(stripe.APIBackend, cfg),
			Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, cfg),
			Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, cfg),
		}
	}
	return &StripeGateway{api: client.New(secretKey, backends)}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{MethodCard}),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: %w", err)
	}
	return pi.ClientSecret, nil
}
