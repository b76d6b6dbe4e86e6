package gateway

import (
	"bid-engine/internal/biddingerrors"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"
)

// StripeGateway implements Gateway with the Stripe API. Network retries are left
// to the stripe-go backend.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

// NewStripeGateway creates a Stripe-backed gateway
func NewStripeGateway(secretKey, webhookSecret string) *StripeGateway {
	return NewStripeGatewayWithBackends(secretKey, webhookSecret, nil)
}

// NewStripeGatewayWithBackends lets tests point the client at a fake Stripe server
func NewStripeGatewayWithBackends(secretKey, webhookSecret string, backends *stripe.Backends) *StripeGateway {
	return &StripeGateway{
		api:           client.New(secretKey, backends),
		webhookSecret: webhookSecret,
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, p CreateIntentParams) (Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(p.AmountMinor),
		Currency:      stripe.String(strings.ToLower(p.Currency)),
		CaptureMethod: stripe.String(string(stripe.PaymentIntentCaptureMethodAutomatic)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return Intent{}, fmt.Errorf("%w: create payment intent: %v", biddingerrors.ErrGateway, err)
	}
	return toIntent(pi), nil
}

func (g *StripeGateway) RetrieveIntent(ctx context.Context, intentID string) (Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.Get(intentID, params)
	if err != nil {
		return Intent{}, fmt.Errorf("%w: retrieve payment intent %s: %v", biddingerrors.ErrGateway, intentID, err)
	}
	return toIntent(pi), nil
}

// ParseWebhook verifies the Stripe-Signature header and decodes payment intent events.
// Events of other kinds come back with an empty IntentID.
func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (Event, error) {
	evt, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return Event{}, fmt.Errorf("%w: %v", biddingerrors.ErrInvalidSignature, err)
	}

	out := Event{ID: evt.ID, Type: EventType(evt.Type)}
	if evt.Data == nil || !strings.HasPrefix(string(evt.Type), "payment_intent.") {
		return out, nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(evt.Data.Raw, &pi); err != nil {
		return Event{}, fmt.Errorf("decode payment intent of event %s: %v: %w", evt.ID, err, biddingerrors.ErrValidation)
	}
	out.IntentID = pi.ID
	if pi.LastPaymentError != nil {
		out.FailureMessage = pi.LastPaymentError.Msg
	}
	return out, nil
}

func toIntent(pi *stripe.PaymentIntent) Intent {
	return Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       IntentStatus(pi.Status),
	}
}
