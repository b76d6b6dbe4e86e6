// Package gateway is the payment gateway contract the reconciliation engine
// talks to, with a Stripe implementation.
package gateway

//go:generate mockgen -source=gateway.go -destination=mock_gateway.go -package=gateway

import "context"

// IntentStatus is the gateway's own status of a payment intent
type IntentStatus string

const (
	IntentSucceeded             IntentStatus = "succeeded"
	IntentRequiresAction        IntentStatus = "requires_action"
	IntentRequiresPaymentMethod IntentStatus = "requires_payment_method"
	IntentRequiresConfirmation  IntentStatus = "requires_confirmation"
	IntentRequiresCapture       IntentStatus = "requires_capture"
	IntentProcessing            IntentStatus = "processing"
	IntentCanceled              IntentStatus = "canceled"
)

// EventType is the kind of an inbound webhook event
type EventType string

const (
	EventPaymentSucceeded EventType = "payment_intent.succeeded"
	EventPaymentFailed    EventType = "payment_intent.payment_failed"
	EventPaymentCanceled  EventType = "payment_intent.canceled"
)

// Intent is a gateway payment intent
type Intent struct {
	ID           string
	ClientSecret string
	Status       IntentStatus
}

// CreateIntentParams describes a charge. AmountMinor is in minor currency units (cents).
type CreateIntentParams struct {
	AmountMinor int64
	Currency    string
	Metadata    map[string]string
}

// Event is a verified webhook event reduced to what reconciliation needs
type Event struct {
	ID             string
	Type           EventType
	IntentID       string
	FailureMessage string
}

// Gateway creates and inspects payment intents and verifies webhook payloads.
// Capture is always automatic.
type Gateway interface {
	CreateIntent(ctx context.Context, params CreateIntentParams) (Intent, error)
	RetrieveIntent(ctx context.Context, intentID string) (Intent, error)
	ParseWebhook(payload []byte, signature string) (Event, error)
}
