// Package notification delivers best-effort emails about bid and payment events.
// Delivery failures are logged and never reach the caller.
package notification

//go:generate mockgen -source=notification.go -destination=mock_notification.go -package=notification

import "context"

// Kind selects the message template
type Kind string

const (
	KindBidReceived      Kind = "bid_received"
	KindBidAccepted      Kind = "bid_accepted"
	KindBidRejected      Kind = "bid_rejected"
	KindBookingConfirmed Kind = "booking_confirmed"
	KindPayoutSent       Kind = "payout_sent"
)

// Notifier is fire-and-forget: Send must not block on delivery and has no error result
type Notifier interface {
	Send(ctx context.Context, kind Kind, recipient string, vars map[string]string)
}

// Message is a rendered email
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender performs the actual delivery of a rendered message
type Sender interface {
	Deliver(msg Message) error
}
