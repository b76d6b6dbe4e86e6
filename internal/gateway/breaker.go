package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bid-engine/internal/biddingerrors"
	"bid-engine/utils"

	"github.com/sony/gobreaker"
)

// BreakerSettings tunes when the gateway circuit opens
type BreakerSettings struct {
	MaxFailures uint32        // consecutive failures that open the circuit
	OpenTimeout time.Duration // how long the circuit stays open before probing
}

// DefaultBreakerSettings suits a remote payment API
var DefaultBreakerSettings = BreakerSettings{MaxFailures: 5, OpenTimeout: 30 * time.Second}

// BreakerGateway fails intent calls fast while the wrapped gateway keeps failing.
// Webhook parsing is local and bypasses the breaker.
type BreakerGateway struct {
	next Gateway
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerGateway wraps next with a circuit breaker named name
func NewBreakerGateway(next Gateway, name string, s BreakerSettings) *BreakerGateway {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.MaxFailures
		},
		// a caller giving up is not the gateway's fault
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			utils.Warn("payment gateway circuit changed state", map[string]any{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
	})
	return &BreakerGateway{next: next, cb: cb}
}

func (b *BreakerGateway) CreateIntent(ctx context.Context, p CreateIntentParams) (Intent, error) {
	return b.call(func() (Intent, error) { return b.next.CreateIntent(ctx, p) })
}

func (b *BreakerGateway) RetrieveIntent(ctx context.Context, intentID string) (Intent, error) {
	return b.call(func() (Intent, error) { return b.next.RetrieveIntent(ctx, intentID) })
}

func (b *BreakerGateway) ParseWebhook(payload []byte, signature string) (Event, error) {
	return b.next.ParseWebhook(payload, signature)
}

func (b *BreakerGateway) call(fn func() (Intent, error)) (Intent, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return Intent{}, fmt.Errorf("%w: %v", biddingerrors.ErrGateway, err)
	}
	if err != nil {
		return Intent{}, err
	}
	return res.(Intent), nil
}
