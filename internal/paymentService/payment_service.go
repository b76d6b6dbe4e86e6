package payment

import (
	"bid-engine/internal/availability"
	"bid-engine/internal/biddingerrors"
	"bid-engine/internal/commission"
	"bid-engine/internal/gateway"
	"bid-engine/internal/metrics"
	"bid-engine/internal/models"
	"bid-engine/internal/notification"
	"bid-engine/internal/repository"
	"bid-engine/internal/syncutil"
	"bid-engine/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BidRejecter flips an accepted bid to REJECTED when checkout finds no capacity
type BidRejecter interface {
	RejectOverbooked(ctx context.Context, bid models.Bid, day time.Time) (models.Bid, error)
}

// PaymentService owns the payment attached to an accepted bid: checkout, gateway
// webhooks and client polling all converge on the same status transitions.
type PaymentService struct {
	repo     repository.BookingDB
	bids     BidRejecter
	checker  *availability.Checker
	gateway  gateway.Gateway
	notifier notification.Notifier
	currency string
	rate     decimal.Decimal
	locks    *syncutil.KeyedMutex
	now      func() time.Time
}

// NewPaymentService creates a new PaymentService instance
func NewPaymentService(
	repo repository.BookingDB,
	bids BidRejecter,
	checker *availability.Checker,
	gw gateway.Gateway,
	notifier notification.Notifier,
	currency string,
) *PaymentService {
	return &PaymentService{
		repo:     repo,
		bids:     bids,
		checker:  checker,
		gateway:  gw,
		notifier: notifier,
		currency: currency,
		rate:     commission.PlatformRate,
		locks:    syncutil.NewKeyedMutex(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateIntent starts checkout for an accepted bid. Inventory is re-checked against
// every other claimed bid first; if a night is already taken the bid is rejected and
// an *biddingerrors.OverbookedError is returned. An in-flight payment is returned as is.
func (s *PaymentService) CreateIntent(ctx context.Context, bidID string, requester models.Actor) (models.Payment, error) {
	bid, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}
	if bid.BidderID != requester.ID {
		return models.Payment{}, fmt.Errorf("service: %w", biddingerrors.ErrNotBidOwner)
	}
	if bid.Status != models.BidAccepted {
		return models.Payment{}, fmt.Errorf("service: %w - bid %s is %s", biddingerrors.ErrBidNotAccepted, bidID, bid.Status)
	}

	listing, err := s.repo.GetListing(ctx, bid.ListingID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to load listing %s: %w", bid.ListingID, err)
	}

	// checkouts on one listing are serialized so the re-check and the claim are atomic
	unlock, err := s.locks.Lock(ctx, listing.ListingID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: waiting for checkout lock on listing %s: %w", listing.ListingID, err)
	}
	defer unlock()

	bid, err = s.repo.GetBid(ctx, bidID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}
	if bid.Status != models.BidAccepted {
		return models.Payment{}, fmt.Errorf("service: %w - bid %s is %s", biddingerrors.ErrBidNotAccepted, bidID, bid.Status)
	}

	res, err := s.checker.Check(ctx, listing.ListingID, listing.MaxInventory, bid.CheckInDate, bid.CheckOutDate, bid.BidID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: %w", err)
	}
	if res.IsOverbooked {
		day := *res.OverbookedDate
		if _, err := s.bids.RejectOverbooked(ctx, bid, day); err != nil {
			return models.Payment{}, err
		}
		return models.Payment{}, fmt.Errorf("service: %w", &biddingerrors.OverbookedError{Date: day})
	}

	existing, err := s.repo.GetPaymentByBid(ctx, bidID)
	switch {
	case err == nil && existing.Status.IsInFlight():
		return existing, nil
	case err == nil && existing.Status.IsSettled():
		return models.Payment{}, fmt.Errorf("service: %w - payment %s is %s", biddingerrors.ErrAlreadyPaid, existing.PaymentID, existing.Status)
	case err != nil && !errors.Is(err, biddingerrors.ErrNotFound):
		return models.Payment{}, fmt.Errorf("service: failed to load payment for bid %s: %w", bidID, err)
	}

	intent, err := s.gateway.CreateIntent(ctx, gateway.CreateIntentParams{
		AmountMinor: MinorUnits(bid.TotalAmount),
		Currency:    s.currency,
		Metadata: map[string]string{
			"bid_id":     bid.BidID,
			"listing_id": bid.ListingID,
			"bidder_id":  bid.BidderID,
		},
	})
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: %w - create intent for bid %s: %w", biddingerrors.ErrGateway, bidID, err)
	}

	now := s.now()
	payment, err := s.repo.UpsertPaymentIntent(ctx, models.Payment{
		PaymentID:    utils.GenerateID(),
		BidID:        bid.BidID,
		Amount:       bid.TotalAmount,
		Currency:     s.currency,
		Status:       models.PaymentPending,
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to store payment for bid %s: %w", bidID, err)
	}
	if payment.IntentID != intent.ID {
		// another checkout stored its intent first; ours is never handed to the buyer
		utils.Warn("checkout found a live payment, discarding new intent", map[string]any{
			"bid_id":     bid.BidID,
			"payment_id": payment.PaymentID,
			"intent_id":  intent.ID,
			"status":     payment.Status,
		})
		if payment.Status.IsSettled() {
			return models.Payment{}, fmt.Errorf("service: %w - payment %s is %s", biddingerrors.ErrAlreadyPaid, payment.PaymentID, payment.Status)
		}
		return payment, nil
	}
	metrics.PaymentTransitionsTotal.WithLabelValues(string(models.PaymentPending)).Inc()

	utils.Info("payment intent created", map[string]any{
		"bid_id":     bid.BidID,
		"payment_id": payment.PaymentID,
		"intent_id":  payment.IntentID,
		"amount":     payment.Amount.StringFixed(2),
	})
	return payment, nil
}

// IngestWebhook applies a verified gateway event. Unknown event kinds and redelivered
// events are acknowledged without effect. Events for unknown intents return NotFound.
func (s *PaymentService) IngestWebhook(ctx context.Context, evt gateway.Event) error {
	t, ok := transitionForEvent(evt, s.now())
	if !ok {
		metrics.WebhookEventsTotal.WithLabelValues("ignored").Inc()
		return nil
	}

	if evt.ID != "" {
		first, err := s.repo.RecordWebhookEvent(ctx, evt.ID)
		if err != nil {
			return fmt.Errorf("service: failed to record webhook event %s: %w", evt.ID, err)
		}
		if !first {
			metrics.WebhookEventsTotal.WithLabelValues("duplicate").Inc()
			return nil
		}
	}

	if err := s.ingest(ctx, evt, t); err != nil {
		if evt.ID != "" && !errors.Is(err, biddingerrors.ErrNotFound) {
			// let the gateway's redelivery be processed
			if ferr := s.repo.ForgetWebhookEvent(ctx, evt.ID); ferr != nil {
				utils.Error("failed to forget webhook event", map[string]any{"event_id": evt.ID, "error": ferr.Error()})
			}
		}
		metrics.WebhookEventsTotal.WithLabelValues("failed").Inc()
		return err
	}

	metrics.WebhookEventsTotal.WithLabelValues("processed").Inc()
	return nil
}

func (s *PaymentService) ingest(ctx context.Context, evt gateway.Event, t models.PaymentTransition) error {
	payment, err := s.repo.GetPaymentByIntent(ctx, evt.IntentID)
	if err != nil {
		return fmt.Errorf("service: webhook %s for intent %s: %w", evt.Type, evt.IntentID, err)
	}
	if _, err := s.apply(ctx, payment, t); err != nil {
		return err
	}
	return nil
}

// ConfirmStatus polls the gateway for the payment's intent and applies whatever it reports
func (s *PaymentService) ConfirmStatus(ctx context.Context, paymentID string, requester models.Actor) (models.Payment, error) {
	payment, err := s.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to get payment %s: %w", paymentID, err)
	}
	bid, err := s.repo.GetBid(ctx, payment.BidID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to get bid %s: %w", payment.BidID, err)
	}
	if bid.BidderID != requester.ID && requester.Role != models.RoleAdmin {
		return models.Payment{}, fmt.Errorf("service: %w", biddingerrors.ErrNotBidOwner)
	}

	intent, err := s.gateway.RetrieveIntent(ctx, payment.IntentID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: %w - retrieve intent %s: %w", biddingerrors.ErrGateway, payment.IntentID, err)
	}

	t, ok := transitionForIntent(intent.Status, s.now())
	if !ok {
		return payment, nil
	}
	return s.apply(ctx, payment, t)
}

// GetPaymentForBid returns the payment of a bid to its bidder or the listing's operators
func (s *PaymentService) GetPaymentForBid(ctx context.Context, bidID string, actor models.Actor) (models.Payment, error) {
	bid, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}
	if bid.BidderID != actor.ID {
		listing, err := s.repo.GetListing(ctx, bid.ListingID)
		if err != nil {
			return models.Payment{}, fmt.Errorf("service: failed to load listing %s: %w", bid.ListingID, err)
		}
		if !actor.IsOperator(listing) {
			return models.Payment{}, fmt.Errorf("service: %w", biddingerrors.ErrNotBidOwner)
		}
	}

	payment, err := s.repo.GetPaymentByBid(ctx, bidID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to get payment for bid %s: %w", bidID, err)
	}
	return payment, nil
}

// apply stores a transition and, when it lands on CAPTURED, settles the bid. Webhook and
// poll may both get here for the same capture; whichever stamps the commission sends the
// confirmations, so a capture whose stamp failed is confirmed on redelivery.
func (s *PaymentService) apply(ctx context.Context, payment models.Payment, t models.PaymentTransition) (models.Payment, error) {
	prev, updated, err := s.repo.TransitionPayment(ctx, payment.PaymentID, t)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to move payment %s to %s: %w", payment.PaymentID, t.Status, err)
	}
	if prev != updated.Status {
		metrics.PaymentTransitionsTotal.WithLabelValues(string(updated.Status)).Inc()
	}
	if updated.Status != models.PaymentCaptured {
		return updated, nil
	}

	bid, err := s.repo.GetBid(ctx, updated.BidID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to get bid %s: %w", updated.BidID, err)
	}
	split := commission.Calculate(bid.TotalAmount, s.rate)
	stamped, err := s.repo.StampBidCommission(ctx, bid.BidID, split.Commission, split.Payable)
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to store commission for bid %s: %w", bid.BidID, err)
	}

	if stamped {
		s.notifyCaptured(ctx, bid, updated)
	}
	return updated, nil
}

func (s *PaymentService) notifyCaptured(ctx context.Context, bid models.Bid, p models.Payment) {
	listing, err := s.repo.GetListing(ctx, bid.ListingID)
	if err != nil {
		utils.Warn("captured payment for unknown listing", map[string]any{"bid_id": bid.BidID, "error": err.Error()})
		listing = models.Listing{ListingID: bid.ListingID}
	}

	vars := map[string]string{
		"listing_title": listing.Title,
		"bid_id":        bid.BidID,
		"check_in":      bid.CheckInDate.Format(models.DateLayout),
		"check_out":     bid.CheckOutDate.Format(models.DateLayout),
		"amount":        p.Amount.StringFixed(2),
		"currency":      p.Currency,
	}
	s.notifier.Send(ctx, notification.KindBookingConfirmed, bid.BidderEmail, vars)
	s.notifier.Send(ctx, notification.KindBookingConfirmed, listing.OwnerEmail, vars)
}

// MinorUnits converts a major-unit amount to the gateway's integer minor units
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func transitionForEvent(evt gateway.Event, at time.Time) (models.PaymentTransition, bool) {
	switch evt.Type {
	case gateway.EventPaymentSucceeded:
		return models.PaymentTransition{Status: models.PaymentCaptured, At: at}, true
	case gateway.EventPaymentFailed:
		return models.PaymentTransition{Status: models.PaymentFailed, At: at, FailureReason: evt.FailureMessage}, true
	case gateway.EventPaymentCanceled:
		return models.PaymentTransition{Status: models.PaymentCancelled, At: at}, true
	}
	return models.PaymentTransition{}, false
}

// transitionForIntent maps a polled intent status; statuses still moving on the
// gateway side (processing, requires_confirmation) leave the payment untouched
func transitionForIntent(status gateway.IntentStatus, at time.Time) (models.PaymentTransition, bool) {
	switch status {
	case gateway.IntentSucceeded:
		return models.PaymentTransition{Status: models.PaymentCaptured, At: at}, true
	case gateway.IntentRequiresCapture:
		return models.PaymentTransition{Status: models.PaymentAuthorized, At: at}, true
	case gateway.IntentRequiresAction:
		return models.PaymentTransition{Status: models.PaymentRequiresAction, At: at}, true
	case gateway.IntentRequiresPaymentMethod:
		return models.PaymentTransition{Status: models.PaymentFailed, At: at, FailureReason: "payment method required"}, true
	case gateway.IntentCanceled:
		return models.PaymentTransition{Status: models.PaymentCancelled, At: at}, true
	}
	return models.PaymentTransition{}, false
}
