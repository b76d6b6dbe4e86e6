package repository

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

import (
	"bid-engine/internal/biddingerrors"
	model "bid-engine/internal/models"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// BookingDB defines the storage contract for listings, bids and payments
type BookingDB interface {
	GetListing(ctx context.Context, listingID string) (model.Listing, error)

	CreateBid(ctx context.Context, bid model.Bid) error
	GetBid(ctx context.Context, bidID string) (model.Bid, error)
	ListBidsByListing(ctx context.Context, listingID string) ([]model.Bid, error)
	ListBidsByBidder(ctx context.Context, bidderID string) ([]model.Bid, error)
	CountClaimedBidsOnDay(ctx context.Context, listingID string, day time.Time, excludeBidID string) (int, error)
	CompareAndSetBidStatus(ctx context.Context, bidID string, from, to model.BidStatus, reason string) (model.Bid, error)
	StampBidCommission(ctx context.Context, bidID string, commission, payable decimal.Decimal) (stamped bool, err error)
	UpdatePayout(ctx context.Context, bidID string, upd model.PayoutUpdate, now time.Time) (before, after model.Bid, err error)

	GetPayment(ctx context.Context, paymentID string) (model.Payment, error)
	GetPaymentByBid(ctx context.Context, bidID string) (model.Payment, error)
	GetPaymentByIntent(ctx context.Context, intentID string) (model.Payment, error)
	UpsertPaymentIntent(ctx context.Context, p model.Payment) (model.Payment, error)
	TransitionPayment(ctx context.Context, paymentID string, t model.PaymentTransition) (prev model.PaymentStatus, p model.Payment, err error)

	RecordWebhookEvent(ctx context.Context, eventID string) (firstSeen bool, err error)
	ForgetWebhookEvent(ctx context.Context, eventID string) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of BookingDB
type MemoryRepo struct {
	mu              sync.RWMutex
	listings        map[string]model.Listing // key: listingID
	bids            map[string]model.Bid     // key: bidID
	payments        map[string]model.Payment // key: paymentID
	paymentByBid    map[string]string        // key: bidID -> paymentID
	paymentByIntent map[string]string        // key: gateway intent id -> paymentID
	events          map[string]struct{}      // processed gateway event ids
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		listings:        make(map[string]model.Listing),
		bids:            make(map[string]model.Bid),
		payments:        make(map[string]model.Payment),
		paymentByBid:    make(map[string]string),
		paymentByIntent: make(map[string]string),
		events:          make(map[string]struct{}),
	}
}

// AddListing adds a listing to the repository. Listings are owned by an external
// catalogue; this is used for seeding and tests.
func (r *MemoryRepo) AddListing(listing model.Listing) {
	r.mu.Lock()
	defer r.mu.Unlock()
	listing.BlackoutDates = append([]time.Time(nil), listing.BlackoutDates...)
	r.listings[listing.ListingID] = listing
}

// GetListing returns a listing by id
func (r *MemoryRepo) GetListing(ctx context.Context, listingID string) (model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.listings[listingID]
	if !ok {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, biddingerrors.ErrListingNotFound)
	}
	l.BlackoutDates = append([]time.Time(nil), l.BlackoutDates...)
	return l, nil
}

// CreateBid stores a new bid unless the bidder already holds a PENDING bid on the
// listing whose dates touch the new range, boundaries included
func (r *MemoryRepo) CreateBid(ctx context.Context, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[bid.ListingID]; !ok {
		return fmt.Errorf("create bid for listing %s: %w", bid.ListingID, biddingerrors.ErrListingNotFound)
	}
	if _, exists := r.bids[bid.BidID]; exists {
		return fmt.Errorf("create bid %s: %w", bid.BidID, biddingerrors.ErrConflict)
	}
	for _, b := range r.bids {
		if overlapsPending(b, bid) {
			return fmt.Errorf("create bid on listing %s by %s: %w", bid.ListingID, bid.BidderID, biddingerrors.ErrDuplicatePendingBid)
		}
	}
	r.bids[bid.BidID] = bid
	return nil
}

// GetBid returns a bid by id
func (r *MemoryRepo) GetBid(ctx context.Context, bidID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, biddingerrors.ErrBidNotFound)
	}
	return b, nil
}

// ListBidsByListing returns all bids on a listing, oldest first
func (r *MemoryRepo) ListBidsByListing(ctx context.Context, listingID string) ([]model.Bid, error) {
	return r.filterBids(func(b model.Bid) bool { return b.ListingID == listingID }), nil
}

// ListBidsByBidder returns all bids placed by a user, oldest first
func (r *MemoryRepo) ListBidsByBidder(ctx context.Context, bidderID string) ([]model.Bid, error) {
	return r.filterBids(func(b model.Bid) bool { return b.BidderID == bidderID }), nil
}

func (r *MemoryRepo) filterBids(keep func(model.Bid) bool) []model.Bid {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, b := range r.bids {
		if keep(b) {
			bids = append(bids, b)
		}
	}
	sort.Slice(bids, func(i, j int) bool { return bids[i].CreatedAt.Before(bids[j].CreatedAt) })
	return bids
}

// CountClaimedBidsOnDay counts ACCEPTED bids on the listing that occupy day and whose
// checkout holds inventory (a payment that is in flight or settled)
func (r *MemoryRepo) CountClaimedBidsOnDay(ctx context.Context, listingID string, day time.Time, excludeBidID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, b := range r.bids {
		if b.ListingID != listingID || b.Status != model.BidAccepted || b.BidID == excludeBidID {
			continue
		}
		paymentID, ok := r.paymentByBid[b.BidID]
		if !ok || !r.payments[paymentID].Status.HoldsInventory() {
			continue
		}
		if b.Covers(day) {
			count++
		}
	}
	return count, nil
}

// CompareAndSetBidStatus moves a bid from one status to another only if it is still in from
func (r *MemoryRepo) CompareAndSetBidStatus(ctx context.Context, bidID string, from, to model.BidStatus, reason string) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("set status of bid %s: %w", bidID, biddingerrors.ErrBidNotFound)
	}
	if b.Status != from {
		return b, fmt.Errorf("set status of bid %s from %s (is %s): %w", bidID, from, b.Status, biddingerrors.ErrStatusChanged)
	}
	b.Status = to
	b.RejectionReason = reason
	b.UpdatedAt = time.Now().UTC()
	r.bids[bidID] = b
	return b, nil
}

// StampBidCommission stores the commission split computed at capture. Only the first
// call writes; stamped reports whether this call did.
func (r *MemoryRepo) StampBidCommission(ctx context.Context, bidID string, commission, payable decimal.Decimal) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bids[bidID]
	if !ok {
		return false, fmt.Errorf("stamp commission of bid %s: %w", bidID, biddingerrors.ErrBidNotFound)
	}
	if b.PlatformCommission != nil {
		return false, nil
	}
	b.PlatformCommission = &commission
	b.PayableToHotel = &payable
	b.UpdatedAt = time.Now().UTC()
	r.bids[bidID] = b
	return true, nil
}

// UpdatePayout applies payout fields to an ACCEPTED bid and returns it before and after
func (r *MemoryRepo) UpdatePayout(ctx context.Context, bidID string, upd model.PayoutUpdate, now time.Time) (model.Bid, model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	before, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, model.Bid{}, fmt.Errorf("update payout of bid %s: %w", bidID, biddingerrors.ErrBidNotFound)
	}
	if before.Status != model.BidAccepted {
		return before, before, fmt.Errorf("update payout of bid %s: %w", bidID, biddingerrors.ErrBidNotAccepted)
	}
	after := applyPayout(before, upd, now)
	r.bids[bidID] = after
	return before, after, nil
}

// GetPayment returns a payment by id
func (r *MemoryRepo) GetPayment(ctx context.Context, paymentID string) (model.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.payments[paymentID]
	if !ok {
		return model.Payment{}, fmt.Errorf("get payment %s: %w", paymentID, biddingerrors.ErrPaymentNotFound)
	}
	return p, nil
}

// GetPaymentByBid returns the payment attached to a bid
func (r *MemoryRepo) GetPaymentByBid(ctx context.Context, bidID string) (model.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.paymentByBid[bidID]
	if !ok {
		return model.Payment{}, fmt.Errorf("get payment for bid %s: %w", bidID, biddingerrors.ErrPaymentNotFound)
	}
	return r.payments[id], nil
}

// GetPaymentByIntent returns the payment holding a gateway intent id
func (r *MemoryRepo) GetPaymentByIntent(ctx context.Context, intentID string) (model.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.paymentByIntent[intentID]
	if !ok {
		return model.Payment{}, fmt.Errorf("get payment for intent %s: %w", intentID, biddingerrors.ErrPaymentNotFound)
	}
	return r.payments[id], nil
}

// UpsertPaymentIntent creates the payment for p.BidID, or points it at p's gateway intent
// when the stored payment failed, was cancelled or expired. Any other stored payment is
// returned unchanged.
func (r *MemoryRepo) UpsertPaymentIntent(ctx context.Context, p model.Payment) (model.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bids[p.BidID]; !ok {
		return model.Payment{}, fmt.Errorf("upsert payment for bid %s: %w", p.BidID, biddingerrors.ErrBidNotFound)
	}

	if id, ok := r.paymentByBid[p.BidID]; ok {
		existing := r.payments[id]
		if !existing.Status.AllowsNewIntent() {
			return existing, nil
		}
		delete(r.paymentByIntent, existing.IntentID)
		p = replaceIntent(existing, p)
	}

	r.payments[p.PaymentID] = p
	r.paymentByBid[p.BidID] = p.PaymentID
	r.paymentByIntent[p.IntentID] = p.PaymentID
	return p, nil
}

// TransitionPayment applies a gateway-reported status change and returns the prior status
func (r *MemoryRepo) TransitionPayment(ctx context.Context, paymentID string, t model.PaymentTransition) (model.PaymentStatus, model.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.payments[paymentID]
	if !ok {
		return "", model.Payment{}, fmt.Errorf("transition payment %s: %w", paymentID, biddingerrors.ErrPaymentNotFound)
	}
	prev := p.Status
	if next, changed := applyTransition(p, t); changed {
		r.payments[paymentID] = next
		p = next
	}
	return prev, p, nil
}

// RecordWebhookEvent remembers a gateway event id and reports whether it was new
func (r *MemoryRepo) RecordWebhookEvent(ctx context.Context, eventID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, seen := r.events[eventID]; seen {
		return false, nil
	}
	r.events[eventID] = struct{}{}
	return true, nil
}

// ForgetWebhookEvent drops a recorded event id so a redelivery is processed again
func (r *MemoryRepo) ForgetWebhookEvent(ctx context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.events, eventID)
	return nil
}
