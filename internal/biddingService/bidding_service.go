package bidding

import (
	"bid-engine/internal/availability"
	"bid-engine/internal/biddingerrors"
	"bid-engine/internal/metrics"
	"bid-engine/internal/models"
	"bid-engine/internal/notification"
	"bid-engine/internal/repository"
	"bid-engine/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BiddingService owns the lifecycle of a bid: admission, operator review and payout marking
type BiddingService struct {
	repo     repository.BookingDB
	checker  *availability.Checker
	notifier notification.Notifier
	now      func() time.Time
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.BookingDB, checker *availability.Checker, notifier notification.Notifier) *BiddingService {
	return &BiddingService{
		repo:     repo,
		checker:  checker,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateBidInput is an already-parsed bid submission
type CreateBidInput struct {
	ListingID   string
	Bidder      models.Actor
	CheckIn     time.Time
	CheckOut    time.Time
	BidPerNight decimal.Decimal
}

// CreateBidResult is the stored bid and a human-readable outcome
type CreateBidResult struct {
	Bid     models.Bid
	Message string
}

// CreateBid validates a submission against the listing's rules and stores it as PENDING,
// or ACCEPTED when the listing auto-accepts bids at or above its minimum. Capacity is not
// checked here; it is enforced when the bidder checks out.
func (s *BiddingService) CreateBid(ctx context.Context, in CreateBidInput) (CreateBidResult, error) {
	if in.ListingID == "" || in.Bidder.ID == "" {
		return CreateBidResult{}, fmt.Errorf("service: %w - missing listing or bidder", biddingerrors.ErrValidation)
	}
	if !in.BidPerNight.IsPositive() {
		return CreateBidResult{}, fmt.Errorf("service: %w - bid per night must be positive", biddingerrors.ErrValidation)
	}
	if !in.BidPerNight.Equal(in.BidPerNight.Round(2)) {
		return CreateBidResult{}, fmt.Errorf("service: %w - bid per night has more than two decimal places", biddingerrors.ErrValidation)
	}

	listing, err := s.repo.GetListing(ctx, in.ListingID)
	if err != nil {
		return CreateBidResult{}, fmt.Errorf("service: failed to load listing %s: %w", in.ListingID, err)
	}
	if listing.Status != models.ListingLive {
		return CreateBidResult{}, fmt.Errorf("service: %w - listing %s is %s", biddingerrors.ErrListingNotLive, listing.ListingID, listing.Status)
	}

	checkIn, checkOut := models.Day(in.CheckIn), models.Day(in.CheckOut)
	if !checkOut.After(checkIn) {
		return CreateBidResult{}, fmt.Errorf("service: %w - check-out must be after check-in", biddingerrors.ErrInvalidDates)
	}
	if day, ok := firstBlackout(listing, checkIn, checkOut); ok {
		return CreateBidResult{}, fmt.Errorf("service: %w - %s is unavailable", biddingerrors.ErrBlackoutDate, day.Format(models.DateLayout))
	}
	if in.BidPerNight.LessThan(listing.MinimumBid) {
		return CreateBidResult{}, fmt.Errorf("service: %w - minimum is %s per night", biddingerrors.ErrBidTooLow, listing.MinimumBid.StringFixed(2))
	}

	nights := models.NightsBetween(checkIn, checkOut)
	now := s.now()
	bid := models.Bid{
		BidID:        utils.GenerateID(),
		ListingID:    listing.ListingID,
		BidderID:     in.Bidder.ID,
		BidderEmail:  in.Bidder.Email,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		BidPerNight:  in.BidPerNight,
		TotalNights:  nights,
		TotalAmount:  in.BidPerNight.Mul(decimal.NewFromInt(int64(nights))),
		Status:       models.BidPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	message := "Bid submitted and awaiting review by the hotel"
	if listing.AutoAcceptAboveMinimum && !in.BidPerNight.LessThan(listing.MinimumBid) {
		bid.Status = models.BidAccepted
		message = "Bid accepted automatically; complete checkout to secure your stay"
	}

	// the store refuses a second overlapping PENDING bid by the same bidder
	if err := s.repo.CreateBid(ctx, bid); err != nil {
		return CreateBidResult{}, fmt.Errorf("service: failed to record bid on listing %s by %s: %w", listing.ListingID, in.Bidder.ID, err)
	}
	metrics.BidsPlacedTotal.WithLabelValues(string(bid.Status)).Inc()

	vars := bidVars(listing, bid)
	s.notifier.Send(ctx, notification.KindBidReceived, listing.OwnerEmail, vars)
	if bid.Status == models.BidAccepted {
		s.notifier.Send(ctx, notification.KindBidAccepted, bid.BidderEmail, vars)
	}

	return CreateBidResult{Bid: bid, Message: message}, nil
}

// UpdateStatus lets an operator accept or reject a PENDING bid
func (s *BiddingService) UpdateStatus(ctx context.Context, bidID string, actor models.Actor, status models.BidStatus, reason string) (models.Bid, error) {
	if status != models.BidAccepted && status != models.BidRejected {
		return models.Bid{}, fmt.Errorf("service: %w - status must be ACCEPTED or REJECTED", biddingerrors.ErrValidation)
	}

	bid, listing, err := s.loadForOperator(ctx, bidID, actor)
	if err != nil {
		return models.Bid{}, err
	}
	if bid.Status != models.BidPending {
		return models.Bid{}, fmt.Errorf("service: %w - bid %s is %s", biddingerrors.ErrBidNotPending, bidID, bid.Status)
	}
	if status != models.BidRejected {
		reason = ""
	}

	updated, err := s.repo.CompareAndSetBidStatus(ctx, bidID, models.BidPending, status, reason)
	if errors.Is(err, biddingerrors.ErrStatusChanged) {
		return models.Bid{}, fmt.Errorf("service: %w - bid %s is now %s", biddingerrors.ErrBidNotPending, bidID, updated.Status)
	}
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to update status of bid %s: %w", bidID, err)
	}
	metrics.BidTransitionsTotal.WithLabelValues(string(status)).Inc()

	kind := notification.KindBidAccepted
	if status == models.BidRejected {
		kind = notification.KindBidRejected
	}
	s.notifier.Send(ctx, kind, updated.BidderEmail, bidVars(listing, updated))

	return updated, nil
}

// UpdatePayout records how and whether the hotel was paid for an accepted, paid bid.
// The payout notification goes out only when isPaidToHotel flips from false to true.
func (s *BiddingService) UpdatePayout(ctx context.Context, bidID string, actor models.Actor, upd models.PayoutUpdate) (models.Bid, error) {
	bid, listing, err := s.loadForOperator(ctx, bidID, actor)
	if err != nil {
		return models.Bid{}, err
	}
	if bid.Status != models.BidAccepted {
		return models.Bid{}, fmt.Errorf("service: %w - bid %s is %s", biddingerrors.ErrBidNotAccepted, bidID, bid.Status)
	}

	payment, err := s.repo.GetPaymentByBid(ctx, bidID)
	if errors.Is(err, biddingerrors.ErrNotFound) {
		return models.Bid{}, fmt.Errorf("service: %w - no payment for bid %s", biddingerrors.ErrPaymentNotSettled, bidID)
	}
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load payment for bid %s: %w", bidID, err)
	}
	if !payment.Status.IsSettled() {
		return models.Bid{}, fmt.Errorf("service: %w - payment is %s", biddingerrors.ErrPaymentNotSettled, payment.Status)
	}

	before, after, err := s.repo.UpdatePayout(ctx, bidID, upd, s.now())
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to update payout of bid %s: %w", bidID, err)
	}

	if !before.IsPaidToHotel && after.IsPaidToHotel {
		s.notifier.Send(ctx, notification.KindPayoutSent, listing.OwnerEmail, bidVars(listing, after))
	}

	return after, nil
}

// RejectOverbooked flips an ACCEPTED bid to REJECTED because day has no capacity left
func (s *BiddingService) RejectOverbooked(ctx context.Context, bid models.Bid, day time.Time) (models.Bid, error) {
	reason := fmt.Sprintf("Inventory no longer available for %s", day.Format(models.DateLayout))

	rejected, err := s.repo.CompareAndSetBidStatus(ctx, bid.BidID, models.BidAccepted, models.BidRejected, reason)
	if err != nil {
		return rejected, fmt.Errorf("service: failed to reject overbooked bid %s: %w", bid.BidID, err)
	}
	metrics.BidTransitionsTotal.WithLabelValues(string(models.BidRejected)).Inc()
	metrics.OverbookingsTotal.Inc()

	utils.Warn("bid rejected at checkout, inventory exhausted", map[string]any{
		"bid_id":     bid.BidID,
		"listing_id": bid.ListingID,
		"date":       day.Format(models.DateLayout),
	})

	listing, err := s.repo.GetListing(ctx, bid.ListingID)
	if err != nil {
		listing = models.Listing{ListingID: bid.ListingID}
	}
	s.notifier.Send(ctx, notification.KindBidRejected, rejected.BidderEmail, bidVars(listing, rejected))

	return rejected, nil
}

// GetBid returns a bid visible to its bidder and the listing's operators
func (s *BiddingService) GetBid(ctx context.Context, bidID string, actor models.Actor) (models.Bid, error) {
	bid, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}
	if bid.BidderID == actor.ID {
		return bid, nil
	}

	listing, err := s.repo.GetListing(ctx, bid.ListingID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load listing %s: %w", bid.ListingID, err)
	}
	if !actor.IsOperator(listing) {
		return models.Bid{}, fmt.Errorf("service: %w", biddingerrors.ErrNotBidOwner)
	}
	return bid, nil
}

// ListBidsByListing returns every bid on a listing to one of its operators
func (s *BiddingService) ListBidsByListing(ctx context.Context, listingID string, actor models.Actor) ([]models.Bid, error) {
	listing, err := s.repo.GetListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load listing %s: %w", listingID, err)
	}
	if !actor.IsOperator(listing) {
		return nil, fmt.Errorf("service: %w", biddingerrors.ErrNotOperator)
	}

	bids, err := s.repo.ListBidsByListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for listing %s: %w", listingID, err)
	}
	return bids, nil
}

// ListBidsByBidder returns a user's own bids. Admins may read anyone's.
func (s *BiddingService) ListBidsByBidder(ctx context.Context, bidderID string, actor models.Actor) ([]models.Bid, error) {
	if bidderID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", biddingerrors.ErrValidation)
	}
	if actor.ID != bidderID && actor.Role != models.RoleAdmin {
		return nil, fmt.Errorf("service: %w", biddingerrors.ErrNotBidOwner)
	}

	bids, err := s.repo.ListBidsByBidder(ctx, bidderID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for user %s: %w", bidderID, err)
	}
	return bids, nil
}

// CheckAvailability reports remaining capacity of a listing over [checkIn, checkOut)
func (s *BiddingService) CheckAvailability(ctx context.Context, listingID string, checkIn, checkOut time.Time) (availability.Result, error) {
	checkIn, checkOut = models.Day(checkIn), models.Day(checkOut)
	if !checkOut.After(checkIn) {
		return availability.Result{}, fmt.Errorf("service: %w - check-out must be after check-in", biddingerrors.ErrInvalidDates)
	}

	listing, err := s.repo.GetListing(ctx, listingID)
	if err != nil {
		return availability.Result{}, fmt.Errorf("service: failed to load listing %s: %w", listingID, err)
	}

	res, err := s.checker.Check(ctx, listing.ListingID, listing.MaxInventory, checkIn, checkOut, "")
	if err != nil {
		return availability.Result{}, fmt.Errorf("service: %w", err)
	}
	return res, nil
}

// loadForOperator fetches a bid and its listing and checks the actor may operate it
func (s *BiddingService) loadForOperator(ctx context.Context, bidID string, actor models.Actor) (models.Bid, models.Listing, error) {
	bid, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return models.Bid{}, models.Listing{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}
	listing, err := s.repo.GetListing(ctx, bid.ListingID)
	if err != nil {
		return models.Bid{}, models.Listing{}, fmt.Errorf("service: failed to load listing %s: %w", bid.ListingID, err)
	}
	if !actor.IsOperator(listing) {
		return models.Bid{}, models.Listing{}, fmt.Errorf("service: %w", biddingerrors.ErrNotOperator)
	}
	return bid, listing, nil
}

func firstBlackout(l models.Listing, checkIn, checkOut time.Time) (time.Time, bool) {
	var hit *time.Time
	for _, d := range l.BlackoutDates {
		day := models.Day(d)
		if day.Before(checkIn) || !day.Before(checkOut) {
			continue
		}
		if hit == nil || day.Before(*hit) {
			hit = &day
		}
	}
	if hit == nil {
		return time.Time{}, false
	}
	return *hit, true
}

// bidVars is the template data shared by every bid notification
func bidVars(l models.Listing, b models.Bid) map[string]string {
	vars := map[string]string{
		"listing_title": l.Title,
		"bid_id":        b.BidID,
		"check_in":      b.CheckInDate.Format(models.DateLayout),
		"check_out":     b.CheckOutDate.Format(models.DateLayout),
		"bid_per_night": b.BidPerNight.StringFixed(2),
		"total_amount":  b.TotalAmount.StringFixed(2),
		"status":        string(b.Status),
		"reason":        b.RejectionReason,
		"payout_method": b.PayoutMethod,
	}
	if b.PayableToHotel != nil {
		vars["payable_to_hotel"] = b.PayableToHotel.StringFixed(2)
	}
	return vars
}
